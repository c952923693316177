package validator

import (
	"github.com/dmitrymomot/asserttypes/pkg/config"
	"github.com/dmitrymomot/asserttypes/pkg/environment"
)

// Config is read once when a Validator is built and never changes afterwards.
type Config struct {
	// Bypass turns every check into an identity pass-through.
	Bypass bool `env:"ASSERT_TYPES_BYPASS" envDefault:"false"`
	// DebugOnError runs the validator's trap on every failure.
	DebugOnError bool `env:"ASSERT_TYPES_DEBUG_ON_ERROR" envDefault:"false"`
	// Environment set to production implies Bypass.
	Environment string `env:"APP_ENV" envDefault:"development"`
	// LineWidth wraps error messages; zero or less disables wrapping.
	LineWidth int `env:"ASSERT_TYPES_LINE_WIDTH" envDefault:"120"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Environment: string(environment.Development),
		LineWidth:   defaultLineWidth,
	}
}

// LoadConfig reads Config from the process environment (and a .env file, if
// present). The result is cached for the life of the process.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Bypassed reports whether checks are disabled under this configuration.
func (c Config) Bypassed() bool {
	return c.Bypass || environment.Parse(c.Environment).IsProduction()
}
