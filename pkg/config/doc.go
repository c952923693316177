// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (reading .env files into the process
// environment) and github.com/caarlos0/env/v11 (parsing the environment into
// a struct through `env` and `envDefault` tags).
//
// # Architecture
//
// Parsed values are cached per configuration type. Each type key owns a
// sync.Once so concurrent first loads parse once; a failed parse is forgotten
// so that a later call can succeed after the environment is fixed.
//
// # Usage
//
//	type Settings struct {
//	    Bypass    bool   `env:"ASSERT_TYPES_BYPASS" envDefault:"false"`
//	    Env       string `env:"APP_ENV" envDefault:"development"`
//	    LineWidth int    `env:"ASSERT_TYPES_LINE_WIDTH" envDefault:"120"`
//	}
//
//	if err := config.LoadEnv("deploy/.env"); err != nil {
//	    return err
//	}
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Sentinels work with errors.Is: ErrParsingConfig, ErrInvalidConfigType,
// ErrConfigNotLoaded, ErrNilPointer and ErrLoadingEnvFile.
//
// # Testing Helpers
//
// ResetCache clears every cached type; ForceReloadConfig re-parses one.
package config
