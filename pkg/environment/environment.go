package environment

import "strings"

// Environment represents the deployment environment a process runs in.
type Environment string

const (
	// Development for local work; checks run and logs are verbose.
	Development Environment = "development"
	// Staging for pre-release deployments.
	Staging Environment = "staging"
	// Production for live deployments; validators bypass their checks.
	Production Environment = "production"
)

// Parse maps a raw value such as APP_ENV onto an Environment. The short forms
// "prod", "stage" and "dev" are accepted and case is ignored. Anything else,
// including the empty string, is Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}

// IsStaging reports whether e is the staging environment.
func (e Environment) IsStaging() bool {
	return e == Staging
}

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool {
	return e == Development
}
