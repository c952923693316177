// Package environment names the deployment environment (development, staging,
// production) and parses it from configuration values such as APP_ENV.
//
// The validator consults it once, at construction, to decide whether checks
// are bypassed; the logger uses it to pick output defaults.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
package environment
