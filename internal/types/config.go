package types

import (
	ierr "github.com/flexprice/mvola-go/internal/errors"
)

const (
	// SandboxURL is the MVola pre-production gateway
	SandboxURL = "https://devapi.mvola.mg"
	// ProductionURL is the MVola live gateway
	ProductionURL = "https://api.mvola.mg"
)

// Environment selects one of the two well-known gateways
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

// BaseURL returns the gateway URL for the environment
func (e Environment) BaseURL() string {
	switch e {
	case EnvironmentProduction:
		return ProductionURL
	default:
		return SandboxURL
	}
}

func (e Environment) Validate() error {
	switch e {
	case EnvironmentSandbox, EnvironmentProduction:
		return nil
	}
	return ierr.NewErrorf("unknown environment %q", string(e)).
		WithHint("Environment must be one of sandbox, production").
		Mark(ierr.ErrValidation)
}

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
