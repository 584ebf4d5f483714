// Package config provide config from command-line and environment.
package config

import (
	"strings"
)

// Config represent vtxsmear runtime configuration.
type Config struct {
	// Env is PROD or DEV.
	Env string `env:"VTXSMEAR_ENV"`

	LoggingLevel string `env:"VTXSMEAR_LOGGING_LEVEL"`

	// Address is the host:port the web api listens on.
	Address string `env:"VTXSMEAR_ADDRESS"`

	// ParamsPath is a YAML or JSON generator parameter file.
	ParamsPath string `env:"VTXSMEAR_PARAMS"`

	// ConditionsURL is a MongoDB url of the conditions database.
	ConditionsURL string `env:"VTXSMEAR_CONDITIONS_URL"`

	// ConditionsPath is a local bbolt conditions database file.
	ConditionsPath string `env:"VTXSMEAR_CONDITIONS_PATH"`
}

// Default returns configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Env:          "PROD",
		LoggingLevel: "info",
		Address:      "localhost:3002",
	}
}

// IsDev reports whether development environment is selected.
func (c Config) IsDev() bool {
	return c.Env == "DEV"
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

// AvailableLoggingLevels is the comma separated list of accepted levels.
var AvailableLoggingLevels = strings.Join(availableLoggingLevels, ", ")

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
