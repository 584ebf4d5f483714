package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// readEnv overrides conf with any VTXSMEAR_* variables that are set.
func readEnv(conf *Config) error {
	if err := env.Parse(conf); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	conf.Env = strings.ToUpper(conf.Env)
	if conf.Env != "DEV" {
		conf.Env = "PROD"
	}
	conf.LoggingLevel = strings.ToLower(conf.LoggingLevel)
	return nil
}
