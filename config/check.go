package config

import (
	"fmt"
	"regexp"
)

type checkFunc func(conf *Config) error

func checkConfig(conf *Config) error {
	checkFuncs := []checkFunc{
		checkLoggingLevel,
		checkAddress,
		checkConditions,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

func checkLoggingLevel(conf *Config) error {
	if !validateLoggingLevel(conf.LoggingLevel) {
		return fmt.Errorf("invalid logging level %q, one of: %s", conf.LoggingLevel, AvailableLoggingLevels)
	}
	return nil
}

var addressRegexp = regexp.MustCompile(`^.*?:\d+$`)

func checkAddress(conf *Config) error {
	if !addressRegexp.MatchString(conf.Address) {
		return fmt.Errorf("invalid address %q", conf.Address)
	}
	return nil
}

func checkConditions(conf *Config) error {
	if conf.ConditionsURL != "" && conf.ConditionsPath != "" {
		return fmt.Errorf("conditions url and conditions path are mutually exclusive")
	}
	return nil
}
