package config

import (
	"github.com/sirupsen/logrus"
)

var log = NamedLogger("config")

// SetupConfig applies environment overrides to conf, checks it and sets
// the level of every named logger.
func SetupConfig(conf *Config) error {
	if err := readEnv(conf); err != nil {
		return err
	}
	if err := checkConfig(conf); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(conf.LoggingLevel)
	if err != nil {
		return err
	}
	SetLoggingLevel(level)

	if conf.ParamsPath == "" && conf.ConditionsURL == "" && conf.ConditionsPath == "" {
		log.Warn("Neither parameter file nor conditions database configured. Using defaults")
	}
	log.Debugf("Config: %+v", *conf)
	return nil
}
