package cli

import (
	"fmt"

	"github.com/hazeltet845/cmssw/conditions"
	"github.com/hazeltet845/cmssw/conditions/bolt"
	"github.com/hazeltet845/cmssw/conditions/mongo"
	conf "github.com/hazeltet845/cmssw/config"
	"github.com/hazeltet845/cmssw/units"
	"github.com/hazeltet845/cmssw/vertex"
)

func loadParams(config *conf.Config) (conf.GeneratorParams, error) {
	if config.ParamsPath == "" {
		return conf.DefaultGeneratorParams, nil
	}
	return conf.LoadGeneratorParams(config.ParamsPath)
}

func newGenerator(config *conf.Config) (*vertex.BetaFunc, error) {
	params, err := loadParams(config)
	if err != nil {
		return nil, err
	}
	return vertex.NewBetaFunc(params, units.CMS)
}

// openStore returns nil store when no conditions database is configured.
func openStore(config *conf.Config) (conditions.Store, func(), error) {
	switch {
	case config.ConditionsURL != "":
		store, err := mongo.Dial(config.ConditionsURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.ConditionsPath != "":
		store, err := bolt.Open(config.ConditionsPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warn(err)
			}
		}, nil
	}
	return nil, func() {}, nil
}

func requireStore(config *conf.Config) (conditions.Store, func(), error) {
	store, closeStore, err := openStore(config)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, fmt.Errorf("conditions database not configured, use --conditions-url or --conditions-path")
	}
	return store, closeStore, nil
}
