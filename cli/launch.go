// Package cli implements vtxsmear commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	conf "github.com/hazeltet845/cmssw/config"
)

var log = conf.NamedLogger("cli")

// Launch ...
func Launch() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Environment variables override flags.
func NewRootCmd() *cobra.Command {
	config := conf.Default()
	rootCmd := &cobra.Command{
		Use:           "vtxsmear",
		Short:         "beta function vertex smearing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return conf.SetupConfig(&config)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&config.LoggingLevel, "logging-level", config.LoggingLevel,
		"one of: "+conf.AvailableLoggingLevels)
	flags.StringVar(&config.ParamsPath, "params", config.ParamsPath,
		"YAML or JSON generator parameter file (cm, ns, rad)")
	flags.StringVar(&config.ConditionsURL, "conditions-url", config.ConditionsURL,
		"MongoDB url of the conditions database")
	flags.StringVar(&config.ConditionsPath, "conditions-path", config.ConditionsPath,
		"local conditions database file")

	rootCmd.AddCommand(
		generateSampleCmd(&config),
		generateBoostCmd(&config),
		generateDescribeCmd(&config),
		generateServeCmd(&config),
		generateConditionsCmd(&config),
	)
	return rootCmd
}
