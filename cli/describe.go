package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazeltet845/cmssw/beamspot"
	conf "github.com/hazeltet845/cmssw/config"
)

func generateDescribeCmd(config *conf.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "print beam spot parameters",
		Long:  "prints the configured beam spot in internal units (mm, rad)",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := newGenerator(config)
			if err != nil {
				return err
			}
			if !generator.Configured() {
				return fmt.Errorf("beam spot is read from the conditions database, nothing to describe")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), beamspot.Serialize(generator.Parameters()))
			return err
		},
	}
}

func generateBoostCmd(config *conf.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "boost",
		Short: "print inverse Lorentz boost",
		Long:  "prints the matrix taking head-on frame vectors (t, x, y, z) to the lab frame",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := newGenerator(config)
			if err != nil {
				return err
			}
			boost, err := generator.InvLorentzBoost()
			if err != nil {
				return fmt.Errorf("beam spot is read from the conditions database, no boost available: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), boost.String())
			return err
		},
	}
}
