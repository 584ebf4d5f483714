package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hazeltet845/cmssw/conditions"
	conf "github.com/hazeltet845/cmssw/config"
)

func generateConditionsCmd(config *conf.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conditions",
		Short: "conditions database commands",
		Long:  "set of commands reading and writing beam spot records",
		Args:  cobra.ExactArgs(0),
	}
	cmd.AddCommand(generateConditionsPutCmd(config), generateConditionsGetCmd(config))
	return cmd
}

func generateConditionsPutCmd(config *conf.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "put RUN LUMI FILE",
		Short: "store a beam spot record",
		Long:  "stores the YAML or JSON record in FILE as valid from RUN:LUMI until the next record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			iov, err := parseIOV(args[0], args[1])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[2])
			if err != nil {
				return err
			}
			var record conditions.SimBeamSpot
			if err := yaml.Unmarshal(data, &record); err != nil {
				return fmt.Errorf("parse beam spot record: %w", err)
			}

			store, closeStore, err := requireStore(config)
			if err != nil {
				return err
			}
			defer closeStore()
			if err := store.Put(cmd.Context(), iov, record); err != nil {
				return err
			}
			log.Infof("Stored beam spot for %s", iov)
			return nil
		},
	}
}

func generateConditionsGetCmd(config *conf.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "get RUN LUMI",
		Short: "print the beam spot record valid at RUN:LUMI",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseIOV(args[0], args[1])
			if err != nil {
				return err
			}
			store, closeStore, err := requireStore(config)
			if err != nil {
				return err
			}
			defer closeStore()

			iov, err := store.Lookup(cmd.Context(), at)
			if err != nil {
				return err
			}
			record, err := store.Get(cmd.Context(), iov)
			if err != nil {
				return err
			}
			out, err := json.Marshal(struct {
				IOV    conditions.IOV         `json:"iov"`
				Record conditions.SimBeamSpot `json:"record"`
			}{iov, record})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

func parseIOV(run, lumi string) (conditions.IOV, error) {
	r, err := strconv.ParseUint(run, 10, 32)
	if err != nil {
		return conditions.IOV{}, fmt.Errorf("malformed run %q", run)
	}
	l, err := strconv.ParseUint(lumi, 10, 32)
	if err != nil {
		return conditions.IOV{}, fmt.Errorf("malformed luminosity block %q", lumi)
	}
	return conditions.IOV{Run: uint32(r), LumiBlock: uint32(l)}, nil
}
