package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	conf "github.com/hazeltet845/cmssw/config"
	"github.com/hazeltet845/cmssw/web"
)

func generateServeCmd(config *conf.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start web api",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := newGenerator(config)
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(config)
			if err != nil {
				return err
			}
			defer closeStore()

			log.Infof("Listening on %v", config.Address)
			return http.ListenAndServe(config.Address, web.NewRouter(generator, store))
		},
	}
	cmd.Flags().StringVar(&config.Address, "address", config.Address, "host:port to listen on")
	return cmd
}
