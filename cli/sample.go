package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	conf "github.com/hazeltet845/cmssw/config"
	"github.com/hazeltet845/cmssw/format"
	"github.com/hazeltet845/cmssw/runner"
)

const vertexColumnWidth = 14

func generateSampleCmd(config *conf.Config) *cobra.Command {
	job := runner.Job{
		Run:           1,
		FirstLumi:     1,
		LumiBlocks:    1,
		EventsPerLumi: 10,
		Streams:       1,
		Seed:          1,
	}
	var workers int
	var asJSON, boosted bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "generate smeared vertices",
		Long:  "generates vertices in mm for every event of the requested luminosity blocks",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(config)
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(config)
			if err != nil {
				return err
			}
			defer closeStore()

			opts := []runner.Option{runner.WithWorkers(workers)}
			if store != nil {
				opts = append(opts, runner.WithSource(store))
			}
			out := cmd.OutOrStdout()
			var writeErr error
			write := func(e runner.Event) {
				if writeErr == nil {
					writeErr = writeEvent(out, e, asJSON)
				}
			}
			if boosted {
				opts = append(opts, runner.WithBoostedVertices())
			}
			if err := runner.NewRunner(params, opts...).Run(cmd.Context(), job, write); err != nil {
				return err
			}
			return writeErr
		},
	}

	flags := cmd.Flags()
	flags.Uint32Var(&job.Run, "run", job.Run, "run number")
	flags.Uint32Var(&job.FirstLumi, "first-lumi", job.FirstLumi, "first luminosity block")
	flags.IntVar(&job.LumiBlocks, "lumi-blocks", job.LumiBlocks, "number of luminosity blocks")
	flags.IntVarP(&job.EventsPerLumi, "events", "n", job.EventsPerLumi, "events per luminosity block")
	flags.IntVar(&job.Streams, "streams", job.Streams, "number of streams")
	flags.Int64Var(&job.Seed, "seed", job.Seed, "random seed of the first stream")
	flags.IntVar(&workers, "workers", 0, "streams processed concurrently")
	flags.BoolVar(&asJSON, "json", false, "print JSON lines")
	flags.BoolVar(&boosted, "boosted", false, "move vertices to the lab frame with the inverse Lorentz boost")
	return cmd
}

func writeEvent(out io.Writer, e runner.Event, asJSON bool) error {
	if asJSON {
		line, err := json.Marshal(e)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(line))
		return err
	}
	_, err := fmt.Fprintf(out, "%d %d:%d %d %s %s %s %s\n",
		e.Stream, e.Run, e.Lumi, e.Index,
		format.FloatToFixedWidthString(e.Vertex.X, vertexColumnWidth),
		format.FloatToFixedWidthString(e.Vertex.Y, vertexColumnWidth),
		format.FloatToFixedWidthString(e.Vertex.Z, vertexColumnWidth),
		format.FloatToFixedWidthString(e.Vertex.T, vertexColumnWidth),
	)
	return err
}
