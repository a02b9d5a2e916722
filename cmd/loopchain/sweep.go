package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopchain/logging"
	"github.com/katalvlaran/loopchain/params"
	"github.com/katalvlaran/loopchain/pareto"
	"github.com/katalvlaran/loopchain/report"
)

func (a *app) sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep [params.yaml...]",
		Short: "Trace both epsilon-constraint curves for every scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.paramFiles(args)
			if err != nil {
				return err
			}

			scenarios := make([]pareto.Scenario, len(files))
			for i, path := range files {
				name := scenarioName(path)
				scenarios[i] = pareto.Scenario{
					Name: name,
					Build: func() (pareto.Oracle, pareto.Objectives, error) {
						b, err := params.Load(path)
						if err != nil {
							return nil, pareto.Objectives{}, err
						}
						n, s, err := a.build(b, a.log.WithValues("scenario", name))
						if err != nil {
							return nil, pareto.Objectives{}, err
						}

						return s, objectives(n), nil
					},
				}
			}

			results, err := pareto.RunScenarios(cmd.Context(), scenarios, a.cfg.SweepOptions(a.log), a.cfg.Parallel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, r := range results {
				if i > 0 && a.cfg.Output.Format != "csv" {
					fmt.Fprintln(out, "---")
				}
				sink := a.sink(r.Name, len(results) > 1, out)
				if err := sink.Consume(r.Frontier); err != nil {
					return fmt.Errorf("loopchain: %s: %w", r.Name, err)
				}
				a.log.V(logging.INFO).Info("scenario written", "scenario", r.Name,
					"costPoints", len(r.Frontier.CostCurve.Points), "envPoints", len(r.Frontier.EnvCurve.Points))
			}

			return nil
		},
	}
}

// sink picks the writer for one scenario. With several scenarios each one
// gets its own CSV subdirectory.
func (a *app) sink(name string, many bool, out io.Writer) pareto.Sink {
	dir := a.cfg.Output.Dir
	if many {
		dir = filepath.Join(dir, name)
	}
	switch strings.ToLower(a.cfg.Output.Format) {
	case "yaml":
		return report.YAMLSink{W: out}
	case "both":
		return report.Multi{report.NewCSVSink(dir), report.YAMLSink{W: out}}
	default:
		return report.NewCSVSink(dir)
	}
}
