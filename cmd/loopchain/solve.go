package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopchain/model"
	"github.com/katalvlaran/loopchain/network"
	"github.com/katalvlaran/loopchain/params"
)

func (a *app) solveCmd() *cobra.Command {
	var objective string
	var epsilon float64

	c := &cobra.Command{
		Use:   "solve [params.yaml]",
		Short: "Solve one scenario for a single objective, optionally bounding the other",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.paramFiles(args)
			if err != nil {
				return err
			}
			b, err := params.Load(files[0])
			if err != nil {
				return err
			}
			n, s, err := a.build(b, a.log.WithValues("scenario", scenarioName(files[0])))
			if err != nil {
				return err
			}

			primary, other := n.Cost, n.Environmental
			switch objective {
			case "cost":
			case "env":
				primary, other = other, primary
			default:
				return fmt.Errorf("loopchain: unknown objective %q (want cost or env)", objective)
			}
			if err := s.SetObjective(primary, model.Minimize); err != nil {
				return err
			}
			if cmd.Flags().Changed("epsilon") {
				if _, err := s.AddConstraint("epsilon", other, model.LE, epsilon); err != nil {
					return err
				}
			}

			status, err := s.Optimize(cmd.Context())
			if err != nil {
				return err
			}
			// A node-limited search may still hold an incumbent worth reporting.
			if _, err := s.Solution(); err != nil {
				return fmt.Errorf("loopchain: %s: %s", files[0], status)
			}
			comp, err := n.Breakdown.Evaluate(s.ValueOf)
			if err != nil {
				return err
			}
			st := s.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d cols, %d rows, %s)\n",
				files[0], status, st.Cols, st.Rows, st.Elapsed.Round(time.Millisecond))

			return printComponents(cmd.OutOrStdout(), comp)
		},
	}

	c.Flags().StringVar(&objective, "objective", "cost", "objective to minimize: cost|env")
	c.Flags().Float64Var(&epsilon, "epsilon", 0, "upper bound on the other objective (unbounded when unset)")
	return c
}

func printComponents(w io.Writer, c network.Components) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range []struct {
		name string
		v    float64
	}{
		{"fixed", c.Fixed},
		{"operating", c.Operating},
		{"transport", c.Transport},
		{"shortage", c.Shortage},
		{"revenue", -c.Revenue},
		{"cost", c.Cost},
		{"env operating", c.EnvOperating},
		{"env transport", c.EnvTransport},
		{"environmental", c.Environmental},
		{"mass·distance", c.MassDistance},
	} {
		fmt.Fprintf(tw, "%s\t%.2f\t\n", row.name, row.v)
	}

	return tw.Flush()
}
