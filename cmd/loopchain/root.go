package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopchain/config"
	"github.com/katalvlaran/loopchain/logging"
	"github.com/katalvlaran/loopchain/network"
	"github.com/katalvlaran/loopchain/params"
	"github.com/katalvlaran/loopchain/pareto"
	"github.com/katalvlaran/loopchain/solver"
)

var errNoParams = errors.New("loopchain: no parameter files given")

// app carries the state shared by the subcommands once flags are parsed.
type app struct {
	configPath string
	cfg        config.Config
	log        logr.Logger
}

// newRootCmd returns the command tree and a flush for the logger it builds.
// The flush must run after Execute whether or not it failed.
func newRootCmd() (*cobra.Command, func() error) {
	a := &app{log: logr.Discard()}

	cmd := &cobra.Command{
		Use:          "loopchain",
		Short:        "Closed-loop supply-chain cost/environment trade-off explorer",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := cfg.Logger()
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(a.validateCmd())
	cmd.AddCommand(a.solveCmd())
	cmd.AddCommand(a.sweepCmd())

	return cmd, func() error { return logging.Sync(a.log) }
}

// paramFiles prefers positional arguments over the configured list.
func (a *app) paramFiles(args []string) ([]string, error) {
	files := args
	if len(files) == 0 {
		files = a.cfg.Params
	}
	if len(files) == 0 {
		return nil, errNoParams
	}

	return files, nil
}

// scenarioName is the file name without directory and extension.
func scenarioName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// build assembles the network and a fresh solver for one bundle.
func (a *app) build(b *params.Bundle, log logr.Logger) (*network.Network, *solver.Solver, error) {
	opts, err := a.cfg.NetworkOptions(log)
	if err != nil {
		return nil, nil, err
	}
	n, err := network.Build(b, opts...)
	if err != nil {
		return nil, nil, err
	}
	s, err := solver.New(n.Model, a.cfg.SolverOptions(log))
	if err != nil {
		return nil, nil, err
	}

	return n, s, nil
}

func objectives(n *network.Network) pareto.Objectives {
	return pareto.Objectives{Cost: n.Cost, Environmental: n.Environmental}
}
