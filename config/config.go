package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/loopchain/logging"
	"github.com/katalvlaran/loopchain/network"
	"github.com/katalvlaran/loopchain/pareto"
	"github.com/katalvlaran/loopchain/solver"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LOOPCHAIN"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Params      []string `mapstructure:"params"`
	Points      int      `mapstructure:"points"`
	SlackFactor float64  `mapstructure:"slack_factor"`
	Features    []string `mapstructure:"features"`
	Parallel    int      `mapstructure:"parallel"`

	Solver SolverConfig `mapstructure:"solver"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

type SolverConfig struct {
	Tolerance      float64       `mapstructure:"tolerance"`
	IntegralityTol float64       `mapstructure:"integrality_tol"`
	MaxNodes       int           `mapstructure:"max_nodes"`
	Gap            float64       `mapstructure:"gap"`
	TimeLimit      time.Duration `mapstructure:"time_limit"`
}

type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"` // csv, yaml or both
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"params":          "params",
	"points":          "points",
	"slack-factor":    "slack_factor",
	"features":        "features",
	"parallel":        "parallel",
	"tolerance":       "solver.tolerance",
	"max-nodes":       "solver.max_nodes",
	"time-limit":      "solver.time_limit",
	"out":             "output.dir",
	"format":          "output.format",
	"log-level":       "log.level",
	"log-development": "log.development",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("params", []string{})
	v.SetDefault("points", pareto.DefaultPoints)
	v.SetDefault("slack_factor", pareto.DefaultSlackFactor)
	v.SetDefault("features", []string{})
	v.SetDefault("parallel", 1)
	v.SetDefault("solver.tolerance", solver.DefaultTolerance)
	v.SetDefault("solver.integrality_tol", solver.DefaultIntegralityTol)
	v.SetDefault("solver.max_nodes", solver.DefaultMaxNodes)
	v.SetDefault("solver.gap", solver.DefaultGap)
	v.SetDefault("solver.time_limit", time.Duration(0))
	v.SetDefault("output.dir", "out")
	v.SetDefault("output.format", "csv")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// RegisterFlags adds the overridable settings to fs. Flag defaults are
// informational only; unset flags never override the file or environment.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSlice("params", nil, "parameter YAML file(s); each file is one scenario")
	fs.Int("points", pareto.DefaultPoints, "grid points per curve")
	fs.Float64("slack-factor", pareto.DefaultSlackFactor, "bound tightening factor in (0,1]")
	fs.StringSlice("features", nil, "model variants: supplier-linkage, arc-disaggregation, refurbish-waste, returns-equality")
	fs.Int("parallel", 1, "scenarios solved concurrently")
	fs.Float64("tolerance", solver.DefaultTolerance, "primal feasibility tolerance")
	fs.Int("max-nodes", solver.DefaultMaxNodes, "branch-and-bound node budget")
	fs.Duration("time-limit", 0, "per-solve time limit (0 = none)")
	fs.String("out", "out", "output directory")
	fs.String("format", "csv", "output format: csv, yaml or both")
	fs.String("log-level", "info", "log verbosity: info, debug or trace")
	fs.Bool("log-development", false, "human-readable console logs")
}

// Load reads the configuration. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	if c.Points < 1 {
		bad("points must be ≥ 1, got %d", c.Points)
	}
	if c.SlackFactor <= 0 || c.SlackFactor > 1 {
		bad("slack_factor must lie in (0,1], got %v", c.SlackFactor)
	}
	if c.Parallel < 1 {
		bad("parallel must be ≥ 1, got %d", c.Parallel)
	}
	if _, err := c.features(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Output.Format) {
	case "csv", "yaml", "both":
	default:
		bad("output.format must be csv, yaml or both, got %q", c.Output.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if c.Solver.TimeLimit < 0 {
		bad("solver.time_limit must be ≥ 0, got %s", c.Solver.TimeLimit)
	}
	if c.Solver.MaxNodes < 1 {
		bad("solver.max_nodes must be ≥ 1, got %d", c.Solver.MaxNodes)
	}

	return errors.Join(errs...)
}

func (c Config) features() (network.Features, error) {
	var f network.Features
	for _, name := range c.Features {
		x, ok := network.ParseFeature(name)
		if !ok {
			return 0, fmt.Errorf("%w: unknown feature %q", ErrInvalid, name)
		}
		f |= x
	}

	return f, nil
}

// NetworkOptions returns the builder options for the configured variant.
func (c Config) NetworkOptions(log logr.Logger) ([]network.Option, error) {
	f, err := c.features()
	if err != nil {
		return nil, err
	}

	return []network.Option{network.WithFeatures(f), network.WithLogger(log)}, nil
}

// SolverOptions returns the solver options.
func (c Config) SolverOptions(log logr.Logger) solver.Options {
	o := solver.DefaultOptions()
	o.Tolerance = c.Solver.Tolerance
	o.IntegralityTol = c.Solver.IntegralityTol
	o.MaxNodes = c.Solver.MaxNodes
	o.Gap = c.Solver.Gap
	o.TimeLimit = c.Solver.TimeLimit
	o.Logger = log

	return o
}

// SweepOptions returns the frontier sweep options.
func (c Config) SweepOptions(log logr.Logger) pareto.Options {
	return pareto.Options{Points: c.Points, SlackFactor: c.SlackFactor, Logger: log}
}

// Logger builds the configured logger.
func (c Config) Logger() (logr.Logger, error) {
	lvl, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logr.Discard(), err
	}

	return logging.New(lvl, c.Log.Development)
}
