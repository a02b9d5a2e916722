package pareto

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/loopchain/logging"
)

// Run computes the payoff table, sweeps both curves and hands the frontier
// to sink when one is given.
func Run(ctx context.Context, o Oracle, obj Objectives, opts Options, sink Sink) (Frontier, error) {
	if err := opts.validate(); err != nil {
		return Frontier{}, err
	}
	pt, err := computePayoff(ctx, o, obj, opts.Logger)
	if err != nil {
		return Frontier{}, err
	}
	f, err := Sweep(ctx, o, obj, pt, opts)
	if err != nil {
		return f, err
	}
	opts.Logger.V(logging.INFO).Info("frontier traced",
		"costPoints", len(f.CostCurve.Points), "costDropped", len(f.CostCurve.Dropped),
		"envPoints", len(f.EnvCurve.Points), "envDropped", len(f.EnvCurve.Dropped))
	if sink != nil {
		if err := sink.Consume(f); err != nil {
			return f, fmt.Errorf("pareto: sink: %w", err)
		}
	}

	return f, nil
}

// Scenario is one independent parameterization. Build must return a fresh
// oracle that shares no mutable state with any other scenario.
type Scenario struct {
	Name  string
	Build func() (Oracle, Objectives, error)
}

// ScenarioResult pairs a scenario name with its frontier.
type ScenarioResult struct {
	Name     string
	Frontier Frontier
}

// RunScenarios runs every scenario on its own oracle, at most limit at a time
// (limit ≤ 0 means no limit). Results keep the input order. The first error
// cancels the remaining scenarios.
func RunScenarios(ctx context.Context, scenarios []Scenario, opts Options, limit int) ([]ScenarioResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	out := make([]ScenarioResult, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			o, obj, err := sc.Build()
			if err != nil {
				return fmt.Errorf("pareto: scenario %s: build: %w", sc.Name, err)
			}
			so := opts
			so.Logger = opts.Logger.WithValues("scenario", sc.Name)
			f, err := Run(gctx, o, obj, so, nil)
			if err != nil {
				return fmt.Errorf("pareto: scenario %s: %w", sc.Name, err)
			}
			out[i] = ScenarioResult{Name: sc.Name, Frontier: f}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
