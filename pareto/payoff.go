package pareto

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/loopchain/logging"
	"github.com/katalvlaran/loopchain/model"
)

// ComputePayoff minimizes each objective with no epsilon bound and reads the
// other objective at that optimum. A non-optimal extreme is fatal and comes
// back as *ExtremeError.
func ComputePayoff(ctx context.Context, o Oracle, obj Objectives) (PayoffTable, error) {
	return computePayoff(ctx, o, obj, logr.Discard())
}

func computePayoff(ctx context.Context, o Oracle, obj Objectives, log logr.Logger) (PayoffTable, error) {
	if err := obj.check(); err != nil {
		return PayoffTable{}, err
	}
	var (
		pt  PayoffTable
		err error
	)
	pt.CostMin, pt.EnvAtCostMin, err = extreme(ctx, o, "cost", obj.Cost, obj.Environmental)
	if err != nil {
		return PayoffTable{}, err
	}
	pt.EnvMin, pt.CostAtEnvMin, err = extreme(ctx, o, "environmental", obj.Environmental, obj.Cost)
	if err != nil {
		return PayoffTable{}, err
	}
	log.V(logging.INFO).Info("payoff table",
		"costMin", pt.CostMin, "envAtCostMin", pt.EnvAtCostMin,
		"envMin", pt.EnvMin, "costAtEnvMin", pt.CostAtEnvMin)

	return pt, nil
}

// extreme minimizes primary and returns (primary, other) at the optimum.
func extreme(ctx context.Context, o Oracle, name string, primary, other *model.Expr) (float64, float64, error) {
	if err := o.SetObjective(primary, model.Minimize); err != nil {
		return 0, 0, fmt.Errorf("pareto: payoff %s: %w", name, err)
	}
	st, err := o.Optimize(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("pareto: payoff %s: %w", name, err)
	}
	if !st.Optimal() {
		return 0, 0, &ExtremeError{Objective: name, Status: st}
	}
	p, err := o.ValueOf(primary)
	if err != nil {
		return 0, 0, fmt.Errorf("pareto: payoff %s: %w", name, err)
	}
	q, err := o.ValueOf(other)
	if err != nil {
		return 0, 0, fmt.Errorf("pareto: payoff %s: %w", name, err)
	}

	return p, q, nil
}
