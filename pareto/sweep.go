package pareto

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/loopchain/logging"
	"github.com/katalvlaran/loopchain/model"
)

// Grid returns n evenly spaced values from lo to hi inclusive. A single point
// sits at hi, the loose end of every sweep.
func Grid(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{hi}
	}

	return floats.Span(make([]float64, n), lo, hi)
}

// Tighten moves t inwards by the fraction 1−factor of its magnitude. For
// factor in (0,1] the result never exceeds t and is non-decreasing in t.
func Tighten(t, factor float64) float64 {
	return t - math.Abs(t)*(1-factor)
}

// sweepBound is the bound imposed for threshold t on a curve whose lower
// endpoint lo is a proven minimum: Tighten(t), but never below lo, so the
// extreme itself is recorded instead of dropped as infeasible.
func sweepBound(t, lo, factor float64) float64 {
	return math.Max(Tighten(t, factor), lo)
}

// withBound keeps e ≤ bound live for the duration of fn and releases it on
// every return path.
func withBound(o Oracle, name string, e *model.Expr, bound float64, fn func() error) (err error) {
	h, err := o.AddConstraint(name, e, model.LE, bound)
	if err != nil {
		return fmt.Errorf("pareto: acquire %s: %w", name, err)
	}
	defer func() {
		if rerr := o.RemoveConstraint(h); rerr != nil {
			err = errors.Join(err, fmt.Errorf("pareto: release %s: %w", name, rerr))
		}
	}()

	return fn()
}

// SweepCurve evaluates one directional curve over Grid(lo, hi, opts.Points).
// Only misuse, context cancellation and constraint bookkeeping failures
// return an error; non-optimal points are recorded in Curve.Dropped.
func SweepCurve(ctx context.Context, o Oracle, obj Objectives, kind CurveKind, lo, hi float64, opts Options) (Curve, error) {
	if err := opts.validate(); err != nil {
		return Curve{}, err
	}
	if err := obj.check(); err != nil {
		return Curve{}, err
	}

	minimized, bounded, boundedName := obj.Cost, obj.Environmental, "environmental"
	if kind == EnvCurve {
		minimized, bounded, boundedName = obj.Environmental, obj.Cost, "cost"
	}
	if err := o.SetObjective(minimized, model.Minimize); err != nil {
		return Curve{}, fmt.Errorf("pareto: %s curve: %w", kind, err)
	}

	var (
		log   = opts.Logger.WithValues("curve", kind.String())
		curve = Curve{Kind: kind}
		grid  = Grid(lo, hi, opts.Points)
	)
	for i, t := range grid {
		bound := sweepBound(t, lo, opts.SlackFactor)
		name := fmt.Sprintf("epsilon_%s[%d]", boundedName, i)

		err := withBound(o, name, bounded, bound, func() error {
			st, err := o.Optimize(ctx)
			if err != nil {
				return err
			}
			if !st.Optimal() {
				d := Dropped{
					Index:     i,
					Threshold: t,
					Bound:     bound,
					Status:    st,
					Reason:    fmt.Sprintf("%s with %s <= %g", st, boundedName, bound),
				}
				curve.Dropped = append(curve.Dropped, d)
				log.V(logging.INFO).Info("grid point dropped", "index", i, "bound", bound, "status", st.String())
				return nil
			}

			p := Point{Index: i, Threshold: t, Bound: bound}
			if p.Cost, err = o.ValueOf(obj.Cost); err != nil {
				return err
			}
			if p.Environmental, err = o.ValueOf(obj.Environmental); err != nil {
				return err
			}
			curve.Points = append(curve.Points, p)
			log.V(logging.DEBUG).Info("grid point", "index", i, "bound", bound, "cost", p.Cost, "environmental", p.Environmental)

			return nil
		})
		if err != nil {
			return curve, fmt.Errorf("pareto: %s curve point %d: %w", kind, i, err)
		}
	}

	return curve, nil
}

// Sweep runs both curves over the ranges given by pt.
func Sweep(ctx context.Context, o Oracle, obj Objectives, pt PayoffTable, opts Options) (Frontier, error) {
	f := Frontier{Payoff: pt}
	before := o.NumConstraints()

	var err error
	f.CostCurve, err = SweepCurve(ctx, o, obj, CostCurve, pt.EnvMin, pt.EnvAtCostMin, opts)
	if err != nil {
		return f, err
	}
	f.EnvCurve, err = SweepCurve(ctx, o, obj, EnvCurve, pt.CostMin, pt.CostAtEnvMin, opts)
	if err != nil {
		return f, err
	}
	if after := o.NumConstraints(); after != before {
		return f, fmt.Errorf("%w: %d rows before sweep, %d after", ErrConstraintLeak, before, after)
	}

	return f, nil
}
