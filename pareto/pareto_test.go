package pareto_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopchain/logging"
	"github.com/katalvlaran/loopchain/model"
	"github.com/katalvlaran/loopchain/pareto"
	"github.com/katalvlaran/loopchain/solver"
)

// toy meets a demand of 10 from a cheap dirty source x (cost 1, env 2) and an
// expensive clean source y (cost 3, env 0.5). Payoff: CostMin 10 at Env 20,
// EnvMin 5 at Cost 30.
func toy(t *testing.T) (*solver.Solver, pareto.Objectives) {
	t.Helper()
	m := model.New()
	x := m.AddVar("x", model.Continuous)
	y := m.AddVar("y", model.Continuous)
	_, err := m.AddConstraint("demand", model.NewExpr().Add(x, 1).Add(y, 1), model.EQ, 10)
	require.NoError(t, err)

	s, err := solver.New(m, solver.DefaultOptions())
	require.NoError(t, err)

	return s, pareto.Objectives{
		Cost:          model.NewExpr().Add(x, 1).Add(y, 3),
		Environmental: model.NewExpr().Add(x, 2).Add(y, 0.5),
	}
}

func testOptions(t *testing.T, points int) pareto.Options {
	opts := pareto.DefaultOptions()
	opts.Points = points
	opts.Logger = logging.NewTestLogger(t)

	return opts
}

func TestComputePayoff_Toy(t *testing.T) {
	s, obj := toy(t)
	pt, err := pareto.ComputePayoff(context.Background(), s, obj)
	require.NoError(t, err)

	assert.InDelta(t, 10, pt.CostMin, 1e-6)
	assert.InDelta(t, 20, pt.EnvAtCostMin, 1e-6)
	assert.InDelta(t, 5, pt.EnvMin, 1e-6)
	assert.InDelta(t, 30, pt.CostAtEnvMin, 1e-6)
}

func TestComputePayoff_InfeasibleExtremeIsFatal(t *testing.T) {
	s, obj := toy(t)
	_, err := s.AddConstraint("impossible", obj.Cost, model.LE, 1)
	require.NoError(t, err)

	_, err = pareto.ComputePayoff(context.Background(), s, obj)
	require.Error(t, err)
	assert.ErrorIs(t, err, pareto.ErrPayoffInfeasible)

	var ee *pareto.ExtremeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "cost", ee.Objective)
	assert.Equal(t, model.Infeasible, ee.Status)
}

func TestSweep_ToyCurves(t *testing.T) {
	s, obj := toy(t)
	ctx := context.Background()
	pt, err := pareto.ComputePayoff(ctx, s, obj)
	require.NoError(t, err)

	before := s.NumConstraints()
	f, err := pareto.Sweep(ctx, s, obj, pt, testOptions(t, 4))
	require.NoError(t, err)
	assert.Equal(t, before, s.NumConstraints())

	// Tightening stops at each proven minimum, so the extremes survive.
	for _, c := range []pareto.Curve{f.CostCurve, f.EnvCurve} {
		assert.Empty(t, c.Dropped, c.Kind.String())
		require.Len(t, c.Points, 4, c.Kind.String())
	}
	assert.Equal(t, pt.EnvMin, f.CostCurve.Points[0].Bound)
	assert.InDelta(t, pt.CostAtEnvMin, f.CostCurve.Points[0].Cost, 1e-6)
	assert.Equal(t, pt.CostMin, f.EnvCurve.Points[0].Bound)
	assert.InDelta(t, pt.EnvAtCostMin, f.EnvCurve.Points[0].Environmental, 1e-6)

	// env ≤ b ⇒ x = (b−5)/1.5 and cost = 30 − 2x.
	for _, p := range f.CostCurve.Points {
		x := (p.Bound - 5) / 1.5
		assert.InDelta(t, 30-2*x, p.Cost, 1e-6)
		assert.LessOrEqual(t, p.Environmental, p.Bound+1e-6)
		assert.LessOrEqual(t, p.Bound, p.Threshold)
	}
	for i := 1; i < len(f.CostCurve.Points); i++ {
		assert.LessOrEqual(t, f.CostCurve.Points[i].Cost, f.CostCurve.Points[i-1].Cost+1e-6)
	}
	for i := 1; i < len(f.EnvCurve.Points); i++ {
		assert.LessOrEqual(t, f.EnvCurve.Points[i].Environmental, f.EnvCurve.Points[i-1].Environmental+1e-6)
	}
}

func TestGridAndTighten(t *testing.T) {
	assert.Equal(t, []float64{0, 5, 10}, pareto.Grid(0, 10, 3))
	assert.Equal(t, []float64{7}, pareto.Grid(3, 7, 1))
	assert.Nil(t, pareto.Grid(0, 1, 0))

	assert.InDelta(t, 99.9, pareto.Tighten(100, 0.999), 1e-12)
	assert.InDelta(t, -100.1, pareto.Tighten(-100, 0.999), 1e-12)
	assert.Equal(t, 0.0, pareto.Tighten(0, 0.999))
	assert.Equal(t, 42.0, pareto.Tighten(42, 1))

	// Monotone: tightening preserves the grid order.
	prev := pareto.Tighten(-50, 0.9)
	for _, x := range pareto.Grid(-50, 50, 11)[1:] {
		cur := pareto.Tighten(x, 0.9)
		assert.Greater(t, cur, prev)
		prev = cur
	}
}

func TestSweepCurve_InvalidOptions(t *testing.T) {
	s, obj := toy(t)
	for _, opts := range []pareto.Options{
		{Points: 0, SlackFactor: 0.999},
		{Points: 3, SlackFactor: 0},
		{Points: 3, SlackFactor: 1.01},
	} {
		_, err := pareto.SweepCurve(context.Background(), s, obj, pareto.CostCurve, 0, 1, opts)
		assert.ErrorIs(t, err, pareto.ErrInvalidOptions)
	}
	_, err := pareto.SweepCurve(context.Background(), s, pareto.Objectives{}, pareto.CostCurve, 0, 1, pareto.DefaultOptions())
	assert.ErrorIs(t, err, pareto.ErrNilObjective)
}

// failingOracle fails Optimize after a number of successful calls.
type failingOracle struct {
	*solver.Solver
	okCalls int
	calls   int
}

var errSolverDown = errors.New("solver down")

func (f *failingOracle) Optimize(ctx context.Context) (model.Status, error) {
	f.calls++
	if f.calls > f.okCalls {
		return model.NotSolved, errSolverDown
	}

	return f.Solver.Optimize(ctx)
}

func TestSweepCurve_ReleasesBoundOnError(t *testing.T) {
	s, obj := toy(t)
	o := &failingOracle{Solver: s, okCalls: 2}
	before := o.NumConstraints()

	c, err := pareto.SweepCurve(context.Background(), o, obj, pareto.CostCurve, 5, 20, testOptions(t, 5))
	require.ErrorIs(t, err, errSolverDown)
	assert.Equal(t, before, o.NumConstraints(), "epsilon row released on the error path")
	assert.Len(t, c.Points, 2)
	assert.Empty(t, c.Dropped)
}

func TestSweepCurve_DropsInfeasiblePoints(t *testing.T) {
	s, obj := toy(t)
	before := s.NumConstraints()

	// env ≥ 5 for every feasible mix, so env ≤ 2 cannot hold.
	c, err := pareto.SweepCurve(context.Background(), s, obj, pareto.CostCurve, 2, 20, testOptions(t, 4))
	require.NoError(t, err)
	assert.Equal(t, before, s.NumConstraints())

	require.Len(t, c.Dropped, 1)
	d := c.Dropped[0]
	assert.Equal(t, 0, d.Index)
	assert.Equal(t, 2.0, d.Bound)
	assert.Equal(t, model.Infeasible, d.Status)
	assert.Contains(t, d.Reason, "environmental <= 2")
	assert.Len(t, c.Points, 3)
}

func TestSweepCurve_ContextCancelled(t *testing.T) {
	s, obj := toy(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	before := s.NumConstraints()
	_, err := pareto.SweepCurve(ctx, s, obj, pareto.EnvCurve, 10, 30, testOptions(t, 3))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, before, s.NumConstraints())
}

func TestRun_HandsFrontierToSink(t *testing.T) {
	s, obj := toy(t)
	var got *pareto.Frontier
	sink := pareto.SinkFunc(func(f pareto.Frontier) error {
		got = &f
		return nil
	})

	f, err := pareto.Run(context.Background(), s, obj, testOptions(t, 3), sink)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, f, *got)

	boom := errors.New("disk full")
	_, err = pareto.Run(context.Background(), s, obj, testOptions(t, 3), pareto.SinkFunc(func(pareto.Frontier) error { return boom }))
	assert.ErrorIs(t, err, boom)
}
