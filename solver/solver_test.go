package solver_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopchain/logging"
	"github.com/katalvlaran/loopchain/model"
	"github.com/katalvlaran/loopchain/solver"
)

const tol = 1e-6

// lp2 is min −x − y s.t. x + 2y ≤ 4, 3x + y ≤ 6; optimum (1.6, 1.2), −2.8.
func lp2(t *testing.T) (*model.Model, model.Var, model.Var) {
	t.Helper()
	m := model.New()
	x := m.AddVar("x", model.Continuous)
	y := m.AddVar("y", model.Continuous)
	_, err := m.AddConstraint("a", model.NewExpr().Add(x, 1).Add(y, 2), model.LE, 4)
	require.NoError(t, err)
	_, err = m.AddConstraint("b", model.NewExpr().Add(x, 3).Add(y, 1), model.LE, 6)
	require.NoError(t, err)

	return m, x, y
}

func newSolver(t *testing.T, m *model.Model) *solver.Solver {
	t.Helper()
	opts := solver.DefaultOptions()
	opts.Logger = logging.NewTestLogger(t)
	s, err := solver.New(m, opts)
	require.NoError(t, err)

	return s
}

func TestOptimize_TwoVariableLP(t *testing.T) {
	m, x, y := lp2(t)
	s := newSolver(t, m)
	require.NoError(t, s.SetObjective(model.NewExpr().Add(x, -1).Add(y, -1), model.Minimize))

	st, err := s.Optimize(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Optimal, st)

	obj, err := s.ValueOf(model.NewExpr().Add(x, -1).Add(y, -1))
	require.NoError(t, err)
	assert.InDelta(t, -2.8, obj, tol)
	vx, _ := s.ValueOf(model.NewExpr().Add(x, 1))
	vy, _ := s.ValueOf(model.NewExpr().Add(y, 1))
	assert.InDelta(t, 1.6, vx, tol)
	assert.InDelta(t, 1.2, vy, tol)
}

func TestOptimize_Maximize(t *testing.T) {
	m, x, y := lp2(t)
	s := newSolver(t, m)
	obj := model.NewExpr().Add(x, 1).Add(y, 1)
	require.NoError(t, s.SetObjective(obj, model.Maximize))

	st, err := s.Optimize(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Optimal, st)
	v, err := s.ValueOf(obj)
	require.NoError(t, err)
	assert.InDelta(t, 2.8, v, tol)
}

func TestOptimize_StatusTaxonomy(t *testing.T) {
	cases := []struct {
		name  string
		build func(m *model.Model, x, y model.Var)
		obj   func(x, y model.Var) *model.Expr
		want  model.Status
	}{
		{"infeasible bounds", func(m *model.Model, x, _ model.Var) {
			_, _ = m.AddConstraint("lo", model.NewExpr().Add(x, 1), model.GE, 2)
			_, _ = m.AddConstraint("hi", model.NewExpr().Add(x, 1), model.LE, 1)
		}, func(x, _ model.Var) *model.Expr { return model.NewExpr().Add(x, 1) }, model.Infeasible},
		{"unbounded ray", func(m *model.Model, x, y model.Var) {
			_, _ = m.AddConstraint("r", model.NewExpr().Add(x, 1).Add(y, -1), model.LE, 1)
		}, func(x, _ model.Var) *model.Expr { return model.NewExpr().Add(x, -1) }, model.Unbounded},
		{"no rows, negative cost", func(*model.Model, model.Var, model.Var) {},
			func(x, _ model.Var) *model.Expr { return model.NewExpr().Add(x, -1) }, model.Unbounded},
		{"no rows, origin optimal", func(*model.Model, model.Var, model.Var) {},
			func(x, _ model.Var) *model.Expr { return model.NewExpr().Add(x, 1) }, model.Optimal},
		{"dependent equalities", func(m *model.Model, x, y model.Var) {
			_, _ = m.AddConstraint("e1", model.NewExpr().Add(x, 1).Add(y, 1), model.EQ, 2)
			_, _ = m.AddConstraint("e2", model.NewExpr().Add(x, 2).Add(y, 2), model.EQ, 4)
		}, func(x, _ model.Var) *model.Expr { return model.NewExpr().Add(x, 1) }, model.Optimal},
		{"contradicting equalities", func(m *model.Model, x, y model.Var) {
			_, _ = m.AddConstraint("e1", model.NewExpr().Add(x, 1).Add(y, 1), model.EQ, 2)
			_, _ = m.AddConstraint("e2", model.NewExpr().Add(x, 2).Add(y, 2), model.EQ, 5)
		}, func(x, _ model.Var) *model.Expr { return model.NewExpr().Add(x, 1) }, model.Infeasible},
		{"non-binding infinite bound", func(m *model.Model, x, _ model.Var) {
			_, _ = m.AddConstraint("inf", model.NewExpr().Add(x, 1), model.LE, math.Inf(1))
			_, _ = m.AddConstraint("lo", model.NewExpr().Add(x, 1), model.GE, 1)
		}, func(x, _ model.Var) *model.Expr { return model.NewExpr().Add(x, 1) }, model.Optimal},
		{"binding infinite bound", func(m *model.Model, x, _ model.Var) {
			_, _ = m.AddConstraint("inf", model.NewExpr().Add(x, 1), model.GE, math.Inf(1))
		}, func(x, _ model.Var) *model.Expr { return model.NewExpr().Add(x, 1) }, model.Infeasible},
		{"empty row violated", func(m *model.Model, _, _ model.Var) {
			_, _ = m.AddConstraint("empty", model.NewExpr(), model.EQ, 3)
		}, func(x, _ model.Var) *model.Expr { return model.NewExpr().Add(x, 1) }, model.Infeasible},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := model.New()
			x := m.AddVar("x", model.Continuous)
			y := m.AddVar("y", model.Continuous)
			tc.build(m, x, y)

			s := newSolver(t, m)
			require.NoError(t, s.SetObjective(tc.obj(x, y), model.Minimize))
			st, err := s.Optimize(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, st)

			_, verr := s.ValueOf(model.NewExpr().Add(x, 1))
			if tc.want == model.Optimal {
				assert.NoError(t, verr)
			} else {
				assert.ErrorIs(t, verr, solver.ErrNoSolution)
			}
		})
	}
}

// facility: meet demand 3 either through x (cost 1, needs an open facility
// with fixed cost 10 and capacity 5) or through shortage s (penalty 4). The
// relaxation opens 60% of the facility (9); the integral optimum stays
// closed (12) while opening costs 13.
func facility(t *testing.T) (*model.Model, *model.Expr, model.Var) {
	t.Helper()
	m := model.New()
	x := m.AddVar("x", model.Continuous)
	sh := m.AddVar("s", model.Continuous)
	w := m.AddVar("w", model.Binary)
	_, err := m.AddConstraint("demand", model.NewExpr().Add(x, 1).Add(sh, 1), model.EQ, 3)
	require.NoError(t, err)
	_, err = m.AddConstraint("cap", model.NewExpr().Add(x, 1).Add(w, -5), model.LE, 0)
	require.NoError(t, err)

	return m, model.NewExpr().Add(w, 10).Add(x, 1).Add(sh, 4), w
}

func TestOptimize_BinaryStaysIntegral(t *testing.T) {
	m, obj, w := facility(t)
	s := newSolver(t, m)
	require.NoError(t, s.SetObjective(obj, model.Minimize))

	st, err := s.Optimize(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Optimal, st)

	v, _ := s.ValueOf(obj)
	assert.InDelta(t, 12, v, tol, "the fractional relaxation would give 9")
	open, _ := s.ValueOf(model.NewExpr().Add(w, 1))
	assert.Equal(t, 0.0, open)

	stats := s.Stats()
	assert.Equal(t, 3, stats.Cols)
	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 4, stats.Nonzeros)
	assert.GreaterOrEqual(t, stats.Runs, 1)
}

func TestOptimize_ForcedOpenFacility(t *testing.T) {
	m, obj, w := facility(t)
	_, err := m.AddConstraint("no_shortage", model.NewExpr().Add(model.Var(1), 1), model.LE, 0)
	require.NoError(t, err)
	s := newSolver(t, m)
	require.NoError(t, s.SetObjective(obj, model.Minimize))

	st, err := s.Optimize(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Optimal, st)
	v, _ := s.ValueOf(obj)
	assert.InDelta(t, 13, v, tol)
	open, _ := s.ValueOf(model.NewExpr().Add(w, 1))
	assert.Equal(t, 1.0, open)
}

func TestOptimize_ConstantsMoveIntoBounds(t *testing.T) {
	m := model.New()
	x := m.AddVar("x", model.Continuous)
	// x + 5 ≥ 7 ⇒ x ≥ 2; objective x + 100.
	_, err := m.AddConstraint("shifted", model.NewExpr().Add(x, 1).AddConst(5), model.GE, 7)
	require.NoError(t, err)
	s := newSolver(t, m)
	obj := model.NewExpr().Add(x, 1).AddConst(100)
	require.NoError(t, s.SetObjective(obj, model.Minimize))

	st, err := s.Optimize(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Optimal, st)
	v, _ := s.ValueOf(obj)
	assert.InDelta(t, 102, v, tol)
}

func TestOptimize_ContextAndMisuse(t *testing.T) {
	m, x, _ := lp2(t)
	s := newSolver(t, m)

	_, err := s.Optimize(context.Background())
	assert.ErrorIs(t, err, solver.ErrNoObjective)

	require.NoError(t, s.SetObjective(model.NewExpr().Add(x, 1), model.Minimize))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Optimize(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, s.SetObjective(model.NewExpr().Add(model.Var(99), 1), model.Minimize), model.ErrUnknownVar)
	_, err = solver.New(nil, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNilModel)

	for name, mutate := range map[string]func(*solver.Options){
		"tolerance":   func(o *solver.Options) { o.Tolerance = 0 },
		"integrality": func(o *solver.Options) { o.IntegralityTol = 0.5 },
		"gap":         func(o *solver.Options) { o.Gap = math.NaN() },
		"nodes":       func(o *solver.Options) { o.MaxNodes = 0 },
		"time limit":  func(o *solver.Options) { o.TimeLimit = -time.Second },
	} {
		bad := solver.DefaultOptions()
		mutate(&bad)
		_, err = solver.New(m, bad)
		assert.ErrorIs(t, err, solver.ErrInvalidOptions, name)
	}
}

func TestSolver_ConstraintMutationInvalidatesSolution(t *testing.T) {
	m, x, y := lp2(t)
	s := newSolver(t, m)
	obj := model.NewExpr().Add(x, -1).Add(y, -1)
	require.NoError(t, s.SetObjective(obj, model.Minimize))
	_, err := s.Optimize(context.Background())
	require.NoError(t, err)

	before := s.NumConstraints()
	h, err := s.AddConstraint("cut", model.NewExpr().Add(x, 1).Add(y, 1), model.LE, 1)
	require.NoError(t, err)
	_, err = s.ValueOf(obj)
	assert.ErrorIs(t, err, solver.ErrNoSolution)

	st, err := s.Optimize(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Optimal, st)
	v, _ := s.ValueOf(obj)
	assert.InDelta(t, -1, v, tol)

	require.NoError(t, s.RemoveConstraint(h))
	assert.Equal(t, before, s.NumConstraints())
	assert.ErrorIs(t, s.RemoveConstraint(h), model.ErrUnknownHandle)
}
