package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopchain/model"
)

func TestExpr_AddCancelAndEval(t *testing.T) {
	m := model.New()
	x := m.AddVar("x", model.Continuous)
	y := m.AddVar("y", model.Continuous)

	e := model.NewExpr().Add(x, 2).Add(y, 3).AddConst(1)
	assert.Equal(t, 2, e.Len())
	assert.InDelta(t, 1+2*4+3*5, e.Eval([]float64{4, 5}), 1e-12)

	e.Add(y, -3)
	assert.Equal(t, 1, e.Len(), "cancelled term is dropped")
	assert.Equal(t, 0.0, e.Coef(y))

	f := model.Sum(e, model.NewExpr().Add(x, 1)).Scale(2)
	assert.Equal(t, 6.0, f.Coef(x))
	assert.Equal(t, 2.0, f.Constant())

	terms := model.NewExpr().Add(y, 1).Add(x, 1).Terms()
	require.Len(t, terms, 2)
	assert.Equal(t, x, terms[0].Var)
}

func TestModel_ConstraintLifecycle(t *testing.T) {
	m := model.New()
	x := m.AddVar("x", model.Continuous)
	w := m.AddVar("w", model.Binary)
	assert.Equal(t, []model.Var{w}, m.Binaries())

	e := model.NewExpr().Add(x, 1)
	h1, err := m.AddConstraint("a", e, model.LE, 10)
	require.NoError(t, err)
	h2, err := m.AddConstraint("b", e, model.GE, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumConstraints())

	// The row keeps its own copy of the expression.
	e.Add(w, 5)
	c, ok := m.Constraint(h1)
	require.True(t, ok)
	assert.Equal(t, 0.0, c.Expr.Coef(w))

	require.NoError(t, m.RemoveConstraint(h1))
	assert.ErrorIs(t, m.RemoveConstraint(h1), model.ErrUnknownHandle)
	assert.Equal(t, 1, m.NumConstraints())

	rows := m.Constraints()
	require.Len(t, rows, 1)
	assert.Equal(t, h2, rows[0].Handle)
	assert.Equal(t, "b", rows[0].Name)

	h3, err := m.AddConstraint("c", e, model.EQ, 2)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3, "handles are never reused")
}

func TestModel_RejectsBadRows(t *testing.T) {
	m := model.New()
	x := m.AddVar("x", model.Continuous)

	_, err := m.AddConstraint("nan", model.NewExpr().Add(x, 1), model.LE, math.NaN())
	assert.ErrorIs(t, err, model.ErrInvalidBound)

	_, err = m.AddConstraint("ghost", model.NewExpr().Add(model.Var(7), 1), model.LE, 1)
	assert.ErrorIs(t, err, model.ErrUnknownVar)

	_, err = m.AddConstraint("nil", nil, model.LE, 1)
	assert.ErrorIs(t, err, model.ErrNilExpr)

	_, err = m.AddConstraint("inf", model.NewExpr().Add(x, 1), model.LE, math.Inf(1))
	assert.NoError(t, err, "infinite bounds are legal")
}

func TestModel_ManyAddRemoveKeepsOrder(t *testing.T) {
	m := model.New()
	x := m.AddVar("x", model.Continuous)
	keep, err := m.AddConstraint("keep", model.NewExpr().Add(x, 1), model.LE, 1)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		h, err := m.AddConstraint("tmp", model.NewExpr().Add(x, 1), model.LE, float64(i))
		require.NoError(t, err)
		require.NoError(t, m.RemoveConstraint(h))
	}
	rows := m.Constraints()
	require.Len(t, rows, 1)
	assert.Equal(t, keep, rows[0].Handle)
}

func TestRelation_Satisfied(t *testing.T) {
	assert.True(t, model.LE.Satisfied(1+1e-10, 1, 1e-9))
	assert.False(t, model.GE.Satisfied(0.9, 1, 1e-9))
	assert.True(t, model.EQ.Satisfied(1, 1+1e-12, 1e-9))
	assert.Equal(t, "optimal", model.Optimal.String())
	assert.True(t, model.Optimal.Optimal())
	assert.False(t, model.Infeasible.Optimal())
}

func TestStatus_TextRoundTrip(t *testing.T) {
	for s := model.NotSolved; s <= model.Numerical; s++ {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var got model.Status
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}
	var s model.Status
	assert.Error(t, s.UnmarshalText([]byte("maybe")))
}
