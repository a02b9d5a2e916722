package solver

import (
	"math"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/katalvlaran/loopchain/model"
)

// problem is one snapshot of the model laid out for HiGHS.
type problem struct {
	hm       highs.Model
	cols     int
	rows     int
	nonzeros int
}

// layout converts m with objective obj into a highs.Model. The returned
// status is NotSolved when the problem must be handed to HiGHS, or
// Infeasible when a row is already decided against.
func layout(m *model.Model, obj *model.Expr, sense model.Sense, tol float64) (*problem, model.Status) {
	n := m.NumVars()
	p := &problem{cols: n}
	hm := &p.hm
	hm.Maximize = sense == model.Maximize
	hm.Offset = obj.Constant()
	hm.ColCosts = make([]float64, n)
	hm.ColLower = make([]float64, n)
	hm.ColUpper = make([]float64, n)
	hm.VarTypes = make([]highs.VariableType, n)
	for v := range n {
		hm.ColUpper[v] = math.Inf(1)
		hm.VarTypes[v] = highs.Continuous
	}
	for _, v := range m.Binaries() {
		hm.ColUpper[v] = 1
		hm.VarTypes[v] = highs.Integer
	}
	for _, t := range obj.Terms() {
		hm.ColCosts[t.Var] = t.Coef
	}

	for _, c := range m.Constraints() {
		rhs := c.Bound - c.Expr.Constant()
		lo, hi, ok := rowBounds(c.Rel, rhs)
		if !ok {
			return nil, model.Infeasible
		}
		if c.Expr.Empty() {
			if !c.Rel.Satisfied(0, rhs, tol*math.Max(1, math.Abs(rhs))) {
				return nil, model.Infeasible
			}
			continue
		}
		terms := c.Expr.Terms()
		cols := make([]int, len(terms))
		vals := make([]float64, len(terms))
		for i, t := range terms {
			cols[i], vals[i] = int(t.Var), t.Coef
		}
		hm.AddSparseRow(lo, cols, vals, hi)
		p.rows++
		p.nonzeros += len(terms)
	}

	return p, model.NotSolved
}

// rowBounds maps rel and rhs onto HiGHS row bounds. +∞ on ≤ and −∞ on ≥
// leave the row free; any other infinite bound cannot be met.
func rowBounds(rel model.Relation, rhs float64) (lo, hi float64, ok bool) {
	switch rel {
	case model.LE:
		if math.IsInf(rhs, -1) {
			return 0, 0, false
		}
		return math.Inf(-1), rhs, true
	case model.GE:
		if math.IsInf(rhs, 1) {
			return 0, 0, false
		}
		return rhs, math.Inf(1), true
	default:
		if math.IsInf(rhs, 0) {
			return 0, 0, false
		}
		return rhs, rhs, true
	}
}

func statusOf(st highs.ModelStatus) model.Status {
	switch st {
	case highs.ModelStatusOptimal:
		return model.Optimal
	case highs.ModelStatusInfeasible:
		return model.Infeasible
	case highs.ModelStatusUnbounded:
		return model.Unbounded
	case highs.ModelStatusTimeLimit, highs.ModelStatusIterationLimit,
		highs.ModelStatusSolutionLimit, highs.ModelStatusInterrupt:
		return model.NodeLimit
	default:
		return model.Numerical
	}
}
