package model

import (
	"fmt"
	"math"
	"slices"
)

// Model holds variables and live constraints. It is not safe for concurrent
// mutation; one goroutine owns a Model and the solver built on it.
type Model struct {
	vars []VarInfo

	rows  map[Handle]*Constraint
	order []Handle // insertion order, may contain released handles
	next  Handle
}

// New returns an empty model.
func New() *Model {
	return &Model{rows: make(map[Handle]*Constraint)}
}

// AddVar appends a variable and returns its index.
func (m *Model) AddVar(name string, kind Kind) Var {
	m.vars = append(m.vars, VarInfo{Name: name, Kind: kind})

	return Var(len(m.vars) - 1)
}

// NumVars returns the number of variables.
func (m *Model) NumVars() int { return len(m.vars) }

// VarInfo returns the description of v.
func (m *Model) VarInfo(v Var) (VarInfo, error) {
	if v < 0 || int(v) >= len(m.vars) {
		return VarInfo{}, fmt.Errorf("%w: %d", ErrUnknownVar, v)
	}

	return m.vars[v], nil
}

// Binaries returns every binary variable in index order.
func (m *Model) Binaries() []Var {
	var out []Var
	for i, vi := range m.vars {
		if vi.Kind == Binary {
			out = append(out, Var(i))
		}
	}

	return out
}

// AddConstraint records expr rel bound and returns its handle. The
// expression is copied, so later changes to expr do not affect the row.
// bound may be ±Inf; the solver decides whether such a row is redundant or
// infeasible.
func (m *Model) AddConstraint(name string, expr *Expr, rel Relation, bound float64) (Handle, error) {
	if expr == nil {
		return 0, ErrNilExpr
	}
	if math.IsNaN(bound) {
		return 0, fmt.Errorf("%w: %s is NaN", ErrInvalidBound, name)
	}
	if rel > EQ {
		return 0, fmt.Errorf("model: constraint %s: unknown relation %v", name, rel)
	}
	for v := range expr.coefs {
		if v < 0 || int(v) >= len(m.vars) {
			return 0, fmt.Errorf("%w: %d in constraint %s", ErrUnknownVar, v, name)
		}
	}

	m.next++
	h := m.next
	m.rows[h] = &Constraint{Handle: h, Name: name, Expr: expr.Clone(), Rel: rel, Bound: bound}
	m.order = append(m.order, h)

	return h, nil
}

// RemoveConstraint releases h.
func (m *Model) RemoveConstraint(h Handle) error {
	if _, ok := m.rows[h]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	delete(m.rows, h)

	// Compact lazily once released handles dominate the order slice.
	if len(m.order) > 2*len(m.rows)+16 {
		m.order = slices.DeleteFunc(m.order, func(x Handle) bool {
			_, live := m.rows[x]
			return !live
		})
	}

	return nil
}

// NumConstraints returns the number of live constraints.
func (m *Model) NumConstraints() int { return len(m.rows) }

// Constraints returns the live constraints in insertion order. The returned
// values share their expressions with the model and must not be modified.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, 0, len(m.rows))
	for _, h := range m.order {
		if c, ok := m.rows[h]; ok {
			out = append(out, *c)
		}
	}

	return out
}

// Constraint returns the live constraint addressed by h.
func (m *Model) Constraint(h Handle) (Constraint, bool) {
	c, ok := m.rows[h]
	if !ok {
		return Constraint{}, false
	}

	return *c, true
}

// CheckExpr reports whether every variable in e belongs to m.
func (m *Model) CheckExpr(e *Expr) error {
	if e == nil {
		return ErrNilExpr
	}
	for v := range e.coefs {
		if v < 0 || int(v) >= len(m.vars) {
			return fmt.Errorf("%w: %d", ErrUnknownVar, v)
		}
	}

	return nil
}
