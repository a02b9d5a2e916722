package model

import "slices"

// Term is one coefficient·variable product.
type Term struct {
	Var  Var
	Coef float64
}

// Expr is a sparse affine expression Σ coef·var + constant.
// The zero value is not usable; call NewExpr.
type Expr struct {
	coefs    map[Var]float64
	constant float64
}

// NewExpr returns an empty expression.
func NewExpr() *Expr {
	return &Expr{coefs: make(map[Var]float64)}
}

// Add adds coef·v and returns e for chaining. Zero coefficients are ignored;
// a term that cancels to exactly zero is removed.
func (e *Expr) Add(v Var, coef float64) *Expr {
	if coef == 0 {
		return e
	}
	c := e.coefs[v] + coef
	if c == 0 {
		delete(e.coefs, v)
	} else {
		e.coefs[v] = c
	}

	return e
}

// AddConst adds c to the constant term.
func (e *Expr) AddConst(c float64) *Expr {
	e.constant += c

	return e
}

// AddExpr adds scale·o (terms and constant) to e.
func (e *Expr) AddExpr(o *Expr, scale float64) *Expr {
	if o == nil || scale == 0 {
		return e
	}
	for v, c := range o.coefs {
		e.Add(v, scale*c)
	}
	e.constant += scale * o.constant

	return e
}

// Scale multiplies every term and the constant by s.
func (e *Expr) Scale(s float64) *Expr {
	if s == 0 {
		clear(e.coefs)
		e.constant = 0
		return e
	}
	for v := range e.coefs {
		e.coefs[v] *= s
	}
	e.constant *= s

	return e
}

// Coef returns the coefficient of v (0 when absent).
func (e *Expr) Coef(v Var) float64 { return e.coefs[v] }

// Constant returns the constant term.
func (e *Expr) Constant() float64 { return e.constant }

// Len returns the number of non-zero terms.
func (e *Expr) Len() int { return len(e.coefs) }

// Empty reports whether e has no variable terms.
func (e *Expr) Empty() bool { return len(e.coefs) == 0 }

// Terms returns the non-zero terms ordered by variable.
func (e *Expr) Terms() []Term {
	out := make([]Term, 0, len(e.coefs))
	for v, c := range e.coefs {
		out = append(out, Term{Var: v, Coef: c})
	}
	slices.SortFunc(out, func(a, b Term) int { return int(a.Var) - int(b.Var) })

	return out
}

// Clone returns a deep copy of e.
func (e *Expr) Clone() *Expr {
	cp := &Expr{coefs: make(map[Var]float64, len(e.coefs)), constant: e.constant}
	for v, c := range e.coefs {
		cp.coefs[v] = c
	}

	return cp
}

// Eval returns the value of e at x, where x[v] is the value of variable v.
// Variables beyond len(x) evaluate to 0.
func (e *Expr) Eval(x []float64) float64 {
	sum := e.constant
	// Sorted terms keep the summation order, and so the rounding, stable.
	for _, t := range e.Terms() {
		if int(t.Var) < len(x) {
			sum += t.Coef * x[t.Var]
		}
	}

	return sum
}

// Sum returns a fresh expression Σ exprs.
func Sum(exprs ...*Expr) *Expr {
	out := NewExpr()
	for _, x := range exprs {
		out.AddExpr(x, 1)
	}

	return out
}
