package model

import "fmt"

// Var identifies a model column.
type Var int

// Kind is the domain of a variable.
type Kind uint8

const (
	// Continuous variables range over [0, +∞).
	Continuous Kind = iota
	// Binary variables take values in {0, 1}.
	Binary
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Sense is the optimization direction of an objective.
type Sense uint8

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Relation is the comparison of a constraint row against its bound.
type Relation uint8

const (
	LE Relation = iota // expr ≤ bound
	GE                 // expr ≥ bound
	EQ                 // expr = bound
)

func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "=="
	default:
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
}

// Satisfied reports whether lhs rel rhs holds within tol.
func (r Relation) Satisfied(lhs, rhs, tol float64) bool {
	switch r {
	case LE:
		return lhs <= rhs+tol
	case GE:
		return lhs >= rhs-tol
	default:
		d := lhs - rhs
		return d <= tol && d >= -tol
	}
}

// Handle addresses one live constraint.
type Handle int64

// VarInfo describes a variable.
type VarInfo struct {
	Name string
	Kind Kind
}

// Constraint is one row: Expr Rel Bound. A constant inside Expr is moved to
// the right-hand side by the solver.
type Constraint struct {
	Handle Handle
	Name   string
	Expr   *Expr
	Rel    Relation
	Bound  float64
}

// Status is the outcome of one optimization call.
type Status uint8

const (
	NotSolved Status = iota
	Optimal
	Infeasible
	Unbounded
	NodeLimit // search budget exhausted before optimality was proven
	Numerical // the LP engine failed for numerical reasons
)

// Optimal reports whether s == Optimal.
func (s Status) Optimal() bool { return s == Optimal }

func (s Status) String() string {
	switch s {
	case NotSolved:
		return "not_solved"
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case NodeLimit:
		return "node_limit"
	case Numerical:
		return "numerical"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// MarshalText renders the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a status name as written by MarshalText.
func (s *Status) UnmarshalText(b []byte) error {
	for v := NotSolved; v <= Numerical; v++ {
		if v.String() == string(b) {
			*s = v
			return nil
		}
	}

	return fmt.Errorf("model: unknown status %q", b)
}
