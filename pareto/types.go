package pareto

import (
	"context"
	"fmt"

	"github.com/katalvlaran/loopchain/model"
)

// Oracle is the solve contract the sweep relies on. solver.Solver implements
// it; the sweep never solves anything itself.
type Oracle interface {
	SetObjective(e *model.Expr, sense model.Sense) error
	AddConstraint(name string, e *model.Expr, rel model.Relation, bound float64) (model.Handle, error)
	RemoveConstraint(h model.Handle) error
	Optimize(ctx context.Context) (model.Status, error)
	ValueOf(e *model.Expr) (float64, error)
	NumConstraints() int
}

// Sink consumes a finished frontier.
type Sink interface {
	Consume(f Frontier) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Frontier) error

func (fn SinkFunc) Consume(f Frontier) error { return fn(f) }

// Objectives are the two live objective expressions.
type Objectives struct {
	Cost          *model.Expr
	Environmental *model.Expr
}

func (o Objectives) check() error {
	if o.Cost == nil || o.Environmental == nil {
		return ErrNilObjective
	}

	return nil
}

// PayoffTable holds the four extreme values bounding the sweep.
type PayoffTable struct {
	CostMin      float64 `yaml:"cost_min"`
	EnvAtCostMin float64 `yaml:"env_at_cost_min"`
	EnvMin       float64 `yaml:"env_min"`
	CostAtEnvMin float64 `yaml:"cost_at_env_min"`
}

// CurveKind names the objective a curve minimizes.
type CurveKind uint8

const (
	// CostCurve minimizes Cost under Environmental ≤ ε (Curve A).
	CostCurve CurveKind = iota
	// EnvCurve minimizes Environmental under Cost ≤ ε (Curve B).
	EnvCurve
)

func (k CurveKind) String() string {
	switch k {
	case CostCurve:
		return "cost_min"
	case EnvCurve:
		return "env_min"
	default:
		return fmt.Sprintf("CurveKind(%d)", uint8(k))
	}
}

// Point is one optimal grid point.
type Point struct {
	Index         int     `yaml:"index"`
	Threshold     float64 `yaml:"threshold"` // grid value of the bounded objective
	Bound         float64 `yaml:"bound"`     // tightened bound actually imposed
	Cost          float64 `yaml:"cost"`
	Environmental float64 `yaml:"environmental"`
}

// Dropped is a grid point that did not solve to optimality.
type Dropped struct {
	Index     int          `yaml:"index"`
	Threshold float64      `yaml:"threshold"`
	Bound     float64      `yaml:"bound"`
	Status    model.Status `yaml:"status"`
	Reason    string       `yaml:"reason"`
}

// Curve is one directional sweep, points in grid order.
type Curve struct {
	Kind    CurveKind `yaml:"kind"`
	Points  []Point   `yaml:"points"`
	Dropped []Dropped `yaml:"dropped,omitempty"`
}

// Frontier is the complete result of a run.
type Frontier struct {
	Payoff    PayoffTable `yaml:"payoff"`
	CostCurve Curve       `yaml:"cost_curve"`
	EnvCurve  Curve       `yaml:"env_curve"`
}

// MarshalText renders the kind by name.
func (k CurveKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses a kind name as written by MarshalText.
func (k *CurveKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "cost_min":
		*k = CostCurve
	case "env_min":
		*k = EnvCurve
	default:
		return fmt.Errorf("pareto: unknown curve kind %q", b)
	}

	return nil
}
