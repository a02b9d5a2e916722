package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/katalvlaran/loopchain/logging"
	"github.com/katalvlaran/loopchain/model"
)

var errNoHighsSolution = errors.New("solver: highs returned no solution")

// Stats describes the last Optimize call.
type Stats struct {
	Cols     int           // columns handed to HiGHS
	Rows     int           // rows handed to HiGHS
	Nonzeros int           // constraint matrix entries
	Runs     int           // HiGHS runs, two when presolve could not decide
	Elapsed  time.Duration // wall time spent in HiGHS
}

// Solver adapts a model to the solve-oracle contract.
type Solver struct {
	m    *model.Model
	opts Options

	obj   *model.Expr
	sense model.Sense

	status model.Status
	x      []float64
	stats  Stats
}

// New returns a Solver over m. m stays owned by the caller but must not be
// mutated concurrently with the Solver.
func New(m *model.Model, opts Options) (*Solver, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Solver{m: m, opts: opts}, nil
}

// SetObjective replaces the objective. The expression is copied.
func (s *Solver) SetObjective(e *model.Expr, sense model.Sense) error {
	if err := s.m.CheckExpr(e); err != nil {
		return fmt.Errorf("solver: objective: %w", err)
	}
	s.obj = e.Clone()
	s.sense = sense
	s.invalidate()

	return nil
}

// AddConstraint adds a row to the underlying model.
func (s *Solver) AddConstraint(name string, e *model.Expr, rel model.Relation, bound float64) (model.Handle, error) {
	h, err := s.m.AddConstraint(name, e, rel, bound)
	if err != nil {
		return 0, fmt.Errorf("solver: %w", err)
	}
	s.invalidate()

	return h, nil
}

// RemoveConstraint removes a row from the underlying model.
func (s *Solver) RemoveConstraint(h model.Handle) error {
	if err := s.m.RemoveConstraint(h); err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	s.invalidate()

	return nil
}

// NumConstraints returns the number of live model rows.
func (s *Solver) NumConstraints() int { return s.m.NumConstraints() }

// Status returns the status of the last Optimize.
func (s *Solver) Status() model.Status { return s.status }

// Stats returns counters of the last Optimize.
func (s *Solver) Stats() Stats { return s.stats }

// Solution returns a copy of the incumbent, indexed by model.Var.
func (s *Solver) Solution() ([]float64, error) {
	if s.x == nil {
		return nil, ErrNoSolution
	}

	return append([]float64(nil), s.x...), nil
}

// ValueOf evaluates e at the incumbent of the last Optimize.
func (s *Solver) ValueOf(e *model.Expr) (float64, error) {
	if s.x == nil {
		return math.NaN(), ErrNoSolution
	}
	if err := s.m.CheckExpr(e); err != nil {
		return math.NaN(), fmt.Errorf("solver: value: %w", err)
	}

	return e.Eval(s.x), nil
}

func (s *Solver) invalidate() {
	s.status = model.NotSolved
	s.x = nil
}

// Optimize solves the current model. A non-optimal outcome is reported through
// the status with a nil error; errors are reserved for misuse and ctx.
func (s *Solver) Optimize(ctx context.Context) (model.Status, error) {
	s.invalidate()
	s.stats = Stats{}
	if s.obj == nil {
		return model.NotSolved, ErrNoObjective
	}
	if err := ctx.Err(); err != nil {
		return model.NotSolved, err
	}

	log := s.opts.Logger
	p, st := layout(s.m, s.obj, s.sense, s.opts.Tolerance)
	if st != model.NotSolved {
		s.status = st
		log.V(logging.DEBUG).Info("optimize decided by layout", "status", st.String(), "rows", s.m.NumConstraints())
		return st, nil
	}
	s.stats.Cols, s.stats.Rows, s.stats.Nonzeros = p.cols, p.rows, p.nonzeros

	opts := s.opts.highsOptions(ctx)
	sol, err := s.run(ctx, p, opts)
	if err == nil && sol.Status == highs.ModelStatusUnboundedOrInfeasible {
		// Presolve cannot tell the two apart; the plain simplex can.
		sol, err = s.run(ctx, p, append(opts, highs.WithPresolve("off")))
	}
	switch {
	case ctx.Err() != nil:
		return model.NotSolved, ctx.Err()
	case err != nil:
		log.V(logging.INFO).Info("highs run failed", "reason", err.Error())
		s.status = model.Numerical
		return s.status, nil
	}

	st = statusOf(sol.Status)
	if sol.Status == highs.ModelStatusUnboundedOrInfeasible {
		st = model.Infeasible
	}
	if x := s.incumbent(st, sol.ColValues); x != nil {
		s.x = x
	}
	s.status = st
	log.V(logging.DEBUG).Info("optimize done",
		"status", st.String(),
		"cols", p.cols,
		"rows", p.rows,
		"nonzeros", p.nonzeros,
		"runs", s.stats.Runs,
		"elapsed", s.stats.Elapsed)

	return st, nil
}

// run performs one HiGHS solve of p. It returns as soon as ctx is done; the
// HiGHS run itself then stops at its time limit.
func (s *Solver) run(ctx context.Context, p *problem, opts []highs.SolveOption) (*highs.Solution, error) {
	type result struct {
		sol *highs.Solution
		err error
	}
	done := make(chan result, 1)
	start := time.Now()
	s.stats.Runs++
	go func() {
		sol, err := p.hm.Solve(opts...)
		done <- result{sol, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		s.stats.Elapsed += time.Since(start)
		if r.err == nil && r.sol == nil {
			r.err = errNoHighsSolution
		}
		return r.sol, r.err
	}
}

// incumbent returns the solution vector, binaries snapped to {0,1}, for an
// optimal result or for a limit result whose values are integral and satisfy
// every row. It returns nil otherwise.
func (s *Solver) incumbent(st model.Status, values []float64) []float64 {
	if st != model.Optimal && st != model.NodeLimit {
		return nil
	}
	n := s.m.NumVars()
	if len(values) != n {
		return nil
	}
	x := make([]float64, n)
	for i, v := range values {
		x[i] = math.Max(0, v)
	}
	limited := st == model.NodeLimit
	for _, v := range s.m.Binaries() {
		r := math.Round(x[v])
		if limited && math.Abs(x[v]-r) > s.opts.IntegralityTol {
			return nil
		}
		x[v] = r
	}
	if limited && !s.feasible(x) {
		return nil
	}

	return x
}

func (s *Solver) feasible(x []float64) bool {
	for _, c := range s.m.Constraints() {
		lhs := c.Expr.Eval(x)
		if !c.Rel.Satisfied(lhs, c.Bound, s.opts.Tolerance*math.Max(1, math.Abs(c.Bound))) {
			return false
		}
	}

	return true
}
