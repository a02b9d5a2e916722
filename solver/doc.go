// Package solver is the solve oracle behind the frontier sweep. It owns one
// *model.Model and answers the oracle contract: set an objective, add and
// remove constraints, optimize, evaluate expressions at the incumbent.
//
// Solving is delegated to HiGHS through github.com/bartolsthoorn/gohighs.
// Every Optimize call lays the model's current rows out afresh as a
// highs.Model, so constraints added and removed between calls never leave
// state behind:
//
//	variable            → column, bounds [0,∞), or [0,1] and integer for binaries
//	expr ≤ / ≥ / = rhs  → row with bounds [−∞, rhs−c], [rhs−c, ∞] or [rhs−c, rhs−c]
//	objective           → column costs plus offset, sense passed through
//
// No solve happens for rows the layout already decides: an empty expression
// that violates its bound, or an infinite bound that cannot be met.
//
// Status mapping:
//
//	Optimal                                    → model.Optimal
//	Infeasible                                 → model.Infeasible
//	Unbounded                                  → model.Unbounded
//	UnboundedOrInfeasible                      → re-solved without presolve
//	TimeLimit, IterationLimit, SolutionLimit,
//	Interrupt                                  → model.NodeLimit
//	anything else, or a binding error          → model.Numerical
//
// A limit status keeps the incumbent when HiGHS reports one that satisfies
// every row. Context cancellation returns promptly; the abandoned HiGHS run
// stops at its time limit, which Optimize derives from the context deadline.
//
// A Solver is not safe for concurrent use.
package solver
