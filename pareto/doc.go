// Package pareto traces the cost/environment trade-off of a model with the
// epsilon-constraint method.
//
// The payoff table bounds the sweep: minimizing each objective alone gives its
// minimum and the other objective's realized value there. Each curve then
// bounds one objective at N evenly spaced thresholds and minimizes the other:
//
//	Curve A (CostCurve): Environmental ≤ tighten(t), t ∈ [EnvMin, EnvAtCostMin], minimize Cost
//	Curve B (EnvCurve):  Cost ≤ tighten(t),          t ∈ [CostMin, CostAtEnvMin], minimize Environmental
//
// tighten(t) = t − |t|·(1 − SlackFactor) moves every bound slightly inwards so
// no point re-requests a state numerically identical to an extreme; it never
// loosens and preserves the grid order.
//
// Exactly one epsilon constraint is live at a time. It is added before the
// solve and removed by a deferred release on every exit path, so the oracle's
// row count is the same before and after a sweep. Non-optimal grid points are
// recorded as Dropped with their status, never interpolated.
package pareto
