// Package model is a small solver-neutral linear model: variables, sparse
// affine expressions and named constraints addressed by handles.
//
// A Model only records structure. It never solves anything; the solver
// package converts its current state into standard form on every call.
//
// What:
//   - Var is a column index. Every variable is ≥ 0; Binary variables are
//     additionally ≤ 1 and integral.
//   - Expr is a sparse linear expression plus a constant. It can be evaluated
//     against any solution vector, not only the one that optimized it.
//   - AddConstraint returns a Handle; RemoveConstraint releases it. Handles are
//     never reused, so a stale handle is always detected (ErrUnknownHandle).
//
// Constraints keep insertion order. Removing one does not renumber the rest.
package model
