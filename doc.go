// Package loopchain models a closed-loop supply chain as a mixed-integer
// network-flow program and traces the trade-off between total cost and
// environmental footprint.
//
// The forward chain moves products from plants through distribution centres
// to customers; the reverse chain collects returns at collection centres and
// routes them to direct reuse, refurbishment, material recovery or landfill.
// Recovered material substitutes supplier procurement at the plants.
//
// Everything is organized under these subpackages:
//
//	params/    validated parameter bundle, YAML loader, declared-or-error lookups
//	model/     variables, linear expressions and named constraint rows
//	network/   builds the flow model, its constraint families and both objectives
//	solver/    LP relaxation (gonum simplex) with binary branch-and-bound
//	pareto/    payoff table and the two epsilon-constraint sweeps
//	report/    CSV and YAML sinks for a traced frontier
//	config/    viper-backed run configuration (file, LOOPCHAIN_ env, flags)
//	logging/   logr/zap construction and verbosity levels
//
// The loopchain command in cmd/loopchain wires them together:
//
//	loopchain sweep --points 10 --format both testdata/scenario.yaml
package loopchain
