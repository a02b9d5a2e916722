// Package config loads the run configuration of the loopchain CLI.
//
// Sources, highest priority first:
//
//  1. Command-line flags registered with RegisterFlags
//  2. Environment variables prefixed LOOPCHAIN_ (dots become underscores,
//     e.g. LOOPCHAIN_SOLVER_MAX_NODES)
//  3. The configuration file passed to Load (YAML)
//  4. Defaults
//
// Example file:
//
//	params: [testdata/scenario.yaml]
//	points: 10
//	slack_factor: 0.999
//	features: [refurbish-waste]
//	solver: {tolerance: 1e-9, max_nodes: 16384}
//	output: {dir: out, format: csv}
//	log: {level: debug}
//
// Validate runs on Load; the converters map the file onto the options of the
// network, solver and pareto packages.
package config
