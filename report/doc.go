// Package report holds the result sinks that serialize a pareto.Frontier.
//
// CSVSink writes one file per table into a directory, named with a run
// stamp: <stamp>_payoff.csv, <stamp>_curve_cost_min.csv,
// <stamp>_curve_env_min.csv and <stamp>_dropped.csv. YAMLSink writes the whole
// frontier as one YAML document.
package report
