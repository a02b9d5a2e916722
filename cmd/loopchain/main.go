// Command loopchain traces the cost/environment Pareto frontier of a
// closed-loop supply-chain network.
//
//	loopchain validate testdata/scenario.yaml
//	loopchain solve --objective env --epsilon 1.2e6 testdata/scenario.yaml
//	loopchain sweep --points 20 --format both --out results a.yaml b.yaml
//
// Every flag may also be set in a YAML file (--config) or through a
// LOOPCHAIN_ environment variable, e.g. LOOPCHAIN_SOLVER_MAX_NODES=500.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, flush := newRootCmd()
	err := cmd.Execute()
	if ferr := flush(); ferr != nil {
		fmt.Fprintln(os.Stderr, "loopchain: flush log:", ferr)
	}
	if err != nil {
		os.Exit(1)
	}
}
