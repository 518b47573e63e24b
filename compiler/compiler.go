// Package compiler runs the fixed sequence of graph-rewriting passes a
// context goes through between construction and simulation: a syntax
// check that every signal was assigned before use, dead-code elimination,
// identity-proxy elimination, and switch-chain reconstruction. Literal
// constant-sharing is not a separate pass here; the context's literal
// pool folds equal constants into one node as they are created.
package compiler

import (
	"fmt"

	"github.com/sarchlab/hdlcore/context"
)

// Report summarizes what each pass did, for diagnostics and tests.
type Report struct {
	Module            string
	TotalNodes        int
	LiveNodes         int
	EliminatedIdentity int
	ReconstructedSwitches int
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %d/%d nodes live, %d identity proxies folded, %d switches reconstructed",
		r.Module, r.LiveNodes, r.TotalNodes, r.EliminatedIdentity, r.ReconstructedSwitches)
}

// Compile runs every pass over c in order and returns a report, or the
// first build-time error encountered (always from the syntax check,
// which runs before any rewrite).
func Compile(c *context.Context) (Report, error) {
	if err := checkSyntax(c); err != nil {
		return Report{}, err
	}

	live := liveNodes(c)
	c.Prune(live)
	folded := eliminateIdentities(c)
	reconstructed := reconstructSwitches(c)

	return Report{
		Module:                c.Name,
		TotalNodes:            len(c.Nodes()) - 1,
		LiveNodes:             len(live),
		EliminatedIdentity:    folded,
		ReconstructedSwitches: reconstructed,
	}, nil
}
