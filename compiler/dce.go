package compiler

import (
	"github.com/sarchlab/hdlcore/context"
	"github.com/sarchlab/hdlcore/ir"
)

// liveNodes computes every node reachable from a root (input, output,
// tap, assertion, or memory write port), following Sources and every
// payload reference. A register or read port not on any such path drives
// nothing the module or testbench can observe and is dead.
//
// Clock domains are pruned to match: a domain's Tickables list is
// filtered down to the nodes that survived, so a later TickNext/Tick
// never dereferences a pruned slot.
func liveNodes(c *context.Context) map[ir.NodeID]bool {
	live := map[ir.NodeID]bool{}
	var walk func(id ir.NodeID)
	walk = func(id ir.NodeID) {
		if id == 0 || live[id] {
			return
		}
		live[id] = true
		n := c.Node(id)
		if n == nil {
			return
		}
		for _, ref := range n.Refs() {
			walk(*ref)
		}
	}
	for _, id := range c.Roots() {
		walk(id)
	}

	for _, d := range c.Domains() {
		kept := d.Tickables[:0]
		for _, id := range d.Tickables {
			if live[id] {
				kept = append(kept, id)
			}
		}
		d.Tickables = kept
	}

	return live
}
