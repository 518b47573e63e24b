package compiler

import (
	"github.com/sarchlab/hdlcore/context"
	"github.com/sarchlab/hdlcore/ir"
)

// checkSyntax walks every node reachable from a root and fails if it ever
// reaches an Undef node, meaning some signal read in the design was never
// assigned on every path.
func checkSyntax(c *context.Context) error {
	visited := map[ir.NodeID]bool{}
	var walk func(id ir.NodeID) error
	walk = func(id ir.NodeID) error {
		if id == 0 || visited[id] {
			return nil
		}
		visited[id] = true
		n := c.Node(id)
		if n == nil {
			return nil
		}
		if n.Kind == ir.KindUndef {
			return ir.NewBuildError(ir.ErrUndefinedNode, c.Name, n, string(n.Loc),
				"signal read before being assigned on every path")
		}
		for _, ref := range n.Refs() {
			if err := walk(*ref); err != nil {
				return err
			}
		}
		return nil
	}

	for _, id := range c.Roots() {
		if err := walk(id); err != nil {
			return err
		}
	}
	return nil
}
