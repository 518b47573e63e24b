package compiler

import (
	"github.com/sarchlab/hdlcore/context"
	"github.com/sarchlab/hdlcore/ir"
)

// reconstructSwitches finds chains of ternary selects that all compare
// the same key against a literal case value — the shape the resolver
// produces for a Switch statement — and collapses each chain into a
// single keyed select node. This turns what would otherwise be a long
// linear chain of two-way comparisons into one node a backend can lower
// to an actual case/switch construct.
func reconstructSwitches(c *context.Context) int {
	count := 0
	for _, n := range c.Nodes() {
		if n == nil || n.Kind != ir.KindSelect {
			continue
		}
		p, ok := n.Payload.(*ir.SelectPayload)
		if !ok || p.HasKey {
			continue
		}
		key, caseVal, thenV, elseV, ok := n.IsSwitchCaseChain(c)
		if !ok {
			continue
		}

		type arm struct{ value, caseV ir.NodeID }
		arms := []arm{{thenV, caseVal}}
		cur := elseV
		for {
			next := c.Node(cur)
			if next == nil || next.Kind != ir.KindSelect {
				break
			}
			np, ok := next.Payload.(*ir.SelectPayload)
			if !ok || np.HasKey {
				break
			}
			k2, cv2, t2, e2, ok2 := next.IsSwitchCaseChain(c)
			if !ok2 || k2 != key {
				break
			}
			arms = append(arms, arm{t2, cv2})
			cur = e2
		}
		if len(arms) < 2 {
			continue
		}

		structArms := make([]struct{ Value, Case ir.NodeID }, len(arms))
		for i, a := range arms {
			structArms[i] = struct{ Value, Case ir.NodeID }{Value: a.value, Case: a.caseV}
		}
		sw := c.SwitchExpr(n.Width, key, structArms, cur)
		c.Substitute(n.ID, sw)
		count++
	}
	return count
}
