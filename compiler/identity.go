package compiler

import (
	"github.com/sarchlab/hdlcore/context"
	"github.com/sarchlab/hdlcore/ir"
)

// eliminateIdentities finds every proxy node whose ranges are just its
// single source passed through unchanged and replaces every reference to
// it with a direct reference to that source. Identity proxies arise
// naturally from partial-range conditional writes that end up covering
// the whole signal from one arm; nothing downstream needs the extra hop.
//
// Processed in increasing NodeID order with an immediate Substitute so
// that a chain of identity proxies collapses to its ultimate source in
// one pass: once an earlier proxy's references are rewritten, a later
// proxy that pointed at it already sees the rewritten target.
func eliminateIdentities(c *context.Context) int {
	count := 0
	for _, n := range c.Nodes() {
		if n == nil || n.Kind != ir.KindProxy {
			continue
		}
		p := n.Payload.(*ir.ProxyPayload)
		srcIndex, ok := p.IsIdentity(n.Width)
		if !ok {
			continue
		}
		src := n.Sources[srcIndex]
		if src == n.ID {
			continue
		}
		c.Substitute(n.ID, src)
		count++
	}
	return count
}
