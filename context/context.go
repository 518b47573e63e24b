// Package context owns a module's node graph: it allocates node IDs,
// deduplicates the literal pool, tracks clock and reset domains, and
// drives construction-time helpers (create_node and friends) used by a
// module's host-language builder. It implements ir.Graph so nodes can
// resolve their sources without knowing how the graph stores them.
package context

import (
	"fmt"

	"github.com/sarchlab/hdlcore/bitvector"
	"github.com/sarchlab/hdlcore/ir"
)

// Context is one module's node graph plus the construction-time state
// needed to build it: the literal pool, the active clock/reset stacks,
// and the set of clock domains discovered so far.
type Context struct {
	Name string

	nodes   []*ir.Node
	literal map[literalKey]ir.NodeID

	domains     []*ir.ClockDomain
	clockStack  []ir.NodeID
	resetStack  []ir.NodeID
	edgeStack   []ir.EdgeKind

	resolver *resolver

	roots []ir.NodeID
}

type literalKey struct {
	width uint32
	bits  string
}

// New creates an empty context for a module named name.
func New(name string) *Context {
	c := &Context{
		Name:    name,
		nodes:   []*ir.Node{nil}, // NodeID 0 is reserved/invalid
		literal: map[literalKey]ir.NodeID{},
	}
	c.resolver = newResolver(c)
	return c
}

// Node implements ir.Graph.
func (c *Context) Node(id ir.NodeID) *ir.Node {
	return c.nodes[id]
}

// NumNodes returns the number of allocated node slots, including the
// reserved zero slot and any slots emptied by Prune.
func (c *Context) NumNodes() int { return len(c.nodes) }

// AllNodeIDs returns every allocated node ID in creation order.
func (c *Context) AllNodeIDs() []ir.NodeID {
	ids := make([]ir.NodeID, 0, len(c.nodes)-1)
	for i := 1; i < len(c.nodes); i++ {
		ids = append(ids, ir.NodeID(i))
	}
	return ids
}

// createNode allocates and registers a new node, assigning it the next
// NodeID.
func (c *Context) createNode(n *ir.Node) ir.NodeID {
	id := ir.NodeID(len(c.nodes))
	n.ID = id
	c.nodes = append(c.nodes, n)
	return id
}

// Literal returns the (possibly shared) node for the constant v, creating
// it the first time a given (width, bit pattern) pair is requested.
func (c *Context) Literal(v bitvector.Value) ir.NodeID {
	key := literalKey{width: v.Width(), bits: v.String()}
	if id, ok := c.literal[key]; ok {
		return id
	}
	id := c.createNode(&ir.Node{
		Kind:    ir.KindLiteral,
		Width:   v.Width(),
		Payload: &ir.LiteralPayload{Value: v},
	})
	c.literal[key] = id
	return id
}

// Undef creates an undefined placeholder of the given width, used as the
// initial value of every signal before it is assigned.
func (c *Context) Undef(width uint32) ir.NodeID {
	return c.createNode(&ir.Node{Kind: ir.KindUndef, Width: width})
}

// Input creates a module input bound to a host read callback.
func (c *Context) Input(name string, width uint32, read func() bitvector.Value) ir.NodeID {
	id := c.createNode(&ir.Node{
		Kind: ir.KindInput, Width: width, Name: name,
		Payload: ir.NewIOPayload(width, read, nil),
	})
	c.roots = append(c.roots, id)
	return id
}

// Output creates a module output sourced from src and bound to a host
// write callback.
func (c *Context) Output(name string, src ir.NodeID, write func(bitvector.Value)) ir.NodeID {
	width := c.Node(src).Width
	id := c.createNode(&ir.Node{
		Kind: ir.KindOutput, Width: width, Sources: []ir.NodeID{src}, Name: name,
		Payload: ir.NewIOPayload(width, nil, write),
	})
	c.roots = append(c.roots, id)
	return id
}

// Tap creates a named observation point on src, used by the tracer and by
// diagnostics without affecting the value semantics of the graph.
func (c *Context) Tap(name string, src ir.NodeID) ir.NodeID {
	id := c.createNode(&ir.Node{
		Kind: ir.KindTap, Width: c.Node(src).Width, Sources: []ir.NodeID{src}, Name: name,
	})
	c.roots = append(c.roots, id)
	return id
}

// ALU creates a combinational operator node.
func (c *Context) ALU(op ir.Op, width uint32, signed bool, srcs ...ir.NodeID) ir.NodeID {
	if op.Arity() != len(srcs) {
		panic(fmt.Sprintf("ir: op %s wants %d operands, got %d", op, op.Arity(), len(srcs)))
	}
	return c.createNode(&ir.Node{
		Kind: ir.KindALU, Width: width, Sources: srcs,
		Payload: &ir.ALUPayload{Op: op, Signed: signed},
	})
}

// DelayedALU creates a pipelined combinational operator whose result at
// tick t is observable delay ticks later, clocked by domain.
func (c *Context) DelayedALU(op ir.Op, width uint32, signed bool, delay int, domain *ir.ClockDomain, srcs ...ir.NodeID) ir.NodeID {
	id := c.createNode(&ir.Node{
		Kind: ir.KindALU, Width: width, Sources: srcs,
		Payload: &ir.ALUPayload{Op: op, Signed: signed, Delay: delay, Domain: domain},
	})
	domain.AddTickable(id)
	return id
}

// Select creates a ternary multiplexer node.
func (c *Context) Select(width uint32, cond, thenV, elseV ir.NodeID) ir.NodeID {
	return c.createNode(&ir.Node{
		Kind: ir.KindSelect, Width: width, Sources: []ir.NodeID{cond, thenV, elseV},
		Payload: &ir.SelectPayload{HasKey: false},
	})
}

// SwitchExpr creates a keyed select node directly: key, then (value,
// caseKey) pairs, then a trailing default value. Unlike Switch, this
// builds the multiplexer node in one call rather than staging writes
// across a Case/Default/End sequence.
func (c *Context) SwitchExpr(width uint32, key ir.NodeID, arms []struct{ Value, Case ir.NodeID }, def ir.NodeID) ir.NodeID {
	srcs := make([]ir.NodeID, 0, 1+2*len(arms)+1)
	srcs = append(srcs, key)
	for _, a := range arms {
		srcs = append(srcs, a.Value, a.Case)
	}
	srcs = append(srcs, def)
	return c.createNode(&ir.Node{
		Kind: ir.KindSelect, Width: width, Sources: srcs,
		Payload: &ir.SelectPayload{HasKey: true},
	})
}

// Proxy creates a bit-reassembly node from explicit ranges.
func (c *Context) Proxy(width uint32, srcs []ir.NodeID, ranges []ir.Range) (ir.NodeID, error) {
	if err := ir.ValidateTiling(width, ranges); err != nil {
		return 0, err
	}
	return c.createNode(&ir.Node{
		Kind: ir.KindProxy, Width: width, Sources: srcs,
		Payload: &ir.ProxyPayload{Ranges: ranges},
	}), nil
}

// Assert creates a simulation-time guard checked on every tick (or only
// while enable is asserted, if non-zero).
func (c *Context) Assert(cond, enable ir.NodeID, message string) ir.NodeID {
	srcs := []ir.NodeID{cond}
	id := c.createNode(&ir.Node{
		Kind: ir.KindAssert, Width: 1, Sources: srcs,
		Payload: &ir.AssertPayload{Enable: enable, Message: message},
	})
	c.roots = append(c.roots, id)
	return id
}

// Tick creates a node exposing the current simulation tick counter as a
// bit vector, for modules that need to observe elapsed cycles directly.
func (c *Context) Tick(width uint32) ir.NodeID {
	return c.createNode(&ir.Node{Kind: ir.KindTick, Width: width})
}

// Roots returns every node the simulator must drive directly: inputs,
// outputs, taps, assertions, and memory write ports.
func (c *Context) Roots() []ir.NodeID {
	return c.roots
}

// Domains returns every clock domain discovered in this context, in
// creation order.
func (c *Context) Domains() []*ir.ClockDomain {
	return c.domains
}

// Nodes returns every allocated node, including the reserved nil slot at
// index 0, for passes that need to walk the whole graph.
func (c *Context) Nodes() []*ir.Node {
	return c.nodes
}

// Substitute rewrites every reference to old (in any node's Sources or
// payload) to new, and in the root list. Compiler passes use it to
// eliminate a node (identity proxies, reconstructed switches) in favor of
// an equivalent one; builder code uses it to close a feedback loop,
// creating an Undef placeholder for a register's own output before the
// register exists and substituting the real node in once it does.
func (c *Context) Substitute(old, new ir.NodeID) {
	for _, n := range c.nodes {
		if n == nil {
			continue
		}
		for _, ref := range n.Refs() {
			if *ref == old {
				*ref = new
			}
		}
	}
	for i, id := range c.roots {
		if id == old {
			c.roots[i] = new
		}
	}
}

// Prune discards nodes not present in live, replacing each discarded
// node's slot with nil so NodeIDs of surviving nodes stay stable. Later
// Node(id) calls on a pruned id return nil; callers must not still
// reference one.
func (c *Context) Prune(live map[ir.NodeID]bool) {
	for id := 1; id < len(c.nodes); id++ {
		if !live[ir.NodeID(id)] {
			c.nodes[id] = nil
		}
	}
}
