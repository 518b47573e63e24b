package context

import (
	"github.com/sarchlab/hdlcore/bitvector"
	"github.com/sarchlab/hdlcore/ir"
)

// PushClock opens a clock domain scope: every register, latch, delayed
// ALU, or synchronous memory port created before the matching PopClock is
// sensitive to (clock, edge).
func (c *Context) PushClock(clock ir.NodeID, edge ir.EdgeKind) {
	c.clockStack = append(c.clockStack, clock)
	c.edgeStack = append(c.edgeStack, edge)
}

// PopClock closes the innermost open clock scope.
func (c *Context) PopClock() {
	c.clockStack = c.clockStack[:len(c.clockStack)-1]
	c.edgeStack = c.edgeStack[:len(c.edgeStack)-1]
}

// PushReset opens a reset scope applying to every register created before
// the matching PopReset.
func (c *Context) PushReset(reset ir.NodeID) {
	c.resetStack = append(c.resetStack, reset)
}

// PopReset closes the innermost open reset scope.
func (c *Context) PopReset() {
	c.resetStack = c.resetStack[:len(c.resetStack)-1]
}

func (c *Context) currentClock() (ir.NodeID, ir.EdgeKind, bool) {
	if len(c.clockStack) == 0 {
		return 0, 0, false
	}
	n := len(c.clockStack)
	return c.clockStack[n-1], c.edgeStack[n-1], true
}

func (c *Context) currentReset() ir.NodeID {
	if len(c.resetStack) == 0 {
		return 0
	}
	return c.resetStack[len(c.resetStack)-1]
}

// domainFor returns the ClockDomain for the given sensitivity list,
// creating and registering a new one the first time that exact list is
// requested.
func (c *Context) domainFor(sens []ir.Sensitivity) *ir.ClockDomain {
	for _, d := range c.domains {
		if ir.SameSensitivity(d.Sensitivity, sens) {
			return d
		}
	}
	d := &ir.ClockDomain{ID: len(c.domains), Sensitivity: sens}
	c.domains = append(c.domains, d)
	return d
}

// Reg creates an edge-triggered register clocked by the innermost open
// PushClock scope, captured from data whenever enable (if non-zero) is
// asserted, and reset to init whenever the innermost open PushReset
// condition is asserted.
func (c *Context) Reg(width uint32, data, enable ir.NodeID, init ir.NodeID) ir.NodeID {
	clock, edge, ok := c.currentClock()
	if !ok {
		panic("ir: reg created outside a clock scope")
	}
	domain := c.domainFor([]ir.Sensitivity{{Signal: clock, Edge: edge}})

	id := c.createNode(&ir.Node{
		Kind: ir.KindReg, Width: width,
		Payload: &ir.RegPayload{
			Data: data, Enable: enable, Reset: c.currentReset(), Init: init,
			Domain: domain, Value: bitvector.Zero(width),
		},
	})
	domain.AddTickable(id)
	return id
}

// Latch creates a level-sensitive latch, transparent to data whenever
// enable is asserted (or always, if enable is zero).
func (c *Context) Latch(width uint32, data, enable ir.NodeID) ir.NodeID {
	id := c.createNode(&ir.Node{
		Kind: ir.KindReg, Width: width,
		Payload: &ir.RegPayload{
			Data: data, Enable: enable, Reset: c.currentReset(), Transparent: true,
			Value: bitvector.Zero(width),
		},
	})
	return id
}

// Mem creates a backing memory array of depth words, each width bits.
// writeBeforeRead is this memory's same-cycle ordering between a write
// port and a synchronous read port targeting the same address: true (the
// default a module should reach for) makes the read observe the write
// committed this same cycle; false makes it observe the pre-write value.
func (c *Context) Mem(width, depth uint32, writeBeforeRead bool) ir.NodeID {
	return c.createNode(&ir.Node{Kind: ir.KindMem, Payload: ir.NewMemPayload(width, depth, writeBeforeRead)})
}

// MemReadPort creates a read access point into mem. sync selects a
// registered read, clocked by the innermost open PushClock scope;
// !sync is a combinational (asynchronous) read.
func (c *Context) MemReadPort(mem ir.NodeID, width uint32, addr, enable ir.NodeID, sync bool) ir.NodeID {
	p := &ir.MemPortPayload{Mem: mem, Addr: addr, Enable: enable, Sync: sync}
	id := c.createNode(&ir.Node{Kind: ir.KindMemRead, Width: width, Payload: p})
	if sync {
		clock, edge, ok := c.currentClock()
		if !ok {
			panic("ir: synchronous memory read port created outside a clock scope")
		}
		p.Domain = c.domainFor([]ir.Sensitivity{{Signal: clock, Edge: edge}})
		p.Domain.AddTickable(id)
	}
	return id
}

// MemWritePort creates a synchronous write access point into mem, clocked
// by the innermost open PushClock scope.
func (c *Context) MemWritePort(mem ir.NodeID, addr, data, enable ir.NodeID) ir.NodeID {
	clock, edge, ok := c.currentClock()
	if !ok {
		panic("ir: memory write port created outside a clock scope")
	}
	domain := c.domainFor([]ir.Sensitivity{{Signal: clock, Edge: edge}})
	p := &ir.MemPortPayload{Mem: mem, Addr: addr, WriteData: data, Enable: enable, Domain: domain}
	id := c.createNode(&ir.Node{Kind: ir.KindMemWrite, Payload: p})
	domain.AddTickable(id)
	// A write port is a pure sink: nothing reads its Eval result, so
	// without being a root it is invisible to DCE and would be pruned
	// along with its domain tickable entry the moment Compile runs.
	c.roots = append(c.roots, id)
	return id
}

// TickAll advances every discovered clock domain by one cycle: stage every
// tickable's next state, then commit it. Domains run in creation order, so
// a module that depends on deterministic domain ordering (e.g. when
// tracing) sees one consistent with how it built its clocks.
func (c *Context) TickAll(t uint64) {
	for _, d := range c.domains {
		d.TickNext(t, c)
	}
	for _, d := range c.domains {
		d.Tick(t, c)
	}
	for _, id := range c.AllNodeIDs() {
		if n := c.Node(id); n != nil {
			n.InvalidateCache()
		}
	}
}
