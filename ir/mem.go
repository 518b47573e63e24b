package ir

import "github.com/sarchlab/hdlcore/bitvector"

// MemPayload is the backing store for a KindMem node: a flat array of
// Depth words, each Width bits wide.
type MemPayload struct {
	Width uint32
	Depth uint32
	Words []bitvector.Value

	// WriteBeforeRead selects whether a write committing this cycle is
	// visible to a synchronous read of the same address this same
	// cycle (true, the default), or whether that read instead observes
	// the value from before the write (false).
	WriteBeforeRead bool
}

// NewMemPayload allocates a zero-initialized memory of the given shape.
// writeBeforeRead is this memory's same-cycle read/write ordering; pass
// true unless the module specifically needs a read to see the pre-write
// value.
func NewMemPayload(width, depth uint32, writeBeforeRead bool) *MemPayload {
	words := make([]bitvector.Value, depth)
	for i := range words {
		words[i] = bitvector.Zero(width)
	}
	return &MemPayload{Width: width, Depth: depth, Words: words, WriteBeforeRead: writeBeforeRead}
}

func (m *MemPayload) read(addr uint64) bitvector.Value {
	if addr >= uint64(m.Depth) {
		return bitvector.Zero(m.Width)
	}
	return m.Words[addr]
}

func (m *MemPayload) write(addr uint64, v bitvector.Value) {
	if addr >= uint64(m.Depth) {
		return
	}
	m.Words[addr] = v
}

// MemPortPayload is a read or write access point into a memory. Sync
// selects a registered (clocked) read, captured on the port's clock
// domain; an unset Sync on a read port means combinational (asynchronous)
// read, re-evaluated every time Addr changes within a tick.
//
// A synchronous read port's same-cycle ordering against a write port on
// the same memory follows that memory's WriteBeforeRead flag (see
// ClockDomain.Tick): write-before-read by default, or read-before-write
// when the memory was created with writeBeforeRead set to false.
type MemPortPayload struct {
	Mem    NodeID
	Addr   NodeID
	Enable NodeID // 0 means "always enabled"

	WriteData NodeID // write ports only

	Sync   bool // read ports only
	Domain *ClockDomain

	stagedAddr bitvector.Value
	stagedData bitvector.Value
	hasStaged  bool
	registered bitvector.Value
}

func (n *Node) evalMemRead(t uint64, g Graph) bitvector.Value {
	p := n.Payload.(*MemPortPayload)
	if p.Sync {
		return p.registered
	}
	mem := g.Node(p.Mem).Payload.(*MemPayload)
	if p.Enable != 0 && g.Node(p.Enable).Eval(t, g).IsZero() {
		return bitvector.Zero(mem.Width)
	}
	addr := g.Node(p.Addr).Eval(t, g).Uint64()
	return mem.read(addr)
}

// memReadTickNext stages the address a synchronous read port will look up
// in memReadTick.
func (n *Node) memReadTickNext(t uint64, g Graph) {
	p := n.Payload.(*MemPortPayload)
	if !p.Sync {
		return
	}
	if p.Enable != 0 && g.Node(p.Enable).Eval(t, g).IsZero() {
		p.hasStaged = false
		return
	}
	p.stagedAddr = g.Node(p.Addr).Eval(t, g)
	p.hasStaged = true
}

// memReadTick performs the actual array lookup. The clock domain calls
// this after the domain's write ports have committed when the memory is
// write-before-read, and before them otherwise (see ClockDomain.Tick).
func (n *Node) memReadTick(t uint64, g Graph) {
	p := n.Payload.(*MemPortPayload)
	if !p.Sync || !p.hasStaged {
		return
	}
	mem := g.Node(p.Mem).Payload.(*MemPayload)
	p.registered = mem.read(p.stagedAddr.Uint64())
}

// memWriteTickNext stages this tick's write (address, data, enable); the
// actual array mutation happens in memWriteTick.
func (n *Node) memWriteTickNext(t uint64, g Graph) {
	p := n.Payload.(*MemPortPayload)
	if p.Enable != 0 && g.Node(p.Enable).Eval(t, g).IsZero() {
		p.hasStaged = false
		return
	}
	p.stagedAddr = g.Node(p.Addr).Eval(t, g)
	p.stagedData = g.Node(p.WriteData).Eval(t, g)
	p.hasStaged = true
}

// memWriteTick commits a staged write into the backing array.
func (n *Node) memWriteTick(t uint64, g Graph) {
	p := n.Payload.(*MemPortPayload)
	if !p.hasStaged {
		return
	}
	mem := g.Node(p.Mem).Payload.(*MemPayload)
	mem.write(p.stagedAddr.Uint64(), p.stagedData)
}
