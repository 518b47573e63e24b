package ir

import "github.com/sarchlab/hdlcore/bitvector"

// NodeID is a node's stable 32-bit identity, unique within its owning
// context.
type NodeID uint32

// SourceLocation is a human-readable record of the host-language call site
// that created a node, e.g. "adder.go:42".
type SourceLocation string

// Graph resolves a NodeID to the Node it names. A Context implements Graph;
// Node.Eval and the tickable methods take a Graph so that a node's eval
// logic never needs to know how its container stores nodes — nodes are
// indices into a context-owned table, not pointers into each other.
type Graph interface {
	Node(id NodeID) *Node
}

// Node is every IR entity: the sum type over Kind. Fields common to every
// kind live directly on Node; kind-specific fields live in Payload, which
// holds one of *LiteralPayload, *ProxyPayload, *ALUPayload, *SelectPayload,
// *RegPayload, *MemPayload, *MemPortPayload, *AssertPayload, *IOPayload, or
// nil for Undef, Tick, and Tap.
type Node struct {
	ID      NodeID
	Kind    Kind
	Width   uint32
	Sources []NodeID
	Name    string
	Loc     SourceLocation

	Payload any

	cachedTick  uint64
	cachedValid bool
	cached      bitvector.Value
}

// Eval returns the node's value at tick t, memoizing per tick so repeated
// calls within the same cycle are idempotent.
func (n *Node) Eval(t uint64, g Graph) bitvector.Value {
	if n.cachedValid && n.cachedTick == t {
		return n.cached
	}
	v := n.evalUncached(t, g)
	n.cachedTick = t
	n.cachedValid = true
	n.cached = v
	return v
}

// InvalidateCache clears the memoized result, used by inputs whose bound
// host buffer changed without a new tick (e.g. combinational async memory
// reads re-evaluated whenever addr changes within the same tick).
func (n *Node) InvalidateCache() {
	n.cachedValid = false
}

func (n *Node) src(g Graph, i int) *Node {
	return g.Node(n.Sources[i])
}

func (n *Node) evalUncached(t uint64, g Graph) bitvector.Value {
	switch n.Kind {
	case KindLiteral:
		return n.Payload.(*LiteralPayload).Value
	case KindUndef:
		panic(NewRuntimeError(ErrUndefinedNode, "", n, t, "undef node reached evaluation"))
	case KindInput:
		return n.Payload.(*IOPayload).read()
	case KindOutput:
		v := n.src(g, 0).Eval(t, g)
		if p, ok := n.Payload.(*IOPayload); ok {
			p.Write(v)
		}
		return v
	case KindTap:
		return n.src(g, 0).Eval(t, g)
	case KindProxy:
		return n.evalProxy(t, g)
	case KindALU:
		return n.evalALU(t, g)
	case KindSelect:
		return n.evalSelect(t, g)
	case KindReg:
		p := n.Payload.(*RegPayload)
		if p.Transparent {
			n.latchTick(t, g)
		}
		return p.Value
	case KindMemRead:
		return n.evalMemRead(t, g)
	case KindMemWrite:
		return bitvector.Zero(0)
	case KindMem:
		return bitvector.Zero(0)
	case KindTick:
		return bitvector.FromUint64(n.Width, t)
	case KindAssert:
		return n.src(g, 0).Eval(t, g)
	default:
		panic("ir: unknown node kind")
	}
}

// IOPayload backs Input/Output nodes: a read callback bound to a host
// buffer (§6 Module binding) plus an optional pending write for outputs.
type IOPayload struct {
	read  func() bitvector.Value
	write func(bitvector.Value)
}

// NewIOPayload builds an IOPayload around host accessor closures. A nil
// read always returns a zero vector of the node's width (unbound input);
// write may be nil for nodes that are never sampled by the host.
func NewIOPayload(width uint32, read func() bitvector.Value, write func(bitvector.Value)) *IOPayload {
	if read == nil {
		read = func() bitvector.Value { return bitvector.Zero(width) }
	}
	return &IOPayload{read: read, write: write}
}

// Write pushes v to the bound host buffer, if any.
func (p *IOPayload) Write(v bitvector.Value) {
	if p.write != nil {
		p.write(v)
	}
}
