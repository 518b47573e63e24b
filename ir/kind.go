// Package ir implements the closed set of node kinds that make up the
// hardware description graph: the typed node, its source references, the
// ALU operator table, proxies, registers, clock domains, memories, and the
// runtime error kinds raised while building or simulating a graph.
//
// A Node is a sum type over Kind: every node carries the fields common to
// all kinds (id, width, sources, name, source location, cached result) plus
// a Payload holding the fields specific to its Kind. Evaluation is a single
// type switch in Node.Eval rather than a virtual method per kind, matching
// Go's preference for an explicit dispatch over polymorphism for a small,
// closed set.
package ir

// Kind tags a Node with which member of the closed node-kind set it is.
type Kind int

const (
	KindLiteral Kind = iota
	KindUndef
	KindInput
	KindOutput
	KindTap
	KindProxy
	KindALU
	KindSelect
	KindReg
	KindMemRead
	KindMemWrite
	KindMem
	KindTick
	KindAssert
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindUndef:
		return "undef"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	case KindTap:
		return "tap"
	case KindProxy:
		return "proxy"
	case KindALU:
		return "alu"
	case KindSelect:
		return "select"
	case KindReg:
		return "reg"
	case KindMemRead:
		return "memrd"
	case KindMemWrite:
		return "memwr"
	case KindMem:
		return "mem"
	case KindTick:
		return "tick"
	case KindAssert:
		return "assert"
	default:
		return "unknown"
	}
}
