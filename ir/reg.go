package ir

import "github.com/sarchlab/hdlcore/bitvector"

// RegPayload backs both registers and latches. A register stages its next
// value in TickNext and commits it in Tick (two-phase, edge-triggered); a
// latch (Transparent true) instead copies its data source straight to
// Value whenever Enable is asserted, with no staging phase.
type RegPayload struct {
	Data   NodeID // value to capture
	Enable NodeID // 0 means "always enabled"
	Reset  NodeID // 0 means "no reset"
	Init   NodeID // reset value source; 0 means reset to all-zero bits of the register's width

	Transparent bool // true for a latch, false for an edge-triggered register
	Domain      *ClockDomain

	Value bitvector.Value
	next  bitvector.Value
}

func newRegValue(width uint32) bitvector.Value {
	return bitvector.Zero(width)
}

// regTickNext computes the staged next value for an edge-triggered
// register: reset wins over enable, enable wins over hold.
func (n *Node) regTickNext(t uint64, g Graph) {
	p := n.Payload.(*RegPayload)
	if p.Transparent {
		return
	}

	if p.Reset != 0 && !g.Node(p.Reset).Eval(t, g).IsZero() {
		p.next = p.initValue(t, g)
		return
	}
	if p.Enable != 0 && g.Node(p.Enable).Eval(t, g).IsZero() {
		p.next = p.Value
		return
	}
	p.next = g.Node(p.Data).Eval(t, g)
}

// regTick commits the staged value computed by regTickNext.
func (n *Node) regTick(t uint64) {
	p := n.Payload.(*RegPayload)
	if p.Transparent {
		return
	}
	p.Value = p.next
}

// latchTick is the latch's single-phase update, called on every
// evaluation rather than on a clock edge: while Enable is asserted the
// latch is transparent to Data; otherwise it holds.
func (n *Node) latchTick(t uint64, g Graph) {
	p := n.Payload.(*RegPayload)
	if p.Reset != 0 && !g.Node(p.Reset).Eval(t, g).IsZero() {
		p.Value = p.initValue(t, g)
		return
	}
	if p.Enable == 0 || !g.Node(p.Enable).Eval(t, g).IsZero() {
		p.Value = g.Node(p.Data).Eval(t, g)
	}
}

func (p *RegPayload) initValue(t uint64, g Graph) bitvector.Value {
	if p.Init == 0 {
		return newRegValue(p.Value.Width())
	}
	return g.Node(p.Init).Eval(t, g)
}
