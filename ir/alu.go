package ir

import "github.com/sarchlab/hdlcore/bitvector"

// ALUPayload is a pure combinational operator node. Signed selects the
// signed variant for operators that have one (div, mod, shr, the
// relational ops); it is ignored for operators without a signed variant.
type ALUPayload struct {
	Op     Op
	Signed bool

	// Delay, when non-zero, makes this a "delayed ALU": it is both an ALU
	// and a tickable, carrying a pipeline of Delay intermediate results and
	// a clock domain.
	Delay  int
	Domain *ClockDomain

	pipeline []bitvector.Value // ring buffer of the last Delay computed results
}

func (n *Node) evalALU(t uint64, g Graph) bitvector.Value {
	p := n.Payload.(*ALUPayload)
	if p.Delay > 0 {
		return n.evalDelayedALU(t, g, p)
	}
	return computeALU(n, g, t, p)
}

func computeALU(n *Node, g Graph, t uint64, p *ALUPayload) bitvector.Value {
	a := n.src(g, 0).Eval(t, g)
	switch p.Op.Arity() {
	case 1:
		return applyUnary(p.Op, a, n.Width)
	default:
		b := n.src(g, 1).Eval(t, g)
		return applyBinary(p.Op, a, b, n.Width, p.Signed)
	}
}

func applyUnary(op Op, a bitvector.Value, outWidth uint32) bitvector.Value {
	switch op {
	case OpInv:
		return bitvector.Not(a)
	case OpAndR:
		return bitvector.ReduceAnd(a)
	case OpOrR:
		return bitvector.ReduceOr(a)
	case OpXorR:
		return bitvector.ReduceXor(a)
	case OpNeg:
		return bitvector.Neg(fitWidth(a, outWidth))
	case OpPad:
		return bitvector.ZeroExtend(a, outWidth)
	default:
		panic("ir: unary op with unexpected arity: " + op.String())
	}
}

func applyBinary(op Op, a, b bitvector.Value, outWidth uint32, signed bool) bitvector.Value {
	switch op {
	case OpEq:
		return boolVec(bitvector.Equal(a, b))
	case OpNe:
		return boolVec(!bitvector.Equal(a, b))
	case OpLt:
		if signed {
			return boolVec(bitvector.SLess(a, b))
		}
		return boolVec(bitvector.ULess(a, b))
	case OpGt:
		if signed {
			return boolVec(bitvector.SLess(b, a))
		}
		return boolVec(bitvector.ULess(b, a))
	case OpLe:
		if signed {
			return boolVec(bitvector.SLessEqual(a, b))
		}
		return boolVec(bitvector.ULessEqual(a, b))
	case OpGe:
		if signed {
			return boolVec(bitvector.SLessEqual(b, a))
		}
		return boolVec(bitvector.ULessEqual(b, a))
	case OpAnd:
		return bitvector.And(a, b)
	case OpOr:
		return bitvector.Or(a, b)
	case OpXor:
		return bitvector.Xor(a, b)
	case OpShl:
		return bitvector.Shl(fitWidth(a, outWidth), b.Uint64())
	case OpShr:
		wa := fitWidth(a, outWidth)
		if signed {
			return bitvector.AShr(wa, b.Uint64())
		}
		return bitvector.Shr(wa, b.Uint64())
	case OpAdd:
		return bitvector.Add(fitWidth(a, outWidth), fitWidth(b, outWidth))
	case OpSub:
		return bitvector.Sub(fitWidth(a, outWidth), fitWidth(b, outWidth))
	case OpMul:
		return bitvector.Mul(fitWidth(a, outWidth), fitWidth(b, outWidth))
	case OpDiv:
		wa, wb := fitWidth(a, outWidth), fitWidth(b, outWidth)
		if signed {
			return bitvector.SDiv(wa, wb)
		}
		return bitvector.UDiv(wa, wb)
	case OpMod:
		wa, wb := fitWidth(a, outWidth), fitWidth(b, outWidth)
		if signed {
			return bitvector.SMod(wa, wb)
		}
		return bitvector.UMod(wa, wb)
	default:
		panic("ir: binary op with unexpected arity: " + op.String())
	}
}

func boolVec(b bool) bitvector.Value {
	if b {
		return bitvector.FromUint64(1, 1)
	}
	return bitvector.FromUint64(1, 0)
}

// fitWidth zero-extends or truncates v to width w, used for the
// caller-supplied arithmetic output width.
func fitWidth(v bitvector.Value, w uint32) bitvector.Value {
	if v.Width() == w {
		return v
	}
	if v.Width() < w {
		return bitvector.ZeroExtend(v, w)
	}
	return v.Slice(0, w)
}

// evalDelayedALU returns the result computed Delay ticks ago: its output at
// tick t is the result computed at tick t-delay.
func (n *Node) evalDelayedALU(t uint64, g Graph, p *ALUPayload) bitvector.Value {
	if len(p.pipeline) < p.Delay {
		return bitvector.Zero(n.Width)
	}
	return p.pipeline[0]
}

// TickNext advances a delayed ALU's pipeline by computing this tick's raw
// result and staging it; it becomes observable Delay ticks from now.
func (n *Node) TickNext(t uint64, g Graph) {
	switch n.Kind {
	case KindALU:
		p := n.Payload.(*ALUPayload)
		if p.Delay == 0 {
			return
		}
		fresh := computeALU(n, g, t, p)
		if len(p.pipeline) < p.Delay {
			p.pipeline = append(p.pipeline, fresh)
		} else {
			p.pipeline = append(p.pipeline[1:], fresh)
		}
	case KindReg:
		n.regTickNext(t, g)
	case KindMemRead:
		n.memReadTickNext(t, g)
	case KindMemWrite:
		n.memWriteTickNext(t, g)
	}
}

// Tick commits the staged next-state computed by TickNext. For memory
// ports the commit order between a domain's write ports and its
// synchronous read ports follows each memory's WriteBeforeRead flag; see
// ClockDomain.Tick.
func (n *Node) Tick(t uint64, g Graph) {
	switch n.Kind {
	case KindReg:
		n.regTick(t)
	case KindMemRead:
		n.memReadTick(t, g)
	case KindMemWrite:
		n.memWriteTick(t, g)
	}
}
