package ir

import "github.com/sarchlab/hdlcore/bitvector"

// SelectPayload marks whether a select node is the ternary form
// (cond, then, else) or the switch form (key, v0, k0, v1, k1, ..., default)
// fabricated by the conditional resolver and switch lowering.
type SelectPayload struct {
	HasKey bool
}

func (n *Node) evalSelect(t uint64, g Graph) bitvector.Value {
	p := n.Payload.(*SelectPayload)
	if !p.HasKey {
		cond := n.src(g, 0).Eval(t, g)
		if !cond.IsZero() {
			return n.src(g, 1).Eval(t, g)
		}
		return n.src(g, 2).Eval(t, g)
	}

	key := n.src(g, 0).Eval(t, g)
	rest := n.Sources[1:]
	i := 0
	for i+1 < len(rest) {
		val := n.src(g, 1+i).Eval(t, g)
		caseKey := n.src(g, 1+i+1).Eval(t, g)
		if bitvector.Equal(key, caseKey) {
			return val
		}
		i += 2
	}
	// Trailing default arm.
	return n.src(g, len(n.Sources)-1).Eval(t, g)
}

// IsSwitchCaseChain reports whether this select's chain is of the
// `key == lit_i` form the switch lowering produces: a ternary select whose
// condition is an eq-ALU comparing the same key node against a literal.
// Used by the switch-reconstruction compiler pass.
func (n *Node) IsSwitchCaseChain(g Graph) (key NodeID, caseVal NodeID, then NodeID, els NodeID, ok bool) {
	p, isSelect := n.Payload.(*SelectPayload)
	if !isSelect || p.HasKey || len(n.Sources) != 3 {
		return 0, 0, 0, 0, false
	}
	cond := n.src(g, 0)
	if cond.Kind != KindALU {
		return 0, 0, 0, 0, false
	}
	aluP := cond.Payload.(*ALUPayload)
	if aluP.Op != OpEq || len(cond.Sources) != 2 {
		return 0, 0, 0, 0, false
	}
	lhs, rhs := cond.Sources[0], cond.Sources[1]
	if g.Node(rhs).Kind == KindLiteral {
		return lhs, rhs, n.Sources[1], n.Sources[2], true
	}
	if g.Node(lhs).Kind == KindLiteral {
		return rhs, lhs, n.Sources[1], n.Sources[2], true
	}
	return 0, 0, 0, 0, false
}
