package context

import (
	"github.com/sarchlab/hdlcore/internal/logx"
	"github.com/sarchlab/hdlcore/ir"
)

// Var is a mutable signal cell: the host-language surface assigns to it
// inside If/Switch blocks, and the resolver folds every conditional
// assignment into the multiplexer tree that Read ultimately returns.
// Outside any open conditional, Assign simply replaces the current value.
type Var struct {
	ctx   *Context
	width uint32
	value ir.NodeID
}

// NewVar creates a signal initialized to an undefined value of the given
// width.
func (c *Context) NewVar(width uint32) *Var {
	return &Var{ctx: c, width: width, value: c.Undef(width)}
}

// NewVarInit creates a signal initialized to init.
func (c *Context) NewVarInit(width uint32, init ir.NodeID) *Var {
	return &Var{ctx: c, width: width, value: init}
}

// Read returns the node currently representing this signal's value.
func (v *Var) Read() ir.NodeID { return v.value }

// Width returns the signal's bit width.
func (v *Var) Width() uint32 { return v.width }

// Assign records a write to this signal. If no conditional block is open
// the write takes effect immediately; otherwise it is staged until the
// enclosing If/Switch is closed, at which point it is folded into a
// select tree keyed on the branch conditions.
func (v *Var) Assign(newVal ir.NodeID) {
	v.value = v.ctx.resolver.assign(v, newVal)
}

// AssignSlice stages a write to bits [offset, offset+length) of v,
// leaving every other bit of the signal unchanged. The write is folded
// into a bit-level reassembly — a Proxy over the value in effect before
// this call and the new slice — rather than requiring the host to
// reconstruct the whole signal by hand, and that reassembled value is
// then staged through the ordinary conditional resolver exactly like a
// whole-signal Assign: writing two disjoint sub-ranges of v from two
// different If/ElseIf branches still folds into one correct select per
// branch.
func (v *Var) AssignSlice(offset, length uint32, val ir.NodeID) {
	if p, ok := v.ctx.Node(v.value).Payload.(*ir.ProxyPayload); ok {
		if superseded := ir.OverlappingSlices(p.Ranges, offset, length); len(superseded) > 0 {
			logx.Trace("slice assignment supersedes prior partial writes",
				"offset", offset, "length", length, "superseded_slices", len(superseded))
		}
	}

	identity := []ir.Range{{SrcIndex: 0, SrcOffset: 0, DstOffset: 0, Length: v.width}}
	merged := ir.MergeRanges(identity, offset, length, 1, 0)
	reassembled, err := v.ctx.Proxy(v.width, []ir.NodeID{v.value, val}, merged)
	if err != nil {
		panic(err)
	}
	v.Assign(reassembled)
}
