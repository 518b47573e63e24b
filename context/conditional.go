package context

import "github.com/sarchlab/hdlcore/ir"

// If opens a conditional statement. Every Var.Assign made before the
// matching EndIf is staged rather than applied immediately.
func (c *Context) If(cond ir.NodeID) { c.resolver.BeginIf(cond) }

// ElseIf closes the current branch and opens another guarded by cond.
func (c *Context) ElseIf(cond ir.NodeID) { c.resolver.ElseIf(cond) }

// Else closes the current branch and opens the trailing unconditional
// branch; it must be the last branch before EndIf.
func (c *Context) Else() { c.resolver.Else() }

// EndIf closes the statement, folding every touched variable into its
// merged select tree.
func (c *Context) EndIf() { c.resolver.EndIf() }

// Switch opens a keyed conditional statement equivalent to a chain of
// If/ElseIf arms comparing key for equality; Case opens the next arm and
// Default opens the trailing catch-all, mirroring If/ElseIf/Else.
func (c *Context) Switch(key ir.NodeID) *SwitchBuilder {
	return &SwitchBuilder{ctx: c, key: key}
}

// SwitchBuilder threads the key through successive Case/Default calls so
// each one can build the key == case-literal comparison.
type SwitchBuilder struct {
	ctx     *Context
	key     ir.NodeID
	started bool
}

// Case opens the arm taken when key equals caseVal, closing the previous
// arm first.
func (s *SwitchBuilder) Case(caseVal ir.NodeID) {
	eq := s.ctx.ALU(ir.OpEq, 1, false, s.key, caseVal)
	if !s.started {
		s.ctx.resolver.BeginIf(eq)
		s.started = true
		return
	}
	s.ctx.resolver.ElseIf(eq)
}

// Default opens the trailing catch-all arm.
func (s *SwitchBuilder) Default() {
	s.ctx.resolver.Else()
}

// End closes the switch statement.
func (s *SwitchBuilder) End() {
	s.ctx.resolver.EndIf()
}
