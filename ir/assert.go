package ir

// AssertPayload is a simulation-time guard: when Cond evaluates to zero on
// a tick where Enable (if set) is asserted, the simulator raises an
// AssertionFailed error carrying Message.
type AssertPayload struct {
	Enable  NodeID // 0 means "always checked"
	Message string
}

// Check evaluates the assert's guard and returns the diagnostic error, or
// nil if the assertion holds (or Enable is deasserted).
func (n *Node) Check(t uint64, g Graph, module string) error {
	p := n.Payload.(*AssertPayload)
	if p.Enable != 0 && g.Node(p.Enable).Eval(t, g).IsZero() {
		return nil
	}
	cond := n.src(g, 0).Eval(t, g)
	if !cond.IsZero() {
		return nil
	}
	return NewRuntimeError(ErrAssertionFailed, module, n, t, p.Message)
}
