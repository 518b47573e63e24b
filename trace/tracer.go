// Package trace samples a simulator's signals every cycle and renders the
// result as a VCD waveform, the format most Go and C++ hardware tooling in
// this ecosystem converges on for viewing in GTKWave or similar.
package trace

import (
	"io"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/hdlcore/context"
	"github.com/sarchlab/hdlcore/ir"
	"github.com/sarchlab/hdlcore/sim"
)

// Signal is one value the tracer samples every cycle.
type Signal struct {
	Name string
	Node ir.NodeID
}

// Tracer wraps a Simulator, recording every registered signal's value on
// each call to Sample and rendering the accumulated trace as VCD.
type Tracer struct {
	sim     *sim.Simulator
	signals []Signal
	writer  *vcdWriter
	closed  bool
}

// New creates a Tracer over s that will record signals into w as VCD.
// It registers an atexit hook that calls Close, so a trace that was never
// explicitly closed still flushes whatever it has recorded when the
// process exits through atexit.Exit. The hook does not run on a panic or
// on a plain return from main.
func New(s *sim.Simulator, w io.Writer) *Tracer {
	t := &Tracer{sim: s, writer: newVCDWriter(w)}
	atexit.Register(func() { t.Close() })
	return t
}

// Watch adds a signal to the set sampled on every Sample call. Must be
// called before the first Sample.
func (t *Tracer) Watch(name string, node ir.NodeID) {
	t.signals = append(t.signals, Signal{Name: name, Node: node})
}

// WatchModule registers every root node of c under its own name, a
// convenient default for tracing a whole module's I/O. Assertions and
// memory write ports are roots kept live for DCE, not observable values,
// so they are skipped here.
func (t *Tracer) WatchModule(c *context.Context) {
	for _, id := range c.Roots() {
		n := c.Node(id)
		if n.Kind == ir.KindAssert || n.Kind == ir.KindMemWrite {
			continue
		}
		t.Watch(n.Name, id)
	}
}

// Begin writes the VCD header declaring every watched signal.
func (t *Tracer) Begin() error {
	decls := make([]varDecl, len(t.signals))
	for i, s := range t.signals {
		decls[i] = varDecl{name: s.Name, width: t.sim.Context().Node(s.Node).Width, id: vcdID(i)}
	}
	return t.writer.writeHeader(decls)
}

// Sample records every watched signal's current value at the simulator's
// present cycle.
func (t *Tracer) Sample() error {
	if err := t.writer.writeTimestamp(t.sim.Cycle()); err != nil {
		return err
	}
	for i, s := range t.signals {
		v := t.sim.Context().Node(s.Node).Eval(t.sim.Cycle(), t.sim.Context())
		if err := t.writer.writeValue(vcdID(i), v); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes any buffered output. Safe to call more than once.
func (t *Tracer) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.writer.flush()
}
