// Package sim drives a compiled context through time: it wraps a
// context.Context as an Akita TickingComponent so the same cooperative
// scheduling used across the domain's ticking cores and drivers also
// runs a hardware description's clock domains, and it exposes the host
// buffer bindings and assertion handling a testbench needs.
package sim

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/hdlcore/context"
	"github.com/sarchlab/hdlcore/ir"
)

// HostBuffer is a host-side collaborator with a single Read method,
// mocked in this package's tests. The Simulator itself does not call it:
// Input and Output nodes reach the host through the read and write
// callbacks passed to context.Input and context.Output.
type HostBuffer interface {
	Read() ir.NodeID
}

// Fault reports the assertion (or runtime error) that stopped a run.
type Fault struct {
	Cause *ir.Error
	Cycle uint64
}

func (f *Fault) Error() string {
	return fmt.Sprintf("simulation halted at cycle %d: %s", f.Cycle, f.Cause)
}

func (f *Fault) Unwrap() error { return f.Cause }

// Simulator ticks a compiled context forward cycle by cycle as an Akita
// TickingComponent, checking every assertion root after each cycle and
// stopping the run the first time one fails.
type Simulator struct {
	*sim.TickingComponent

	ctx        *context.Context
	cycle      uint64
	maxCycles  uint64
	fault      *Fault
	asserts    []ir.NodeID
}

// NewSimulator builds a Simulator for ctx, ticked by engine at freq.
func NewSimulator(name string, engine sim.Engine, freq sim.Freq, ctx *context.Context) *Simulator {
	s := &Simulator{ctx: ctx}
	s.TickingComponent = sim.NewTickingComponent(name, engine, freq, s)

	for _, id := range ctx.Roots() {
		if ctx.Node(id).Kind == ir.KindAssert {
			s.asserts = append(s.asserts, id)
		}
	}
	return s
}

// Run drives the simulation for n cycles, or until an assertion fails.
func (s *Simulator) Run(n uint64) error {
	s.maxCycles = s.cycle + n
	for s.cycle < s.maxCycles {
		if !s.Tick(0) {
			break
		}
	}
	if s.fault != nil {
		return s.fault
	}
	return nil
}

// Tick advances the simulation by one cycle: every input/output/tap root
// is evaluated, every clock domain's tickables are staged and committed,
// and every assertion is checked. now is accepted to satisfy Akita's
// TickingComponent contract; the simulator's own notion of time is its
// cycle counter, not wall/virtual time.
func (s *Simulator) Tick(now sim.VTimeInSec) (madeProgress bool) {
	if s.cycle >= s.maxCycles && s.maxCycles != 0 {
		return false
	}

	for _, id := range s.ctx.Roots() {
		s.ctx.Node(id).Eval(s.cycle, s.ctx)
	}

	for _, id := range s.asserts {
		if err := s.ctx.Node(id).Check(s.cycle, s.ctx, s.ctx.Name); err != nil {
			s.fault = &Fault{Cause: err.(*ir.Error), Cycle: s.cycle}
			return false
		}
	}

	s.ctx.TickAll(s.cycle)
	s.cycle++
	return true
}

// Cycle returns the number of cycles executed so far.
func (s *Simulator) Cycle() uint64 { return s.cycle }

// Fault returns the assertion failure that stopped the run, if any.
func (s *Simulator) Fault() *Fault { return s.fault }

// Context returns the simulated graph, for inspection by a tracer or test.
func (s *Simulator) Context() *context.Context { return s.ctx }
