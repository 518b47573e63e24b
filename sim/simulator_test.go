package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	akitasim "github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/hdlcore/bitvector"
	"github.com/sarchlab/hdlcore/compiler"
	"github.com/sarchlab/hdlcore/context"
	"github.com/sarchlab/hdlcore/ir"
	"github.com/sarchlab/hdlcore/sim"
)

var _ = Describe("Simulator", func() {
	It("ticks a register through an edge every cycle", func() {
		c := context.New("counter")
		clock := c.Input("clk", 1, func() bitvector.Value { return bitvector.Zero(1) })
		one := c.Literal(bitvector.FromUint64(8, 1))

		c.PushClock(clock, ir.EdgePos)
		prev := c.Undef(8) // forward reference to the register's own output
		next := c.ALU(ir.OpAdd, 8, false, prev, one)
		reg := c.Reg(8, next, 0, 0)
		c.Substitute(prev, reg)
		c.PopClock()

		var observed uint64
		c.Output("count", reg, func(v bitvector.Value) { observed = v.Uint64() })

		_, err := compiler.Compile(c)
		Expect(err).NotTo(HaveOccurred())

		engine := akitasim.NewSerialEngine()
		s := sim.NewSimulator("sim", engine, 1*akitasim.GHz, c)
		Expect(s.Run(3)).NotTo(HaveOccurred())
		// Each Tick samples the output before committing that cycle's edge,
		// so after 3 cycles the last sample reflects 2 prior commits.
		Expect(observed).To(Equal(uint64(2)))
		Expect(s.Cycle()).To(Equal(uint64(3)))
	})

	It("halts and reports a fault when an assertion fails", func() {
		c := context.New("guarded")
		zero := c.Literal(bitvector.FromUint64(1, 0))
		c.Assert(zero, 0, "always false")

		_, err := compiler.Compile(c)
		Expect(err).NotTo(HaveOccurred())

		engine := akitasim.NewSerialEngine()
		s := sim.NewSimulator("sim", engine, 1*akitasim.GHz, c)
		runErr := s.Run(1)
		Expect(runErr).To(HaveOccurred())
		Expect(s.Fault()).NotTo(BeNil())
	})
})
