package trace_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	akitasim "github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/hdlcore/bitvector"
	"github.com/sarchlab/hdlcore/compiler"
	"github.com/sarchlab/hdlcore/context"
	"github.com/sarchlab/hdlcore/sim"
	"github.com/sarchlab/hdlcore/trace"
)

var _ = Describe("VCD tracing", func() {
	It("writes a header and a timestamped sample of the watched signal", func() {
		c := context.New("m")
		lit := c.Literal(bitvector.FromUint64(4, 0xA))
		out := c.Output("o", lit, nil)

		_, err := compiler.Compile(c)
		Expect(err).NotTo(HaveOccurred())

		engine := akitasim.NewSerialEngine()
		s := sim.NewSimulator("sim", engine, 1*akitasim.GHz, c)

		var buf bytes.Buffer
		tr := trace.New(s, &buf)
		tr.Watch("o", out)
		Expect(tr.Begin()).To(Succeed())
		Expect(s.Run(2)).NotTo(HaveOccurred())
		Expect(tr.Sample()).To(Succeed())
		Expect(tr.Close()).To(Succeed())

		output := buf.String()
		Expect(output).To(ContainSubstring("$timescale"))
		Expect(output).To(ContainSubstring("$var wire 4 s0 o"))
		Expect(strings.Contains(output, "bxxxx") || strings.Contains(output, "b1010")).To(BeTrue())
	})
})
