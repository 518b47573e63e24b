package compiler_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hdlcore/bitvector"
	"github.com/sarchlab/hdlcore/compiler"
	"github.com/sarchlab/hdlcore/context"
	"github.com/sarchlab/hdlcore/ir"
)

var _ = Describe("Syntax check", func() {
	It("fails when an output is wired to an undef node", func() {
		c := context.New("m")
		undef := c.Undef(8)
		c.Output("o", undef, nil)

		_, err := compiler.Compile(c)
		Expect(err).To(HaveOccurred())
	})

	It("passes when every root is fully defined", func() {
		c := context.New("m")
		lit := c.Literal(bitvector.FromUint64(8, 1))
		c.Output("o", lit, nil)

		_, err := compiler.Compile(c)
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("Dead code elimination", func() {
	It("prunes a node unreachable from any root", func() {
		c := context.New("m")
		live := c.Literal(bitvector.FromUint64(8, 1))
		c.Output("o", live, nil)
		dead := c.ALU(ir.OpInv, 8, false, live)

		report, err := compiler.Compile(c)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Node(dead)).To(BeNil())
		Expect(report.LiveNodes).To(BeNumerically("<", report.TotalNodes))
	})
})

var _ = Describe("Identity elimination", func() {
	It("replaces an identity proxy with a direct reference to its source", func() {
		c := context.New("m")
		src := c.Literal(bitvector.FromUint64(8, 5))
		proxy, err := c.Proxy(8, []ir.NodeID{src}, []ir.Range{{SrcIndex: 0, SrcOffset: 0, DstOffset: 0, Length: 8}})
		Expect(err).NotTo(HaveOccurred())
		outID := c.Output("o", proxy, nil)

		_, err = compiler.Compile(c)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Node(outID).Sources[0]).To(Equal(src))
	})
})

var _ = Describe("Switch reconstruction", func() {
	It("collapses an eq-chain of selects into one keyed select", func() {
		c := context.New("m")
		key := c.Literal(bitvector.FromUint64(8, 2))
		v := c.NewVarInit(8, c.Literal(bitvector.FromUint64(8, 0)))

		sw := c.Switch(key)
		sw.Case(c.Literal(bitvector.FromUint64(8, 1)))
		v.Assign(c.Literal(bitvector.FromUint64(8, 111)))
		sw.Case(c.Literal(bitvector.FromUint64(8, 2)))
		v.Assign(c.Literal(bitvector.FromUint64(8, 222)))
		sw.End()

		out := c.Output("o", v.Read(), nil)

		report, err := compiler.Compile(c)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.ReconstructedSwitches).To(Equal(1))

		result := c.Node(out).Eval(0, c)
		Expect(result.Uint64()).To(Equal(uint64(222)))
	})
})
