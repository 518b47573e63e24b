package bitvector_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hdlcore/bitvector"
)

var _ = Describe("Value", func() {
	Describe("construction and width", func() {
		It("never changes width silently", func() {
			v := bitvector.FromUint64(4, 0xFF)
			Expect(v.Width()).To(Equal(uint32(4)))
			Expect(v.Uint64()).To(Equal(uint64(0xF)))
		})
	})

	Describe("slicing and concatenation", func() {
		It("round-trips concat(slice(x,0,w/2), slice(x,w/2,w/2)) == x", func() {
			x := bitvector.FromUint64(8, 0xA5)
			lo := x.Slice(0, 4)
			hi := x.Slice(4, 4)
			Expect(bitvector.Equal(bitvector.Concat(lo, hi), x)).To(BeTrue())
		})
	})

	Describe("the 4-bit ripple adder scenario", func() {
		It("computes a=0b1010 + b=0b0110 = 0b0000 with carry out 1", func() {
			a := bitvector.FromUint64(4, 0b1010)
			b := bitvector.FromUint64(4, 0b0110)
			wide := bitvector.Add(bitvector.ZeroExtend(a, 5), bitvector.ZeroExtend(b, 5))
			sum := wide.Slice(0, 4)
			carry := wide.Bit(4)
			Expect(sum.Uint64()).To(Equal(uint64(0b0000)))
			Expect(carry).To(Equal(uint(1)))
		})
	})

	Describe("unsigned ordering", func() {
		It("orders correctly", func() {
			a := bitvector.FromUint64(8, 3)
			b := bitvector.FromUint64(8, 200)
			Expect(bitvector.ULess(a, b)).To(BeTrue())
			Expect(bitvector.ULess(b, a)).To(BeFalse())
		})
	})

	Describe("signed ordering", func() {
		It("treats the top bit as sign", func() {
			negOne := bitvector.FromUint64(8, 0xFF)
			one := bitvector.FromUint64(8, 1)
			Expect(bitvector.SLess(negOne, one)).To(BeTrue())
			Expect(bitvector.ULess(negOne, one)).To(BeFalse())
		})
	})

	Describe("shifts", func() {
		It("shl grows from the low end, shr from the high end", func() {
			v := bitvector.FromUint64(8, 0b00000001)
			Expect(bitvector.Shl(v, 3).Uint64()).To(Equal(uint64(0b00001000)))

			w := bitvector.FromUint64(8, 0b10000000)
			Expect(bitvector.Shr(w, 3).Uint64()).To(Equal(uint64(0b00010000)))
		})

		It("ashr replicates the sign bit", func() {
			v := bitvector.FromUint64(8, 0xF0) // -16 signed
			r := bitvector.AShr(v, 4)
			Expect(r.Uint64()).To(Equal(uint64(0xFF)))
		})
	})

	Describe("arithmetic", func() {
		It("wraps add/sub modulo 2^width", func() {
			a := bitvector.FromUint64(4, 15)
			b := bitvector.FromUint64(4, 2)
			Expect(bitvector.Add(a, b).Uint64()).To(Equal(uint64(1)))
		})

		It("multiplies via shift-add", func() {
			a := bitvector.FromUint64(8, 6)
			b := bitvector.FromUint64(8, 7)
			Expect(bitvector.Mul(a, b).Uint64()).To(Equal(uint64(42)))
		})

		It("divides and mods unsigned", func() {
			a := bitvector.FromUint64(8, 17)
			b := bitvector.FromUint64(8, 5)
			Expect(bitvector.UDiv(a, b).Uint64()).To(Equal(uint64(3)))
			Expect(bitvector.UMod(a, b).Uint64()).To(Equal(uint64(2)))
		})

		It("divides signed toward zero", func() {
			a := bitvector.FromUint64(8, 0xF6) // -10
			b := bitvector.FromUint64(8, 3)
			q := bitvector.SDiv(a, b)
			Expect(int8(q.Uint64())).To(Equal(int8(-3)))
		})
	})

	Describe("extension", func() {
		It("zero-extends without sign replication", func() {
			v := bitvector.FromUint64(4, 0b1010)
			z := bitvector.ZeroExtend(v, 8)
			Expect(z.Uint64()).To(Equal(uint64(0b00001010)))
		})

		It("sign-extends replicating the top bit", func() {
			v := bitvector.FromUint64(4, 0b1010)
			s := bitvector.SignExtend(v, 8)
			Expect(s.Uint64()).To(Equal(uint64(0b11111010)))
		})
	})

	Describe("reductions", func() {
		It("reduces and/or/xor to a single bit", func() {
			all1 := bitvector.FromUint64(4, 0b1111)
			Expect(bitvector.ReduceAnd(all1).Uint64()).To(Equal(uint64(1)))

			some := bitvector.FromUint64(4, 0b0100)
			Expect(bitvector.ReduceAnd(some).Uint64()).To(Equal(uint64(0)))
			Expect(bitvector.ReduceOr(some).Uint64()).To(Equal(uint64(1)))

			Expect(bitvector.ReduceXor(bitvector.FromUint64(4, 0b0011)).Uint64()).To(Equal(uint64(0)))
			Expect(bitvector.ReduceXor(bitvector.FromUint64(4, 0b0111)).Uint64()).To(Equal(uint64(1)))
		})
	})

	Describe("literal uniqueness support", func() {
		It("considers equal-width equal-value vectors equal", func() {
			a := bitvector.FromUint64(16, 42)
			b := bitvector.FromUint64(16, 42)
			Expect(bitvector.Equal(a, b)).To(BeTrue())
		})

		It("considers different widths unequal even with the same numeric value", func() {
			a := bitvector.FromUint64(8, 42)
			b := bitvector.FromUint64(16, 42)
			Expect(bitvector.Equal(a, b)).To(BeFalse())
		})
	})
})
