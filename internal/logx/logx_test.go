package logx_test

import (
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hdlcore/internal/logx"
)

var _ = Describe("Custom levels", func() {
	It("sits strictly between Info and Warn", func() {
		Expect(logx.LevelTrace).To(BeNumerically(">", 0))
		Expect(logx.LevelWaveform).To(BeNumerically(">", logx.LevelTrace))
		Expect(logx.LevelWaveform).To(BeNumerically("<", slog.LevelWarn))
	})

	It("names the custom levels", func() {
		Expect(logx.LevelName(logx.LevelTrace)).To(Equal("TRACE"))
		Expect(logx.LevelName(logx.LevelWaveform)).To(Equal("WAVEFORM"))
	})
})

var _ = Describe("DumpState", func() {
	It("renders a table containing every row's signal name", func() {
		out := logx.DumpState("regs", []logx.StateRow{
			{Name: "a", Value: "8'h05"},
			{Name: "b", Value: "8'h0A"},
		})
		Expect(out).To(ContainSubstring("a"))
		Expect(out).To(ContainSubstring("8'h05"))
	})
})
