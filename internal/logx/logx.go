// Package logx carries the simulator's structured logging conventions:
// two custom slog levels between Info and Warn for simulation detail that
// is too voluminous for Info but still worth keeping outside Debug, plus
// a helper to render named signal values as a table for human-readable
// state dumps.
package logx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	// LevelTrace is for routine construction and simulation detail; in
	// this module it is used by context.Var.AssignSlice to note slice
	// writes that supersede earlier partial writes.
	LevelTrace slog.Level = slog.LevelInfo + 1

	// LevelWaveform is the level for per-tick signal values; no package
	// in this module currently logs at it.
	LevelWaveform slog.Level = slog.LevelInfo + 2
)

// Trace logs at LevelTrace using the default slog logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// Waveform logs at LevelWaveform using the default slog logger.
func Waveform(msg string, args ...any) {
	slog.Log(context.Background(), LevelWaveform, msg, args...)
}

// StateRow is one line of a node-state dump: a signal name and its
// current value rendered as a string (e.g. bitvector.Value.String()).
type StateRow struct {
	Name  string
	Value string
}

// DumpState renders rows as an aligned table, used by a testbench or CLI
// to print a module's signals at a breakpoint.
func DumpState(title string, rows []StateRow) string {
	t := table.NewWriter()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Signal", "Value"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, r.Value})
	}
	return t.Render()
}

// LevelName renders a level, including the two custom ones, the way a
// slog.HandlerOptions.ReplaceAttr hook would.
func LevelName(l slog.Level) string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelWaveform:
		return "WAVEFORM"
	default:
		return fmt.Sprint(l)
	}
}
