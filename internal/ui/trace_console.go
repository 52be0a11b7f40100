// File: internal/ui/trace_console.go
// Brief: Internal ui package implementation for 'trace console'.

// Package ui renders exercise output: disk scheduling traces, totals, and
// diagnostics, with optional color when a terminal is attached.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/oslab/internal/disksched"
)

const defaultRuleWidth = 40

// Console writes policy traces to a single destination. Construct one per
// run; color is resolved once from the requested mode.
type Console struct {
	out     io.Writer
	colored bool

	header *color.Color
	total  *color.Color
	warn   *color.Color
}

// NewConsole builds a console for out. Mode is auto, always, or never; auto
// enables color only when out is a terminal.
func NewConsole(out io.Writer, mode string) *Console {
	colored := false
	switch strings.ToLower(mode) {
	case "always":
		colored = true
	case "never":
		colored = false
	default:
		colored = IsTerminal(out)
	}
	c := &Console{
		out:     out,
		colored: colored,
		header:  color.New(color.FgCyan, color.Bold),
		total:   color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow),
	}
	if colored {
		// Override the package-level TTY autodetection; the caller asked.
		c.header.EnableColor()
		c.total.EnableColor()
		c.warn.EnableColor()
	}
	return c
}

// Result renders one policy trace: a header, the move-by-move lines, and the
// cumulative total. The move lines stay uncolored so their text matches the
// classic "Move from X to Y" output byte for byte.
func (c *Console) Result(res disksched.Result) {
	c.Rule()
	fmt.Fprintln(c.out, c.paint(c.header, fmt.Sprintf("%s schedule:", strings.ToUpper(res.Policy))))
	for _, m := range res.Moves {
		fmt.Fprintln(c.out, m.String())
	}
	fmt.Fprintln(c.out, c.paint(c.total, fmt.Sprintf("Total head movement: %d", res.Total)))
}

// Rule prints a separator sized to the terminal, capped for readability.
func (c *Console) Rule() {
	width := defaultRuleWidth
	if cols, ok := TerminalWidth(c.out); ok && cols > 0 && cols < width {
		width = cols
	}
	fmt.Fprintln(c.out, strings.Repeat("-", width))
}

// Warnf reports a non-fatal condition, e.g. a rejected push in the demo.
func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintln(c.out, c.paint(c.warn, fmt.Sprintf(format, args...)))
}

// Printf writes a plain formatted line.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) paint(col *color.Color, s string) string {
	if !c.colored {
		return s
	}
	return col.Sprint(s)
}
