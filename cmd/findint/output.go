package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/coregx/findint/bench"
	"github.com/coregx/findint/check"
	"github.com/coregx/findint/simd"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen, color.Bold)
	red   = color.New(color.FgRed, color.Bold)
)

// printer renders results on stdout.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *printer) features(f simd.Features) {
	fmt.Fprintf(p.w, "%s %s\n", bold.Sprint("CPU:"), f)
}

func (p *printer) checks(res check.Result) {
	status := green.Sprint("PASS")
	if !res.OK() {
		status = red.Sprint("FAIL")
	}
	fmt.Fprintf(p.w, "%s %s checks, %d failures\n", status, humanize.Comma(int64(res.Checks)), len(res.Failures))
}

// once prints one line per measurement: every variant's time and the winner,
// e.g. "scalar: 812 ns., unrolled8: 455 ns., ..., winner is vectorized."
func (p *printer) once(m bench.Measurement) {
	winner := m.Winner()
	parts := make([]string, 0, len(m.Timings))
	for _, t := range m.Timings {
		parts = append(parts, fmt.Sprintf("%s: %d ns.", t.Variant, t.PerOp().Nanoseconds()))
	}
	fmt.Fprintf(p.w, "n=%s k=%d %s, winner is %s.\n",
		humanize.Comma(int64(m.Size)), m.Key, strings.Join(parts, ", "), bold.Sprint(winner.Variant))
}

func (p *printer) mismatches(m bench.Measurement) {
	ref := m.Reference()
	for _, t := range m.Mismatches() {
		fmt.Fprintf(p.w, "%s %s -> %d, expected %d (n=%d, k=%d)\n", red.Sprint("Mismatch:"), t.Variant, t.Index, ref, m.Size, m.Key)
	}
}

// sweep prints a table with one row per size and one column per variant.
func (p *printer) sweep(results []bench.Measurement) {
	if len(results) == 0 {
		return
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"SIZE", "KEY", "INDEX"}
	for _, t := range results[0].Timings {
		header = append(header, t.Variant)
	}
	header = append(header, "WINNER", "RATE", "")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, m := range results {
		winner := m.Winner()
		row := []string{humanize.Comma(int64(m.Size)), fmt.Sprint(m.Key), fmt.Sprint(m.Reference())}
		for _, t := range m.Timings {
			// Escape codes would break the tabwriter alignment.
			cell := formatPerOp(t.PerOp())
			if t.Index != m.Reference() {
				cell = "!" + cell
			}
			row = append(row, cell)
		}
		row = append(row, winner.Variant, elementRate(m.Size, winner.PerOp()), "")
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

// formatPerOp prints a per-call duration with a precision that stays
// readable from nanoseconds to seconds.
func formatPerOp(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return d.Round(10 * time.Nanosecond).String()
	default:
		return d.Round(10 * time.Microsecond).String()
	}
}

// elementRate returns the scan rate of the winner in elements per second.
func elementRate(size int, perOp time.Duration) string {
	if perOp <= 0 {
		return "-"
	}
	return humanize.SIWithDigits(float64(size)/perOp.Seconds(), 1, "elem/s")
}
