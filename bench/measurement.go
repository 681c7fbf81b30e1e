package bench

import (
	"fmt"
	"time"
)

// Timing is the result of timing one variant on one input.
type Timing struct {
	Variant string

	// Index is the value the variant returned.
	Index int

	// Elapsed is the wall clock time of Iterations consecutive calls.
	Elapsed    time.Duration
	Iterations int
}

// PerOp returns the average duration of one call.
func (t Timing) PerOp() time.Duration {
	if t.Iterations <= 0 {
		return 0
	}
	return t.Elapsed / time.Duration(t.Iterations)
}

// Measurement holds the timings of every variant for one (sequence, key)
// pair.
type Measurement struct {
	Size    int
	Key     int32
	Timings []Timing

	// OracleIndex is the byte-level oracle's answer, or -1 when the oracle
	// was not consulted.
	OracleIndex int
}

// Reference returns the index every variant is expected to return: the
// oracle's answer when available, the first variant's otherwise.
func (m Measurement) Reference() int {
	if m.OracleIndex >= 0 || len(m.Timings) == 0 {
		return m.OracleIndex
	}
	return m.Timings[0].Index
}

// Mismatches returns the timings whose index differs from Reference.
func (m Measurement) Mismatches() []Timing {
	ref := m.Reference()
	var out []Timing
	for _, t := range m.Timings {
		if t.Index != ref {
			out = append(out, t)
		}
	}
	return out
}

// OK reports whether every variant returned the reference index.
func (m Measurement) OK() bool {
	return len(m.Mismatches()) == 0
}

// Winner returns the timing with the smallest per-call cost. Ties go to the
// earlier variant.
func (m Measurement) Winner() Timing {
	var best Timing
	for i, t := range m.Timings {
		if i == 0 || t.PerOp() < best.PerOp() {
			best = t
		}
	}
	return best
}

// MismatchError describes a measurement in which variants disagreed.
type MismatchError struct {
	Measurement Measurement
}

// Error implements the error interface
func (e *MismatchError) Error() string {
	ref := e.Measurement.Reference()
	msg := fmt.Sprintf("size %d key %d: expected index %d", e.Measurement.Size, e.Measurement.Key, ref)
	for _, t := range e.Measurement.Mismatches() {
		msg += fmt.Sprintf(", %s -> %d", t.Variant, t.Index)
	}
	return msg
}
