package bench

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/coregx/findint"
	"github.com/coregx/findint/oracle"
)

// maxIterations bounds the number of calls in one timing round.
const maxIterations = 1_000_000_000

// Runner times a set of variants. It is meant for sequential use; nothing in
// it is shared between runners.
type Runner struct {
	cfg      Config
	variants []findint.Variant
	metrics  *Metrics
	logger   log.Logger
}

// NewRunner validates cfg and creates a Runner. Empty variants means every
// variant; nil metrics and logger are allowed.
func NewRunner(cfg Config, variants []findint.Variant, metrics *Metrics, logger log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		variants = findint.Variants()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Runner{cfg: cfg, variants: variants, metrics: metrics, logger: logger}, nil
}

// Once calls every variant exactly once on haystack and records the wall
// clock time of each call.
func (r *Runner) Once(haystack []int32, key int32) (Measurement, error) {
	return r.once(haystack, key, r.newOracle(haystack))
}

// Throughput calls every variant repeatedly, growing the number of calls
// until Config.MinTime has elapsed, and records the total.
func (r *Runner) Throughput(haystack []int32, key int32) (Measurement, error) {
	m := newMeasurement(haystack, key)
	for _, v := range r.variants {
		m.Timings = append(m.Timings, timeVariant(v, haystack, key, r.cfg.MinTime))
	}
	return r.finish(m, r.newOracle(haystack))
}

// Sweep runs Throughput on an ordered sequence of every configured size.
// It stops between sizes when ctx is done. Variant disagreements do not stop
// the sweep; check Measurement.OK on the results.
func (r *Runner) Sweep(ctx context.Context) ([]Measurement, error) {
	results := make([]Measurement, 0, len(r.cfg.Sizes))
	for _, n := range r.cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		haystack := Ordered(n)
		key := newKeyPicker(r.cfg.Keys, n).next(haystack)

		m, err := r.Throughput(haystack, key)
		if err != nil {
			return results, fmt.Errorf("size %d: %w", n, err)
		}
		results = append(results, m)

		w := m.Winner()
		level.Info(r.logger).Log("msg", "measured", "size", n, "key", key, "winner", w.Variant, "per_op", w.PerOp())
	}
	return results, nil
}

// Sample repeatedly searches the ordered sequence 1..n for a random key,
// one Once measurement per Config.Interval, and hands every measurement to
// fn. It returns nil when ctx is done.
func (r *Runner) Sample(ctx context.Context, n int, fn func(Measurement)) error {
	if err := validateSize(n); err != nil {
		return err
	}

	haystack := Ordered(n)
	picker := newKeyPicker(KeyRandom, n)
	orc := r.newOracle(haystack)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		m, err := r.once(haystack, picker.next(haystack), orc)
		if err != nil {
			return err
		}
		fn(m)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Runner) once(haystack []int32, key int32, orc *oracle.Oracle) (Measurement, error) {
	m := newMeasurement(haystack, key)
	for _, v := range r.variants {
		start := time.Now()
		idx := v.Find(haystack, key)
		elapsed := time.Since(start)
		m.Timings = append(m.Timings, Timing{Variant: v.Name, Index: idx, Elapsed: elapsed, Iterations: 1})
	}
	return r.finish(m, orc)
}

func (r *Runner) newOracle(haystack []int32) *oracle.Oracle {
	if !r.cfg.Oracle {
		return nil
	}
	return oracle.New(haystack)
}

// finish consults the oracle, records metrics and logs disagreements.
func (r *Runner) finish(m Measurement, orc *oracle.Oracle) (Measurement, error) {
	if orc != nil {
		idx, err := orc.Index(m.Key)
		if err != nil {
			return m, err
		}
		m.OracleIndex = idx
	}

	ref := m.Reference()
	for _, t := range m.Timings {
		r.metrics.observe(m.Size, t)
		r.metrics.ObserveCheck(t.Variant, t.Index == ref)
		if t.Index != ref {
			level.Error(r.logger).Log("msg", "search variant disagrees", "variant", t.Variant,
				"size", m.Size, "key", m.Key, "expected", ref, "got", t.Index)
		}
	}
	return m, nil
}

func newMeasurement(haystack []int32, key int32) Measurement {
	return Measurement{Size: len(haystack), Key: key, OracleIndex: -1}
}

// timeVariant makes one untimed call for the result, then runs rounds of
// consecutive calls until one round lasts at least minTime.
func timeVariant(v findint.Variant, haystack []int32, key int32, minTime time.Duration) Timing {
	t := Timing{Variant: v.Name, Index: v.Find(haystack, key)}

	iters := 1
	for {
		sink := 0
		start := time.Now()
		for i := 0; i < iters; i++ {
			sink += v.Find(haystack, key)
		}
		elapsed := time.Since(start)
		runtime.KeepAlive(sink)

		if elapsed >= minTime || iters >= maxIterations {
			t.Elapsed, t.Iterations = elapsed, iters
			return t
		}
		iters = predictIterations(iters, elapsed, minTime)
	}
}

// predictIterations follows testing.B: aim 20% past the target, grow by at
// least one and at most 100x per round. The arithmetic is done in int64 so
// it cannot wrap where int is 32 bits.
func predictIterations(last int, elapsed, target time.Duration) int {
	prev := int64(last)
	ns := max(int64(elapsed), 1)

	n := int64(math.Min(float64(target)*float64(prev)/float64(ns), maxIterations))
	n += n / 5
	n = min(n, 100*prev)
	n = max(n, prev+1)
	return int(min(n, maxIterations))
}
