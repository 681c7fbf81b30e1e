package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coregx/findint/bench"
)

func parseArgs(t *testing.T, args ...string) options {
	t.Helper()
	var opts options
	_, err := newApp(&opts).Parse(args)
	require.NoError(t, err)
	return opts
}

func TestParseDefaults(t *testing.T) {
	opts := parseArgs(t)
	defaults := bench.DefaultConfig()

	require.Equal(t, 0, opts.size)
	require.Equal(t, "last", opts.keys)
	require.Equal(t, defaults.MinTime, opts.minTime)
	require.Equal(t, defaults.Interval, opts.interval)
	require.Equal(t, 64, opts.boundaryLen)
	require.Equal(t, "info", opts.logLevel)

	cfg, err := benchConfig(opts)
	require.NoError(t, err)
	require.Equal(t, bench.DefaultSizes(), cfg.Sizes)
}

func TestParseFlags(t *testing.T) {
	opts := parseArgs(t, "--sizes=8", "--sizes=9", "--keys=random", "--min-time=5ms",
		"--variant=scalar", "--variant=vectorized", "--oracle", "1000")

	require.Equal(t, 1000, opts.size)
	require.Equal(t, []string{"8", "9"}, opts.sizes)
	require.Equal(t, []string{"scalar", "vectorized"}, opts.variants)
	require.True(t, opts.oracle)

	cfg, err := benchConfig(opts)
	require.NoError(t, err)
	require.Equal(t, []int{8, 9}, cfg.Sizes)
	require.Equal(t, bench.KeyRandom, cfg.Keys)
	require.Equal(t, 5*time.Millisecond, cfg.MinTime)
	require.True(t, cfg.Oracle)
}

func TestBenchConfigRejectsBadSize(t *testing.T) {
	opts := parseArgs(t, "--sizes=16", "--sizes=lots")
	_, err := benchConfig(opts)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	var opts options
	_, err := newApp(&opts).Parse([]string{"--keys=first"})
	require.Error(t, err)
}

func TestRunDefaultMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := parseArgs(t, "--sizes=4", "--sizes=9", "--sizes=100", "--min-time=1ms", "--oracle", "--no-color")

	code := run(context.Background(), opts, &stdout, &stderr)
	require.Equal(t, exitOK, code, "stdout:\n%s\nstderr:\n%s", stdout.String(), stderr.String())

	out := stdout.String()
	require.Contains(t, out, "PASS")
	require.Contains(t, out, "SIZE")
	require.Contains(t, out, "vectorized")
	require.NotContains(t, out, "FAIL")
	require.NotContains(t, stderr.String(), "level=error")
}

func TestRunInterruptedSweep(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := parseArgs(t, "--no-color", "--skip-checks", "--sizes=4", "--sizes=16", "--min-time=1ms")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := run(ctx, opts, &stdout, &stderr)
	require.Equal(t, exitInterrupted, code, stderr.String())
	require.Contains(t, stderr.String(), "sweep interrupted")
	require.Contains(t, stderr.String(), "level=warn")
}

func TestRunOnce(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := parseArgs(t, "--no-color", "4096")

	code := run(context.Background(), opts, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	require.Contains(t, out, "n=4,096 k=4096 ")
	require.Contains(t, out, "winner is ")
	require.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRunSampleStopsOnCancel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := parseArgs(t, "--no-color", "--sample", "--interval=1ms", "256")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	code := run(ctx, opts, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	require.Contains(t, stdout.String(), "CTRL+C to exit.")
	require.Contains(t, stdout.String(), "winner is ")
}

func TestRunUnknownVariant(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := parseArgs(t, "--variant=avx512")

	require.Equal(t, exitUsage, run(context.Background(), opts, &stdout, &stderr))
	require.Contains(t, stderr.String(), "unknown search variant")
}

func TestFormatPerOp(t *testing.T) {
	require.Equal(t, "812ns", formatPerOp(812))
	require.Equal(t, "1.23µs", formatPerOp(1234*time.Nanosecond))
	require.Equal(t, "12.35ms", formatPerOp(12345678*time.Nanosecond))
}

func TestElementRate(t *testing.T) {
	require.Equal(t, "-", elementRate(10, 0))
	require.Contains(t, elementRate(1000, time.Microsecond), "Gelem/s")
}
