// Command findint validates and benchmarks the first-match int32 search
// implementations.
//
// Usage:
//
//	findint [flags] [size]
//
// Without a size it runs the correctness battery, then times every variant on
// ordered sequences 1..n for n from 4 to 16Mi. With a positive size it times a
// single call of every variant on 1..size; --sample repeats that once per
// second with random keys until interrupted.
//
// Examples:
//
//	findint
//	findint --keys=random --min-time=50ms
//	findint 1000000
//	findint --sample 65536
//	findint --variant=scalar --variant=vectorized --metrics.addr=:9100
//
// The exit code is 1 when any check fails or any two variants disagree,
// 2 on invalid arguments, 130 when the sweep is interrupted before every
// size was measured, 0 otherwise.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/coregx/findint/bench"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
	// Conventional status for a run stopped by SIGINT.
	exitInterrupted = 130
)

// options holds the parsed command line.
type options struct {
	size        int
	sample      bool
	sizes       []string
	keys        string
	minTime     time.Duration
	interval    time.Duration
	variants    []string
	oracle      bool
	skipChecks  bool
	skipSweep   bool
	boundaryLen int
	logLevel    string
	metricsAddr string
	noColor     bool
}

func newApp(opts *options) *kingpin.Application {
	defaults := bench.DefaultConfig()

	app := kingpin.New("findint", "Validates and benchmarks first-match linear search over int32 sequences.")
	app.HelpFlag.Short('h')

	app.Arg("size", "Time one call of every variant on the sequence 1..size instead of running the checks and the sweep.").
		IntVar(&opts.size)

	app.Flag("sample", "With a size: re-measure with a random key every --interval until interrupted.").
		BoolVar(&opts.sample)
	app.Flag("sizes", "Sequence sizes for the sweep (repeatable). Defaults to 4, 16 and 256..16Mi in powers of two.").
		StringsVar(&opts.sizes)
	app.Flag("keys", "Key searched in each sweep sequence: last, random or missing.").
		Default(string(defaults.Keys)).EnumVar(&opts.keys, "last", "random", "missing")
	app.Flag("min-time", "Minimum time spent timing each variant per sweep size.").
		Default(defaults.MinTime.String()).DurationVar(&opts.minTime)
	app.Flag("interval", "Pause between two samples in --sample mode.").
		Default(defaults.Interval.String()).DurationVar(&opts.interval)
	app.Flag("variant", "Restrict to the named variant (repeatable): scalar, unrolled8, library, vectorized.").
		StringsVar(&opts.variants)
	app.Flag("oracle", "Cross-check every result with the byte-level Aho-Corasick oracle.").
		BoolVar(&opts.oracle)
	app.Flag("skip-checks", "Do not run the correctness battery.").
		BoolVar(&opts.skipChecks)
	app.Flag("skip-sweep", "Do not run the timing sweep.").
		BoolVar(&opts.skipSweep)
	app.Flag("boundary-len", "Largest sequence length of the generated boundary checks.").
		Default("64").IntVar(&opts.boundaryLen)
	app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").EnumVar(&opts.logLevel, "debug", "info", "warn", "error")
	app.Flag("metrics.addr", "Serve Prometheus metrics on this address while running (e.g. :9100).").
		StringVar(&opts.metricsAddr)
	app.Flag("no-color", "Disable colored output.").
		BoolVar(&opts.noColor)

	return app
}

func main() {
	var opts options
	app := newApp(&opts)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v, try --help\n", app.Name, err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, opts, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
