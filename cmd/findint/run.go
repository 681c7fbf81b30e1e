package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coregx/findint"
	"github.com/coregx/findint/bench"
	"github.com/coregx/findint/check"
	"github.com/coregx/findint/simd"
)

// run executes the command and returns the process exit code.
func run(ctx context.Context, opts options, stdout, stderr io.Writer) int {
	if opts.noColor {
		color.NoColor = true
	}
	logger := newLogger(stderr, opts.logLevel)

	variants, err := findint.Select(opts.variants)
	if err != nil {
		level.Error(logger).Log("msg", "invalid variant selection", "err", err)
		return exitUsage
	}

	cfg, err := benchConfig(opts)
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		return exitUsage
	}

	reg := prometheus.NewRegistry()
	metrics := bench.NewMetrics(reg)
	runner, err := bench.NewRunner(cfg, variants, metrics, logger)
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		return exitUsage
	}

	if opts.metricsAddr != "" {
		shutdown := serveMetrics(opts.metricsAddr, reg, logger)
		defer shutdown()
	}

	features := simd.DetectFeatures()
	level.Info(logger).Log("msg", "starting", "cpu", features, "variants", len(variants))

	p := newPrinter(stdout)

	if opts.size > 0 {
		if opts.sample {
			return sample(ctx, runner, opts.size, p, logger)
		}
		return measureOnce(runner, opts.size, p, logger)
	}
	if opts.size < 0 || opts.sample {
		level.Warn(logger).Log("msg", "no positive size given, running checks and sweep", "size", opts.size)
	}

	p.features(features)
	code := exitOK

	if !opts.skipChecks {
		r := &check.Runner{Variants: variants, Oracle: opts.oracle, Logger: logger, Out: stdout}
		res := r.Run(append(check.Battery(), check.Boundary(opts.boundaryLen)...))
		metrics.AddPassedChecks(res.Checks - len(res.Failures))
		for _, f := range res.Failures {
			metrics.ObserveCheck(f.Variant, false)
		}
		p.checks(res)
		if !res.OK() {
			code = exitMismatch
		}
	}

	if !opts.skipSweep {
		results, err := runner.Sweep(ctx)
		p.sweep(results)
		interrupted := errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		if err != nil && !interrupted {
			level.Error(logger).Log("msg", "sweep failed", "err", err)
			return exitMismatch
		}
		for _, m := range results {
			if !m.OK() {
				level.Error(logger).Log("msg", "measurement disagreement", "err", &bench.MismatchError{Measurement: m})
				code = exitMismatch
			}
		}
		if interrupted {
			level.Warn(logger).Log("msg", "sweep interrupted, results are incomplete", "measured", len(results), "sizes", len(cfg.Sizes))
			if code == exitOK {
				code = exitInterrupted
			}
		}
	}

	return code
}

func benchConfig(opts options) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if len(opts.sizes) > 0 {
		cfg.Sizes = nil
		for _, s := range opts.sizes {
			n, err := strconv.Atoi(s)
			if err != nil {
				return cfg, fmt.Errorf("%w: size %q: %w", bench.ErrInvalidConfig, s, err)
			}
			cfg.Sizes = append(cfg.Sizes, n)
		}
	}
	keys, err := bench.ParseKeyMode(opts.keys)
	if err != nil {
		return cfg, err
	}
	cfg.Keys = keys
	cfg.MinTime = opts.minTime
	cfg.Interval = opts.interval
	cfg.Oracle = opts.oracle
	return cfg, nil
}

// measureOnce times a single call of every variant on 1..n, searching for n.
func measureOnce(runner *bench.Runner, n int, p *printer, logger log.Logger) int {
	if n > bench.MaxSize {
		level.Error(logger).Log("msg", "size too large", "size", n, "max", bench.MaxSize)
		return exitUsage
	}
	haystack := bench.Ordered(n)
	m, err := runner.Once(haystack, haystack[n-1])
	if err != nil {
		level.Error(logger).Log("msg", "measurement failed", "err", err)
		return exitMismatch
	}
	p.once(m)
	if !m.OK() {
		p.mismatches(m)
		return exitMismatch
	}
	return exitOK
}

// sample prints one measurement per interval until ctx is done. A
// disagreement is reported and remembered but does not stop sampling.
func sample(ctx context.Context, runner *bench.Runner, n int, p *printer, logger log.Logger) int {
	p.line("CTRL+C to exit.")
	code := exitOK
	err := runner.Sample(ctx, n, func(m bench.Measurement) {
		p.once(m)
		if !m.OK() {
			p.mismatches(m)
			code = exitMismatch
		}
	})
	if err != nil {
		level.Error(logger).Log("msg", "sampling failed", "err", err)
		return exitUsage
	}
	return code
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, levelOption(lvl))
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func levelOption(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// serveMetrics exposes reg on addr and returns a function that stops the
// server.
func serveMetrics(addr string, reg *prometheus.Registry, logger log.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		level.Info(logger).Log("msg", "serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "metrics server failed", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
