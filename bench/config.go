// Package bench measures the relative throughput of the search variants.
//
// Inputs are ordered sequences 1..n. For every size the same key is handed to
// every variant, timings are recorded per variant and the returned indices
// are compared, so a timing run doubles as an agreement check.
package bench

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig indicates an invalid benchmark configuration.
var ErrInvalidConfig = errors.New("invalid benchmark configuration")

// KeyMode selects the key searched for in each sequence.
type KeyMode string

const (
	// KeyLast searches for the last element: a full scan that ends in a hit.
	KeyLast KeyMode = "last"

	// KeyRandom draws a key uniformly from [0, n-1]. 0 is absent from 1..n,
	// so occasionally the whole sequence is scanned without a hit.
	KeyRandom KeyMode = "random"

	// KeyMissing searches for 0, which 1..n never contains.
	KeyMissing KeyMode = "missing"
)

// KeyModes lists the accepted key modes.
var KeyModes = []KeyMode{KeyLast, KeyRandom, KeyMissing}

// ParseKeyMode parses a key mode name.
func ParseKeyMode(s string) (KeyMode, error) {
	for _, m := range KeyModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unknown key mode %q", ErrInvalidConfig, s)
}

// MaxSize is the largest sequence that can be filled with 1..n as int32.
const MaxSize = math.MaxInt32

// DefaultSizes returns the sweep sizes: 4, 16, then every power of two from
// 256 to 16Mi.
func DefaultSizes() []int {
	sizes := []int{1 << 2, 1 << 4}
	for shift := 8; shift <= 24; shift++ {
		sizes = append(sizes, 1<<shift)
	}
	return sizes
}

// Config controls a benchmark run.
//
// Example:
//
//	cfg := bench.DefaultConfig()
//	cfg.Sizes = []int{1 << 10, 1 << 20}
//	cfg.Keys = bench.KeyRandom
type Config struct {
	// Sizes are the sequence lengths swept by Runner.Sweep.
	// Default: DefaultSizes()
	Sizes []int

	// MinTime is the minimum wall clock time spent on each variant per size
	// in Runner.Throughput.
	// Default: 100ms
	MinTime time.Duration

	// Keys selects the searched key.
	// Default: KeyLast
	Keys KeyMode

	// Interval is the pause between two samples in Runner.Sample.
	// Default: 1s
	Interval time.Duration

	// Oracle additionally cross-checks every measurement with the byte-level
	// oracle. It allocates a copy of the sequence per size.
	// Default: false
	Oracle bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Sizes:    DefaultSizes(),
		MinTime:  100 * time.Millisecond,
		Keys:     KeyLast,
		Interval: time.Second,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	for _, n := range c.Sizes {
		if err := validateSize(n); err != nil {
			return err
		}
	}
	if c.MinTime < 0 {
		return fmt.Errorf("%w: negative min time %v", ErrInvalidConfig, c.MinTime)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: sample interval must be positive, got %v", ErrInvalidConfig, c.Interval)
	}
	if _, err := ParseKeyMode(string(c.Keys)); err != nil {
		return err
	}
	return nil
}

func validateSize(n int) error {
	if n <= 0 || n > MaxSize {
		return fmt.Errorf("%w: size %d out of range [1, %d]", ErrInvalidConfig, n, MaxSize)
	}
	return nil
}
