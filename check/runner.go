package check

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/coregx/findint"
	"github.com/coregx/findint/oracle"
)

// OracleVariant is the variant name used in failures raised by the oracle
// cross-check.
const OracleVariant = "oracle"

// Failure is one disagreement between a variant and the expected index.
type Failure struct {
	Case    Case
	Variant string
	Got     int

	// Err is set when the variant could not produce an answer at all
	// (only the oracle can fail this way).
	Err error
}

// Error implements the error interface
func (f Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: key %d: %v", f.Case.Name, f.Variant, f.Case.Key, f.Err)
	}
	return fmt.Sprintf("%s: %s: key %d: expected %d, got %d",
		f.Case.Name, f.Variant, f.Case.Key, f.Case.Want, f.Got)
}

// Unwrap returns the underlying error
func (f Failure) Unwrap() error {
	return f.Err
}

// Report renders the full diagnostic block: variant, expected and actual
// index, key and every element of the sequence.
func (f Failure) Report() string {
	var b strings.Builder
	b.WriteString("FAIL:\n")
	fmt.Fprintf(&b, "%s (%s)\n", f.Variant, f.Case.Name)
	fmt.Fprintf(&b, "expected: %d\n", f.Case.Want)
	if f.Err != nil {
		fmt.Fprintf(&b, "error: %v\n", f.Err)
	} else {
		fmt.Fprintf(&b, "got: %d\n", f.Got)
	}
	fmt.Fprintf(&b, "k=%d\n", f.Case.Key)
	b.WriteString("v={")
	for i, v := range f.Case.Haystack {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteString(" }\n")
	return b.String()
}

// Result summarizes a run.
type Result struct {
	Checks   int
	Failures []Failure
}

// OK reports whether every check passed.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}

// Runner executes cases against a set of variants.
type Runner struct {
	// Variants to check. Nil means findint.Variants().
	Variants []findint.Variant

	// Oracle additionally verifies each case's expected index with the
	// byte-level oracle.
	Oracle bool

	// Logger receives one structured line per failure and a summary.
	// Nil means no logging.
	Logger log.Logger

	// Out receives the diagnostic report of every failure. Nil discards it.
	Out io.Writer
}

// Run executes every case against every variant. It never stops at the
// first failure, so a single run surfaces every discrepancy.
func (r *Runner) Run(cases []Case) Result {
	variants := r.Variants
	if variants == nil {
		variants = findint.Variants()
	}
	logger := r.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	var res Result
	for _, c := range cases {
		for _, v := range variants {
			res.Checks++
			if got := v.Find(c.Haystack, c.Key); got != c.Want {
				res.Failures = append(res.Failures, reportFailure(logger, out, Failure{Case: c, Variant: v.Name, Got: got}))
			}
		}

		if r.Oracle {
			res.Checks++
			got, err := oracle.New(c.Haystack).Index(c.Key)
			if err != nil || got != c.Want {
				res.Failures = append(res.Failures, reportFailure(logger, out, Failure{Case: c, Variant: OracleVariant, Got: got, Err: err}))
			}
		}
	}

	level.Info(logger).Log("msg", "correctness checks finished", "cases", len(cases), "checks", res.Checks, "failures", len(res.Failures))
	return res
}

func reportFailure(logger log.Logger, out io.Writer, f Failure) Failure {
	kv := []interface{}{"msg", "search variant disagrees", "case", f.Case.Name, "variant", f.Variant,
		"key", f.Case.Key, "expected", f.Case.Want, "got", f.Got, "len", len(f.Case.Haystack)}
	if f.Err != nil {
		kv = append(kv, "err", f.Err)
	}
	level.Error(logger).Log(kv...)
	_, _ = io.WriteString(out, f.Report())
	return f
}
