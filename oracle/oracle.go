// Package oracle provides an independent cross-check for int32 searches.
//
// The sequence is encoded once as little-endian bytes and every key is
// searched as its own 4-byte encoding with an Aho-Corasick automaton. Byte
// matches that do not start on an element boundary are skipped, so the first
// aligned match is the first element equal to the key. The answer is computed
// in a different domain (bytes, automaton) from the int32 scans it checks,
// which makes it useful for catching errors shared by all of them.
package oracle

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// elemSize is the encoded width of one int32.
const elemSize = 4

// ErrBuild indicates that the search automaton could not be built.
var ErrBuild = errors.New("oracle: automaton build failed")

// BuildError wraps automaton build failures with the key being searched.
type BuildError struct {
	Key int32
	Err error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	return fmt.Sprintf("%v for key %d: %v", ErrBuild, e.Key, e.Err)
}

// Unwrap returns the underlying errors
func (e *BuildError) Unwrap() []error {
	return []error{ErrBuild, e.Err}
}

// Oracle answers first-match queries over one fixed sequence.
//
// An Oracle is immutable after New and safe for concurrent use.
type Oracle struct {
	encoded []byte
	n       int
}

// New encodes haystack. The haystack is not retained.
func New(haystack []int32) *Oracle {
	encoded := make([]byte, 0, len(haystack)*elemSize)
	for _, v := range haystack {
		encoded = binary.LittleEndian.AppendUint32(encoded, uint32(v))
	}
	return &Oracle{encoded: encoded, n: len(haystack)}
}

// Len returns the number of elements in the sequence.
func (o *Oracle) Len() int {
	return o.n
}

// Index returns the index of the first element equal to key, or Len() if
// there is none.
func (o *Oracle) Index(key int32) (int, error) {
	if o.n == 0 {
		return 0, nil
	}

	var pattern [elemSize]byte
	binary.LittleEndian.PutUint32(pattern[:], uint32(key))

	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern[:])
	auto, err := builder.Build()
	if err != nil {
		return 0, &BuildError{Key: key, Err: err}
	}

	at := 0
	for at < len(o.encoded) {
		m := auto.Find(o.encoded, at)
		if m == nil {
			break
		}
		if m.Start%elemSize == 0 {
			return m.Start / elemSize, nil
		}
		// Straddles two elements; resume at the next element boundary.
		at = (m.Start/elemSize + 1) * elemSize
	}

	return o.n, nil
}
