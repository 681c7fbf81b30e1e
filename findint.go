// Package findint provides interchangeable first-match linear searches over
// int32 slices.
//
// Four implementations share one contract and differ only in how they walk
// the slice:
//   - Scalar: one element per loop iteration (the reference)
//   - Unrolled8: eight elements per loop iteration, scalar tail
//   - Library: slices.Index from the standard library
//   - Vectorized: four 32-bit lanes per SSE2 compare (package simd)
//
// Every implementation returns the index of the first element equal to the
// key, or len(haystack) if the key is absent. An empty haystack yields 0.
// Results never differ between implementations; the accompanying harness
// (packages check and bench, command cmd/findint) verifies that and measures
// their relative throughput.
//
// Basic usage:
//
//	values := []int32{4, 8, 16, 32, 64, 128, 256, 512, 1024}
//	pos := findint.Vectorized(values, 1024) // 8
//	if pos == len(values) {
//	    fmt.Println("not found")
//	}
//
// All functions are pure: they never allocate, never retain or modify the
// haystack and are safe for concurrent use. The haystack must not be written
// to while a search is running.
package findint

// Func is the signature shared by every search implementation. It returns
// the index of the first element of haystack equal to key, or len(haystack)
// if there is none.
type Func func(haystack []int32, key int32) int
