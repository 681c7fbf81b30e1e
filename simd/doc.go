// Package simd provides a 128-bit vectorized first-match search over int32
// slices.
//
// On x86-64 the search runs in SSE2 assembly, comparing four 32-bit lanes per
// instruction. Every other platform, the purego build tag and inputs shorter
// than one vector use a portable implementation built on the explicit lane
// type Int32x4, which models the same broadcast / compare / move-mask
// sequence in pure Go.
//
// Both paths share one contract: FindInt32 returns the index of the first
// element equal to the needle, or len(haystack) if there is none.
package simd
