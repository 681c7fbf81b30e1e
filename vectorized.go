package findint

import "github.com/coregx/findint/simd"

// Vectorized returns the index of the first element of haystack equal to
// key, or len(haystack) if there is none.
//
// Groups of four elements are compared at once with 128-bit SIMD
// instructions where the CPU supports them (SSE2 on x86-64); the len%4 tail
// and other platforms use a portable lane model. See simd.FindInt32.
func Vectorized(haystack []int32, key int32) int {
	return simd.FindInt32(haystack, key)
}
