package simd

import "math/bits"

// Number of int32 lanes in a 128-bit vector.
const lanes = 4

// laneBits is the number of mask bits a move-mask yields per lane: one per
// byte, so four for an int32 lane. The division by it compiles to a shift.
const laneBits = 4

// findInt32Generic is the portable vectorized search. It walks the
// haystack in groups of four lanes and finishes the len%4 tail with a scalar
// loop.
//
// It is used on all platforms:
//   - On amd64: for inputs shorter than one vector, or without SSE2
//   - Elsewhere (or with the purego tag): as the only implementation
func findInt32Generic(haystack []int32, needle int32) int {
	groups := len(haystack) / lanes
	key := BroadcastInt32x4(needle)

	for g := 0; g < groups; g++ {
		eq := key.Equal(LoadInt32x4(haystack[g*lanes:])).MoveMask()
		if eq == 0 {
			continue
		}
		return g*lanes + bits.TrailingZeros32(eq)/laneBits
	}

	return scanTail(haystack, needle, groups*lanes)
}

// scanTail scans haystack[from:] one element at a time and returns an index
// into the full haystack, or len(haystack) if the needle is absent.
func scanTail(haystack []int32, needle int32, from int) int {
	for i := from; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return len(haystack)
}
