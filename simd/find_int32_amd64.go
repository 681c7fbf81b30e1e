//go:build amd64 && !purego

package simd

import "golang.org/x/sys/cpu"

// hasSSE2 reports whether the CPU supports SSE2. It is part of the x86-64
// baseline, but the assembly is still gated on it.
var hasSSE2 = cpu.X86.HasSSE2

// accelerated reports whether FindInt32 can take the assembly path.
const accelerated = true

// findInt32SSE2 scans the len(haystack)/4 full groups of haystack, four lanes
// at a time. It returns the index of the first match inside those groups,
// or len(haystack)&^3 if none of them matched. Tail elements are never read.
//
// Implemented in find_int32_amd64.s.
//
//go:noescape
func findInt32SSE2(haystack []int32, needle int32) int

// FindInt32 returns the index of the first instance of needle in haystack,
// or len(haystack) if needle is not present.
//
// On x86-64 the grouped scan runs in SSE2 assembly: the needle is broadcast
// into four 32-bit lanes, compared against four elements with PCMPEQD,
// reduced with PMOVMSKB and located with BSF. The len%4 tail is finished
// with a scalar loop, so the result is always identical to a plain
// left-to-right scan.
//
// Example:
//
//	values := []int32{5, 68, 31, 42}
//	pos := simd.FindInt32(values, 42) // 3
//	pos = simd.FindInt32(values, 7)   // 4 (not found)
func FindInt32(haystack []int32, needle int32) int {
	if len(haystack) == 0 {
		return 0
	}

	// Below one vector the grouped loop would not run at all.
	if !hasSSE2 || len(haystack) < lanes {
		return findInt32Generic(haystack, needle)
	}

	grouped := len(haystack) &^ (lanes - 1)
	if pos := findInt32SSE2(haystack, needle); pos < grouped {
		return pos
	}

	return scanTail(haystack, needle, grouped)
}
