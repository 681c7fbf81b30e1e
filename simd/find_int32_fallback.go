//go:build !amd64 || purego

package simd

// accelerated reports whether FindInt32 can take the assembly path.
const accelerated = false

// FindInt32 returns the index of the first instance of needle in haystack,
// or len(haystack) if needle is not present.
//
// On this platform the search uses the portable Int32x4 lane model: four
// elements are compared per step and the first matching lane is located
// from the move-mask. See findInt32Generic.
func FindInt32(haystack []int32, needle int32) int {
	return findInt32Generic(haystack, needle)
}
