package findint

// unrollFactor is the number of elements Unrolled8 checks per iteration.
const unrollFactor = 8

// Unrolled8 returns the index of the first element of haystack equal to key,
// or len(haystack) if there is none.
//
// The main loop checks eight elements per iteration, in ascending order, so
// the first match inside a block is still the one reported. The remaining
// len(haystack)%8 elements are scanned one at a time; for inputs shorter
// than eight elements only that tail loop runs.
func Unrolled8(haystack []int32, key int32) int {
	n := len(haystack)
	i := 0

	for ; n-i >= unrollFactor; i += unrollFactor {
		// Re-slicing once lets the compiler drop the per-element bounds checks.
		b := haystack[i : i+unrollFactor : i+unrollFactor]
		if b[0] == key {
			return i
		}
		if b[1] == key {
			return i + 1
		}
		if b[2] == key {
			return i + 2
		}
		if b[3] == key {
			return i + 3
		}
		if b[4] == key {
			return i + 4
		}
		if b[5] == key {
			return i + 5
		}
		if b[6] == key {
			return i + 6
		}
		if b[7] == key {
			return i + 7
		}
	}

	for ; i < n; i++ {
		if haystack[i] == key {
			return i
		}
	}

	return n
}
