package findint

import "slices"

// Library returns the index of the first element of haystack equal to key,
// or len(haystack) if there is none.
//
// It is a thin wrapper over slices.Index and serves as the baseline for
// comparing hand-written loops against the general purpose primitive.
func Library(haystack []int32, key int32) int {
	if i := slices.Index(haystack, key); i >= 0 {
		return i
	}
	return len(haystack)
}
