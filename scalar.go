package findint

// Scalar returns the index of the first element of haystack equal to key,
// or len(haystack) if there is none. It checks one element per iteration and
// is the reference the other implementations are compared against.
func Scalar(haystack []int32, key int32) int {
	n := len(haystack)
	for i := 0; i < n; i++ {
		if haystack[i] == key {
			return i
		}
	}
	return n
}
