// Package check runs the correctness battery that every search variant must
// pass.
//
// A Case is a (haystack, key, expected index) triple. The Runner executes
// every case against every variant, never stopping early, and reports each
// disagreement with enough context to reproduce it: variant, expected and
// actual index, key and the full sequence.
package check

import "fmt"

// Case is one correctness check.
type Case struct {
	Name     string
	Haystack []int32
	Key      int32
	Want     int
}

// pow2Nine is the nine element sequence used to exercise the tails of both
// the 8-wide unrolled loop (9%8 == 1) and the 4-lane vector loop (9%4 == 1).
var pow2Nine = []int32{4, 8, 16, 32, 64, 128, 256, 512, 1024}

// Battery returns the fixed set of hand-written cases: the empty sequence,
// every placement of the key in sequences of one to four elements, and each
// element of a nine element sequence plus a missing key.
func Battery() []Case {
	cases := []Case{
		{Name: "empty", Haystack: nil, Key: 42, Want: 0},

		{Name: "one", Haystack: []int32{42}, Key: 42, Want: 0},

		{Name: "two/last", Haystack: []int32{31, 42}, Key: 42, Want: 1},
		{Name: "two/first", Haystack: []int32{42, 31}, Key: 42, Want: 0},
		{Name: "two/both", Haystack: []int32{42, 42}, Key: 42, Want: 0},

		{Name: "three/last", Haystack: []int32{68, 31, 42}, Key: 42, Want: 2},
		{Name: "three/middle", Haystack: []int32{68, 42, 31}, Key: 42, Want: 1},
		{Name: "three/first", Haystack: []int32{42, 68, 31}, Key: 42, Want: 0},
		{Name: "three/first_and_last", Haystack: []int32{42, 68, 42}, Key: 42, Want: 0},
		{Name: "three/all", Haystack: []int32{42, 42, 42}, Key: 42, Want: 0},

		{Name: "four/last", Haystack: []int32{5, 68, 31, 42}, Key: 42, Want: 3},
		{Name: "four/third", Haystack: []int32{5, 68, 42, 31}, Key: 42, Want: 2},
		{Name: "four/second", Haystack: []int32{5, 42, 68, 31}, Key: 42, Want: 1},
		{Name: "four/first", Haystack: []int32{42, 5, 68, 31}, Key: 42, Want: 0},
		{Name: "four/first_and_last", Haystack: []int32{42, 5, 68, 42}, Key: 42, Want: 0},
		{Name: "four/three_of_four", Haystack: []int32{42, 5, 42, 42}, Key: 42, Want: 0},
		{Name: "four/all", Haystack: []int32{42, 42, 42, 42}, Key: 42, Want: 0},
	}

	for i, v := range pow2Nine {
		cases = append(cases, Case{
			Name:     fmt.Sprintf("nine/%d", v),
			Haystack: pow2Nine,
			Key:      v,
			Want:     i,
		})
	}
	cases = append(cases, Case{Name: "nine/missing", Haystack: pow2Nine, Key: 2048, Want: len(pow2Nine)})

	return cases
}

// Boundary generates cases for every length from 0 to maxLen over the
// sequence 1..n: key at the first index, key at the last index, key absent,
// and a duplicate of the middle element placed at the end. Lengths that are
// not multiples of 4 or 8 exercise the tail loops of the blocked variants;
// for those, the key also appears in the last full block of 4 (or 8) with a
// second copy in the tail.
func Boundary(maxLen int) []Case {
	var cases []Case
	for n := 0; n <= maxLen; n++ {
		seq := make([]int32, n)
		for i := range seq {
			seq[i] = int32(i + 1)
		}

		cases = append(cases, Case{Name: fmt.Sprintf("len%d/missing", n), Haystack: seq, Key: 0, Want: n})
		if n == 0 {
			continue
		}
		cases = append(cases,
			Case{Name: fmt.Sprintf("len%d/first", n), Haystack: seq, Key: 1, Want: 0},
			Case{Name: fmt.Sprintf("len%d/last", n), Haystack: seq, Key: int32(n), Want: n - 1},
		)

		if n >= 2 {
			mid := n / 2
			dup := make([]int32, n)
			copy(dup, seq)
			dup[n-1] = dup[mid]
			cases = append(cases, Case{Name: fmt.Sprintf("len%d/duplicate", n), Haystack: dup, Key: dup[mid], Want: mid})
		}

		// First occurrence inside the last full block, duplicate in the tail.
		if full := n &^ 3; n%4 != 0 && full >= 4 {
			cases = append(cases, blockTailCase(seq, "block4", full-4))
		}
		if full := n &^ 7; n%8 != 0 && full >= 8 {
			cases = append(cases, blockTailCase(seq, "block8", full-1))
		}
	}
	return cases
}

// blockTailCase copies seq, puts seq[first] again at the last index and
// expects first.
func blockTailCase(seq []int32, block string, first int) Case {
	n := len(seq)
	dup := make([]int32, n)
	copy(dup, seq)
	dup[n-1] = dup[first]
	return Case{Name: fmt.Sprintf("len%d/%s-tail", n, block), Haystack: dup, Key: dup[first], Want: first}
}
