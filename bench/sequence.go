package bench

import "math/rand/v2"

// Ordered returns the sequence 1..n.
func Ordered(n int) []int32 {
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(i + 1)
	}
	return values
}

// keyPicker chooses keys for one sequence. Its random source is seeded with
// the sequence length and lives only as long as the picker.
type keyPicker struct {
	mode KeyMode
	rng  *rand.Rand
}

func newKeyPicker(mode KeyMode, n int) *keyPicker {
	return &keyPicker{
		mode: mode,
		rng:  rand.New(rand.NewPCG(uint64(n), 0)),
	}
}

// next returns the next key for haystack, which must be non-empty.
func (p *keyPicker) next(haystack []int32) int32 {
	switch p.mode {
	case KeyRandom:
		return int32(p.rng.IntN(len(haystack)))
	case KeyMissing:
		return 0
	default:
		return haystack[len(haystack)-1]
	}
}
