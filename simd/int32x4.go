package simd

// Int32x4 is a 128-bit vector of four int32 lanes. Lane 0 holds the element
// with the lowest index.
type Int32x4 [lanes]int32

// Mask32x4 is the result of a lane-wise comparison: every lane is either all
// ones (match) or all zeros.
type Mask32x4 [lanes]uint32

// LoadInt32x4 loads the first four elements of s into a vector.
// It panics if s has fewer than four elements.
func LoadInt32x4(s []int32) Int32x4 {
	return Int32x4(s[:lanes])
}

// BroadcastInt32x4 returns a vector with v copied into every lane.
func BroadcastInt32x4(v int32) Int32x4 {
	return Int32x4{v, v, v, v}
}

// Equal compares a and b lane by lane.
func (a Int32x4) Equal(b Int32x4) Mask32x4 {
	var m Mask32x4
	for i := range a {
		// 0 - 1 wraps to all ones
		m[i] = -b2u32(a[i] == b[i])
	}
	return m
}

// MoveMask gathers the most significant bit of every byte of m into the low
// 16 bits of the result, byte 0 of lane 0 first. A matching lane therefore
// contributes 0b1111 at bit position 4*lane, the same layout PMOVMSKB
// produces for a PCMPEQD result.
func (m Mask32x4) MoveMask() uint32 {
	var out uint32
	for i, v := range m {
		// The msb of byte b sits at bit 8b+7 and moves to bit b.
		nibble := (v>>7)&1 | (v>>14)&2 | (v>>21)&4 | (v>>28)&8
		out |= nibble << (i * laneBits)
	}
	return out
}

func b2u32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
