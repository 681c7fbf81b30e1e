package simd

import (
	"encoding/binary"
	"fmt"
	"slices"
	"testing"
)

// stdIndex is the reference result: slices.Index with the not-found
// sentinel mapped to len(haystack).
func stdIndex(haystack []int32, needle int32) int {
	if i := slices.Index(haystack, needle); i >= 0 {
		return i
	}
	return len(haystack)
}

// implementations lists every code path reachable on this platform.
var implementations = []struct {
	name string
	fn   func([]int32, int32) int
}{
	{"FindInt32", FindInt32},
	{"generic", findInt32Generic},
}

// TestFindInt32Basic tests basic functionality and edge cases
func TestFindInt32Basic(t *testing.T) {
	nine := []int32{4, 8, 16, 32, 64, 128, 256, 512, 1024}

	tests := []struct {
		name     string
		haystack []int32
		needle   int32
		want     int
	}{
		// Empty and single element
		{"nil_haystack", nil, 42, 0},
		{"empty_haystack", []int32{}, 42, 0},
		{"single_match", []int32{42}, 42, 0},
		{"single_no_match", []int32{31}, 42, 1},

		// Shorter than one vector
		{"two_second", []int32{31, 42}, 42, 1},
		{"two_duplicates", []int32{42, 42}, 42, 0},
		{"three_last", []int32{68, 31, 42}, 42, 2},
		{"three_first_of_two", []int32{42, 68, 42}, 42, 0},

		// Exactly one vector
		{"four_last_lane", []int32{5, 68, 31, 42}, 42, 3},
		{"four_lane_two", []int32{5, 68, 42, 31}, 42, 2},
		{"four_lane_one", []int32{5, 42, 68, 31}, 42, 1},
		{"four_all_same", []int32{42, 42, 42, 42}, 42, 0},
		{"four_not_found", []int32{5, 68, 31, 41}, 42, 4},

		// One vector plus a one element tail
		{"nine_first", nine, 4, 0},
		{"nine_end_of_group", nine, 32, 3},
		{"nine_second_group", nine, 64, 4},
		{"nine_tail", nine, 1024, 8},
		{"nine_not_found", nine, 2048, 9},

		// Sign and extreme values
		{"negative", []int32{1, -1, 2, -2, 3}, -2, 3},
		{"min_int32", []int32{0, 0, 0, 0, -1 << 31}, -1 << 31, 4},
		{"max_int32", []int32{0, 1<<31 - 1, 0, 0}, 1<<31 - 1, 1},
		{"zero_needle", []int32{1, 2, 3, 0, 0}, 0, 3},
		{"minus_one_all_ones", []int32{-1, -1, -1, -1}, -1, 0},
	}

	for _, impl := range implementations {
		for _, tt := range tests {
			t.Run(impl.name+"/"+tt.name, func(t *testing.T) {
				got := impl.fn(tt.haystack, tt.needle)
				if got != tt.want {
					t.Errorf("%s(%v, %d) = %d, want %d", impl.name, tt.haystack, tt.needle, got, tt.want)
				}

				// Verify against stdlib
				if std := stdIndex(tt.haystack, tt.needle); got != std {
					t.Errorf("%s != stdlib: got %d, stdlib %d (haystack=%v, needle=%d)",
						impl.name, got, std, tt.haystack, tt.needle)
				}
			})
		}
	}
}

// TestFindInt32Sizes tests every length around the vector and tail boundaries.
func TestFindInt32Sizes(t *testing.T) {
	sizes := []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9, // small sizes
		15, 16, 17, // 16-element boundary
		31, 32, 33,
		63, 64, 65,
		255, 256, 257,
		1023, 1024, 1025,
		4095, 4096, 4097,
	}

	for _, impl := range implementations {
		for _, size := range sizes {
			haystack := make([]int32, size)
			for i := range haystack {
				haystack[i] = int32(i + 1)
			}

			t.Run(fmt.Sprintf("%s/size_%d_every_position", impl.name, size), func(t *testing.T) {
				for want, v := range haystack {
					if got := impl.fn(haystack, v); got != want {
						t.Fatalf("size %d, needle %d: got %d, want %d", size, v, got, want)
					}
				}
			})

			t.Run(fmt.Sprintf("%s/size_%d_not_found", impl.name, size), func(t *testing.T) {
				if got := impl.fn(haystack, 0); got != size {
					t.Errorf("size %d: got %d, want %d", size, got, size)
				}
			})

			t.Run(fmt.Sprintf("%s/size_%d_duplicate_in_tail", impl.name, size), func(t *testing.T) {
				dup := slices.Clone(haystack)
				dup[size-1] = dup[0]
				if got := impl.fn(dup, dup[0]); got != 0 {
					t.Errorf("size %d: got %d, want first occurrence 0", size, got)
				}
			})
		}
	}
}

// TestFindInt32SubsliceOffsets checks that loads never depend on alignment
// by searching windows that start at every offset of a larger buffer.
func TestFindInt32SubsliceOffsets(t *testing.T) {
	buf := make([]int32, 80)
	for i := range buf {
		buf[i] = int32(i * 3)
	}

	for _, impl := range implementations {
		for off := 0; off < 8; off++ {
			for end := off + 1; end <= len(buf); end++ {
				window := buf[off:end]
				for _, needle := range []int32{buf[off], buf[end-1], -1} {
					got := impl.fn(window, needle)
					if want := stdIndex(window, needle); got != want {
						t.Fatalf("%s: window [%d:%d], needle %d: got %d, want %d",
							impl.name, off, end, needle, got, want)
					}
				}
			}
		}
	}
}

// TestFindInt32TailIgnoresCapacity makes sure elements beyond len are never
// reported even when they match.
func TestFindInt32TailIgnoresCapacity(t *testing.T) {
	backing := []int32{1, 2, 3, 4, 5, 6, 42, 42}
	for _, impl := range implementations {
		for n := 0; n <= 6; n++ {
			if got := impl.fn(backing[:n], 42); got != n {
				t.Errorf("%s: len %d: got %d, want %d", impl.name, n, got, n)
			}
		}
	}
}

// FuzzFindInt32 compares both paths against slices.Index on arbitrary input.
func FuzzFindInt32(f *testing.F) {
	f.Add([]byte{}, int32(42))
	f.Add([]byte{42, 0, 0, 0}, int32(42))
	f.Add([]byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 4, 0, 0, 0, 42, 0, 0, 0}, int32(42))

	f.Fuzz(func(t *testing.T, data []byte, needle int32) {
		haystack := make([]int32, len(data)/4)
		for i := range haystack {
			haystack[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
		}

		want := stdIndex(haystack, needle)
		for _, impl := range implementations {
			if got := impl.fn(haystack, needle); got != want {
				t.Fatalf("%s(%v, %d) = %d, want %d", impl.name, haystack, needle, got, want)
			}
		}
	})
}

func BenchmarkFindInt32(b *testing.B) {
	sizes := []int{4, 16, 256, 4096, 65536, 1 << 20}

	for _, size := range sizes {
		haystack := make([]int32, size)
		for i := range haystack {
			haystack[i] = int32(i + 1)
		}
		needle := haystack[size-1] // needle at end (worst case for fair comparison)

		b.Run(fmt.Sprintf("simd_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = FindInt32(haystack, needle)
			}
		})

		b.Run(fmt.Sprintf("generic_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = findInt32Generic(haystack, needle)
			}
		})

		b.Run(fmt.Sprintf("stdlib_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = slices.Index(haystack, needle)
			}
		})
	}
}
