package simd

import (
	"strings"
	"testing"
)

func TestLoadInt32x4(t *testing.T) {
	s := []int32{1, 2, 3, 4, 5}
	if got, want := LoadInt32x4(s), (Int32x4{1, 2, 3, 4}); got != want {
		t.Errorf("LoadInt32x4 = %v, want %v", got, want)
	}
	if got, want := LoadInt32x4(s[1:]), (Int32x4{2, 3, 4, 5}); got != want {
		t.Errorf("LoadInt32x4(s[1:]) = %v, want %v", got, want)
	}
}

func TestLoadInt32x4ShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LoadInt32x4 on 3 elements did not panic")
		}
	}()
	_ = LoadInt32x4([]int32{1, 2, 3})
}

func TestEqual(t *testing.T) {
	key := BroadcastInt32x4(7)
	got := key.Equal(Int32x4{7, 0, 7, -7})
	want := Mask32x4{0xFFFFFFFF, 0, 0xFFFFFFFF, 0}
	if got != want {
		t.Errorf("Equal = %#x, want %#x", got, want)
	}
}

func TestMoveMask(t *testing.T) {
	tests := []struct {
		name string
		mask Mask32x4
		want uint32
	}{
		{"none", Mask32x4{}, 0},
		{"lane_0", Mask32x4{0xFFFFFFFF, 0, 0, 0}, 0x000F},
		{"lane_1", Mask32x4{0, 0xFFFFFFFF, 0, 0}, 0x00F0},
		{"lane_2", Mask32x4{0, 0, 0xFFFFFFFF, 0}, 0x0F00},
		{"lane_3", Mask32x4{0, 0, 0, 0xFFFFFFFF}, 0xF000},
		{"all", Mask32x4{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}, 0xFFFF},
		// Only byte sign bits count.
		{"byte_msbs", Mask32x4{0x80000080, 0x7F7F7F7F, 0, 0x00800000}, 0x4009},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.MoveMask(); got != tt.want {
				t.Errorf("MoveMask() = %#04x, want %#04x", got, tt.want)
			}
		})
	}
}

func TestDetectFeatures(t *testing.T) {
	f := DetectFeatures()
	if f.Architecture == "" {
		t.Fatal("Architecture is empty")
	}
	if f.Accelerated && !f.HasSSE2 {
		t.Error("Accelerated without SSE2")
	}
	if !strings.Contains(f.String(), "path="+f.Path()) {
		t.Errorf("String() = %q does not name path %q", f.String(), f.Path())
	}
}
