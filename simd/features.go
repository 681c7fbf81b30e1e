package simd

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the CPU capabilities relevant to FindInt32 and the
// implementation it dispatches to.
type Features struct {
	Architecture string // runtime.GOARCH
	HasSSE2      bool
	HasAVX2      bool

	// Accelerated is true when FindInt32 runs the SSE2 assembly for inputs of
	// at least one vector.
	Accelerated bool
}

// DetectFeatures returns the features of the running CPU.
func DetectFeatures() Features {
	return Features{
		Architecture: runtime.GOARCH,
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		Accelerated:  accelerated && cpu.X86.HasSSE2,
	}
}

// Path names the implementation FindInt32 uses for large inputs.
func (f Features) Path() string {
	if f.Accelerated {
		return "sse2"
	}
	return "generic"
}

// String returns a one-line summary, e.g. "amd64 [sse2 avx2] path=sse2".
func (f Features) String() string {
	var exts []string
	if f.HasSSE2 {
		exts = append(exts, "sse2")
	}
	if f.HasAVX2 {
		exts = append(exts, "avx2")
	}
	return f.Architecture + " [" + strings.Join(exts, " ") + "] path=" + f.Path()
}
