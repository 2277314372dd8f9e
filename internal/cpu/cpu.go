// Package cpu reports the processor features of the running machine.
//
// The transforms are portable Go; the feature set is recorded alongside
// benchmark results so timings from different machines can be compared.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities of the current process.
type Features struct {
	HasSSE2      bool
	HasSSE41     bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	HasSVE       bool
	Architecture string
	CPUs         int
}

// DetectFeatures reports the available CPU features using golang.org/x/sys/cpu.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		HasSVE:       cpu.ARM64.HasSVE,
		Architecture: runtime.GOARCH,
		CPUs:         runtime.NumCPU(),
	}
}

// Flags returns the names of the detected features in a fixed order.
func (f Features) Flags() []string {
	var flags []string

	for _, flag := range []struct {
		name string
		on   bool
	}{
		{"sse2", f.HasSSE2},
		{"sse4.1", f.HasSSE41},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"neon", f.HasNEON},
		{"sve", f.HasSVE},
	} {
		if flag.on {
			flags = append(flags, flag.name)
		}
	}

	return flags
}

// String formats the features as "arch[flag,flag,...]".
func (f Features) String() string {
	flags := f.Flags()
	if len(flags) == 0 {
		return f.Architecture + "[generic]"
	}

	return f.Architecture + "[" + strings.Join(flags, ",") + "]"
}
