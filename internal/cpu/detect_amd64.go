//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads CPUID through golang.org/x/sys/cpu. FMA3 arrived
// alongside AVX2 on every shipping x86-64 core, but the flags are separate.
func detectFeaturesImpl() Features {
	return Features{
		HasFMA:       cpu.X86.HasFMA,
		HasAVX2:      cpu.X86.HasAVX2,
		Architecture: runtime.GOARCH,
	}
}
