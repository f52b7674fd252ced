//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reports arm64 features. FMADD is part of the ARMv8 base
// instruction set, so FMA is always present.
func detectFeaturesImpl() Features {
	return Features{
		HasFMA:       true,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
