// Package cpu reports the host floating-point features that can change how
// Go code is compiled or executed.
//
// The one that matters for pow is fused multiply-add: where the hardware has
// it, the compiler is free to contract x*y + z into a single rounding, so
// results computed on such a host are only reproducible if the code blocks
// contraction explicitly.
//
// Detection runs once on the first call to DetectFeatures and is cached.
package cpu

import (
	"sync"
)

// Features describes the floating-point capabilities of the host.
type Features struct {
	// HasFMA is true when the CPU executes fused multiply-add natively.
	HasFMA bool

	// HasAVX2 and HasNEON identify the vector units the FMA belongs to.
	HasAVX2 bool
	HasNEON bool

	// Architecture is runtime.GOARCH (e.g. "amd64", "arm64").
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the current host.
//
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasFMA reports whether the host has hardware fused multiply-add.
func HasFMA() bool {
	return DetectFeatures().HasFMA
}

// String lists the detected features, e.g. "amd64 fma avx2".
func (f Features) String() string {
	s := f.Architecture
	if s == "" {
		s = "unknown"
	}
	if f.HasFMA {
		s += " fma"
	}
	if f.HasAVX2 {
		s += " avx2"
	}
	if f.HasNEON {
		s += " neon"
	}
	return s
}

// SetForcedFeatures overrides detection with f until ResetDetection is
// called. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
