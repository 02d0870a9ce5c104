//go:build arm64

package aesmodes

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// SupportsHardwareAES reports whether the CPU has the ARMv8 AES
// extension. The cipher always uses the portable table implementation;
// this is for callers choosing between this package and an accelerated
// one.
func SupportsHardwareAES() bool {
	if cpu.ARM64.HasAES {
		return true
	}
	// Every Apple Silicon part has AES, but feature detection can miss it.
	return runtime.GOOS == "darwin"
}
