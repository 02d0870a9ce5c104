//go:build !arm64

package aesmodes

import "golang.org/x/sys/cpu"

// SupportsHardwareAES reports whether the CPU has AES instructions. The
// cipher always uses the portable table implementation; this is for
// callers choosing between this package and an accelerated one.
func SupportsHardwareAES() bool {
	return cpu.X86.HasAES || cpu.S390X.HasAES
}
