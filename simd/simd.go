// Package simd provides word-at-a-time byte scanners used by the locator's
// prefilters. The scanners process eight bytes per step with SWAR (SIMD
// Within A Register) arithmetic on uint64 words.
//
// Word scanning relies on cheap unaligned 64-bit loads. It is enabled when
// golang.org/x/sys/cpu reports a vector-capable core; elsewhere the scanners
// fall back to plain byte loops.
package simd

import "golang.org/x/sys/cpu"

var wordScan = cpu.X86.HasSSE2 ||
	cpu.ARM64.HasASIMD ||
	cpu.PPC64.IsPOWER8 ||
	cpu.S390X.HasVX

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// WordScan reports whether the word-at-a-time scanners are in use.
func WordScan() bool {
	return wordScan
}
