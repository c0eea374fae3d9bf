// Package hexfmt renders byte snapshots as deterministic text: classic
// hexdumps for backing data and word-by-word listings for headers.
// Output is a pure function of the input bytes, so it is stable across
// runs and safe to pin in golden files.
package hexfmt

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

// wordSize is the width of one machine word in bytes.
const wordSize = bits.UintSize / 8

// Dump renders b as a hexdump with 16 bytes per line: an 8-digit hex
// offset, two groups of eight hex byte columns, and a printable-ASCII
// gutter. Empty input renders as the empty string.
func Dump(b []byte) string {
	return DumpWidth(b, 16)
}

// DumpWidth is Dump with a configurable number of bytes per line. An
// extra space separates each group of eight columns. perLine values
// below one fall back to 16.
func DumpWidth(b []byte, perLine int) string {
	if perLine < 1 {
		perLine = 16
	}

	var sb strings.Builder
	for off := 0; off < len(b); off += perLine {
		end := off + perLine
		if end > len(b) {
			end = len(b)
		}
		line := b[off:end]

		fmt.Fprintf(&sb, "%08x  ", off)
		for i := 0; i < perLine; i++ {
			if i > 0 && i%8 == 0 {
				sb.WriteByte(' ')
			}
			if i < len(line) {
				fmt.Fprintf(&sb, "%02x ", line[i])
			} else {
				sb.WriteString("   ")
			}
		}

		sb.WriteString(" |")
		for _, c := range line {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			sb.WriteByte(c)
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// Words renders b one machine word per line in native byte order,
// which is how header snapshots read best: word zero is the inner
// address, the following words are lengths and capacities. Bytes past
// the last full word are listed on a trailing tail line.
func Words(b []byte) string {
	var sb strings.Builder

	n := len(b) / wordSize
	for i := 0; i < n; i++ {
		var w uint64
		if wordSize == 8 {
			w = binary.NativeEndian.Uint64(b[i*wordSize:])
		} else {
			w = uint64(binary.NativeEndian.Uint32(b[i*wordSize:]))
		}
		fmt.Fprintf(&sb, "word[%d] = 0x%0*x\n", i, wordSize*2, w)
	}

	if tail := b[n*wordSize:]; len(tail) > 0 {
		fmt.Fprintf(&sb, "tail    = % x\n", tail)
	}
	return sb.String()
}
