package hexfmt

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestDumpGolden(t *testing.T) {
	g := newGoldie(t)

	g.Assert(t, "dump_hello", []byte(Dump([]byte("Hello, world!"))))

	counting := make([]byte, 32)
	for i := range counting {
		counting[i] = byte(i)
	}
	g.Assert(t, "dump_counting", []byte(Dump(counting)))
}

func TestDumpWidthGolden(t *testing.T) {
	g := newGoldie(t)

	narrow := make([]byte, 10)
	for i := range narrow {
		narrow[i] = byte(i)
	}
	g.Assert(t, "dump_narrow", []byte(DumpWidth(narrow, 8)))
}

func TestWordsGolden(t *testing.T) {
	if wordSize != 8 || binary.NativeEndian.Uint16([]byte{1, 0}) != 1 {
		t.Skip("golden fixture assumes a 64-bit little-endian platform")
	}

	g := newGoldie(t)

	header := make([]byte, 20)
	for i := range header {
		header[i] = byte(i + 1)
	}
	g.Assert(t, "words_header", []byte(Words(header)))
}

func TestDumpEmpty(t *testing.T) {
	assert.Empty(t, Dump(nil))
	assert.Empty(t, Dump([]byte{}))
}

func TestDumpLineCount(t *testing.T) {
	b := make([]byte, 33)

	lines := strings.Split(strings.TrimRight(Dump(b), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[2], "00000020  "))
}

func TestDumpNonPrintableGutter(t *testing.T) {
	out := Dump([]byte{0x00, 'A', 0x7f, 'z'})

	assert.Contains(t, out, "|.A.z|")
}

func TestDumpWidthFallback(t *testing.T) {
	b := []byte{1, 2, 3}

	assert.Equal(t, Dump(b), DumpWidth(b, 0))
	assert.Equal(t, Dump(b), DumpWidth(b, -4))
}

func TestWordsTailOnly(t *testing.T) {
	out := Words([]byte{0xaa, 0xbb})

	assert.Equal(t, "tail    = aa bb\n", out)
}

func TestWordsEmpty(t *testing.T) {
	assert.Empty(t, Words(nil))
}
