package memview

import (
	"bytes"
	"encoding/binary"
)

// Snapshot is an owned, immutable copy of a value's raw bytes at a
// point in time. It shares no storage with the value it was taken from
// and remains valid after that value is mutated or freed.
type Snapshot struct {
	b []byte
}

// Len returns the snapshot's length in bytes.
func (s Snapshot) Len() int {
	return len(s.b)
}

// Bytes returns a copy of the snapshot's bytes. The snapshot itself is
// never aliased, so callers may mutate the result freely.
func (s Snapshot) Bytes() []byte {
	return cloneBytes(s.b)
}

// String returns the snapshot's bytes as a string.
func (s Snapshot) String() string {
	return string(s.b)
}

// Word returns the i-th machine word of the snapshot, decoded in the
// platform's native byte order. It fails with a SizeError when i is
// negative or the snapshot does not contain i+1 full words.
func (s Snapshot) Word(i int) (uintptr, error) {
	if i < 0 {
		return 0, &SizeError{Size: uintptr(len(s.b)), Need: wordSize}
	}
	need := uintptr(i+1) * wordSize
	if uintptr(len(s.b)) < need {
		return 0, &SizeError{Size: uintptr(len(s.b)), Need: need}
	}
	start := uintptr(i) * wordSize
	if wordSize == 8 {
		return uintptr(binary.NativeEndian.Uint64(s.b[start:])), nil
	}
	return uintptr(binary.NativeEndian.Uint32(s.b[start:])), nil
}

// Equal reports whether two snapshots hold identical bytes.
func (s Snapshot) Equal(o Snapshot) bool {
	return bytes.Equal(s.b, o.b)
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
