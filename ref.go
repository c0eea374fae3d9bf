package memview

import "unsafe"

// wordSize is the width of one machine word (one pointer) in bytes.
const wordSize = unsafe.Sizeof(uintptr(0))

// Ref is a borrowed reference to a value's raw memory. It does not own
// the value: the caller must keep the value alive and unmoved for the
// duration of any call on the Ref. A Ref is never retained between
// calls and holds no state beyond the address and size it covers.
type Ref struct {
	ptr  unsafe.Pointer
	size uintptr
}

// Of returns a Ref covering the complete in-memory representation of
// *v, padding bytes included. The size is the static size of T.
func Of[T any](v *T) Ref {
	return Ref{ptr: unsafe.Pointer(v), size: unsafe.Sizeof(*v)}
}

// At returns a Ref for an explicit address and length. The caller
// asserts that size bytes starting at ptr are allocated and readable.
func At(ptr unsafe.Pointer, size uintptr) Ref {
	return Ref{ptr: ptr, size: size}
}

// Size returns the number of bytes the Ref covers.
func (r Ref) Size() uintptr {
	return r.size
}

// Addr returns the address the Ref points at.
func (r Ref) Addr() uintptr {
	return uintptr(r.ptr)
}

// Bytes copies the referenced memory into an owned Snapshot, preserving
// byte order and padding exactly as laid out at the instant of the
// call. Mutating the value afterwards never changes the snapshot.
//
// Given a live reference to an initialized value, Bytes cannot fail.
func (r Ref) Bytes() Snapshot {
	return Snapshot{b: readMemory(uintptr(r.ptr), r.size)}
}

// readMemory copies n bytes starting at addr into a fresh slice.
//
// This is the only unchecked memory access in the package. addr is not
// validated: reading n bytes at an address that is not allocated and
// readable for the whole call is undefined behavior. Every operation
// that touches raw memory funnels through here.
//
// A zero-length read returns an empty slice without dereferencing addr.
func readMemory(addr, n uintptr) []byte {
	if n == 0 {
		return []byte{}
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
	out := make([]byte, n)
	copy(out, src)
	return out
}
