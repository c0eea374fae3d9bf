// Package memview exposes the raw in-memory byte representation of Go
// values, and can follow one guarded step of pointer indirection for
// values whose layout begins with a machine-word address (notably
// string and slice headers).
//
// Every operation copies: the returned Snapshot is owned by the caller
// and shares no storage with the inspected value. The package holds no
// state, performs no I/O, and introduces no synchronization; concurrent
// calls on independent values are race-free by construction.
//
// The single unchecked memory access lives in readMemory. Everything a
// Follow variant does funnels through it, so that one function is the
// whole trust boundary: an address read from a value's first word is
// never validated, and following a word that is not a live address is
// undefined behavior the caller must rule out.
package memview
