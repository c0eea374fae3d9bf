// Package store persists inspection reports to SQLite so catalog runs
// can be listed and compared later. The memview core stays file-free;
// persistence belongs entirely to this CLI-side layer.
package store
