// Package report turns materialized sample values into persistable
// inspection records: what was inspected, when, and the rendered
// snapshots.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/roach88/memview/internal/hexfmt"
	"github.com/roach88/memview/internal/sample"
)

// Report records one inspection.
type Report struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Target     string    `json:"target"`
	Kind       string    `json:"kind"`
	HeaderLen  int       `json:"header_len"`
	HeaderDump string    `json:"header_dump"`
	DataLen    int       `json:"data_len"`
	DataDump   string    `json:"data_dump,omitempty"`
	AllocLen   int       `json:"alloc_len,omitempty"`
	AllocDump  string    `json:"alloc_dump,omitempty"`
}

// New builds a report for a materialized sample value. The header is
// rendered word-by-word (address, length, capacity read naturally that
// way); followed data is rendered as a hexdump.
func New(v *sample.Value) Report {
	r := Report{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Target:     v.Name,
		Kind:       string(v.Kind),
		HeaderLen:  v.Header.Len(),
		HeaderDump: hexfmt.Words(v.Header.Bytes()),
	}
	if v.Indirect {
		r.DataLen = v.Data.Len()
		r.DataDump = hexfmt.Dump(v.Data.Bytes())
	}
	if v.Alloc.Len() > 0 {
		r.AllocLen = v.Alloc.Len()
		r.AllocDump = hexfmt.Dump(v.Alloc.Bytes())
	}
	return r
}
