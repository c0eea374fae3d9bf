package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/memview/internal/report"
)

// WriteReport inserts a report into the log. Uses ON CONFLICT(id)
// DO NOTHING, so writing the same report twice is a silent no-op.
func (s *Store) WriteReport(ctx context.Context, r report.Report) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports
		(id, created_at, target, kind, header_len, header_dump, data_len, data_dump, alloc_len, alloc_dump)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.ID.String(),
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
		r.Target,
		r.Kind,
		r.HeaderLen,
		r.HeaderDump,
		r.DataLen,
		r.DataDump,
		r.AllocLen,
		r.AllocDump,
	)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
