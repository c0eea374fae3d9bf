package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/memview/internal/report"
)

// ErrNotFound is returned when a requested report does not exist.
var ErrNotFound = errors.New("report not found")

// ListReports returns the most recent reports, newest first. Ties on
// created_at are broken by id for a deterministic order. limit <= 0
// means no limit.
func (s *Store) ListReports(ctx context.Context, limit int) ([]report.Report, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unlimited
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, target, kind, header_len, header_dump, data_len, data_dump, alloc_len, alloc_dump
		FROM reports
		ORDER BY created_at DESC, id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	reports := []report.Report{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}

// GetReport returns a single report by id, or ErrNotFound.
func (s *Store) GetReport(ctx context.Context, id uuid.UUID) (report.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, target, kind, header_len, header_dump, data_len, data_dump, alloc_len, alloc_dump
		FROM reports
		WHERE id = ?
	`, id.String())

	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return report.Report{}, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return report.Report{}, err
	}
	return r, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReport(sc scanner) (report.Report, error) {
	var (
		r         report.Report
		id        string
		createdAt string
	)
	err := sc.Scan(&id, &createdAt, &r.Target, &r.Kind, &r.HeaderLen, &r.HeaderDump, &r.DataLen, &r.DataDump, &r.AllocLen, &r.AllocDump)
	if err != nil {
		return report.Report{}, err
	}

	r.ID, err = uuid.Parse(id)
	if err != nil {
		return report.Report{}, fmt.Errorf("parse report id: %w", err)
	}
	r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return report.Report{}, fmt.Errorf("parse report timestamp: %w", err)
	}
	return r, nil
}
