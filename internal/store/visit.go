// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"foliopress/internal/models"
)

// VisitStore records page views and computes dashboard rollups.
type VisitStore struct {
	db *sql.DB
}

// NewVisitStore returns a VisitStore backed by the given database.
func NewVisitStore(db *sql.DB) *VisitStore {
	return &VisitStore{db: db}
}

// Record inserts a page-view row and returns it with the generated id.
func (s *VisitStore) Record(ctx context.Context, v *models.Visit) (*models.Visit, error) {
	stored := &models.Visit{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO visits (visitor_id, page_url, browser, os, device, bot, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
		RETURNING id, visitor_id, page_url, browser, os, device, bot, duration, created_at
	`, v.VisitorID, v.PageURL, v.Browser, v.OS, v.Device, v.Bot, time.Now().UTC()).Scan(
		&stored.ID, &stored.VisitorID, &stored.PageURL, &stored.Browser,
		&stored.OS, &stored.Device, &stored.Bot, &stored.Duration, &stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("record visit: %w", err)
	}
	return stored, nil
}

// UpdateDuration sets the time-on-page for a previously issued visitor id.
// An unknown id is a no-op, not an error — a stale beacon must never block
// the page that sent it.
func (s *VisitStore) UpdateDuration(ctx context.Context, visitorID uuid.UUID, seconds int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE visits SET duration = $1 WHERE visitor_id = $2
	`, seconds, visitorID)
	if err != nil {
		return fmt.Errorf("update visit duration: %w", err)
	}
	return nil
}

// StatsBetween computes rollup counts for visits recorded in [from, to).
// Bot traffic is excluded. Average duration considers only visits whose
// duration beacon arrived.
func (s *VisitStore) StatsBetween(ctx context.Context, from, to time.Time) (*models.VisitStats, error) {
	stats := &models.VisitStats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT visitor_id),
		       COUNT(*),
		       COALESCE(AVG(duration) FILTER (WHERE duration > 0), 0)
		FROM visits
		WHERE NOT bot AND created_at >= $1 AND created_at < $2
	`, from, to).Scan(&stats.UniqueVisitors, &stats.TotalVisits, &stats.AvgDuration)
	if err != nil {
		return nil, fmt.Errorf("visit stats: %w", err)
	}
	return stats, nil
}

// Series groups visits into date_trunc buckets ("day", "week", "month")
// over [from, to). Empty buckets are omitted.
func (s *VisitStore) Series(ctx context.Context, bucket string, from, to time.Time) ([]models.VisitBucket, error) {
	switch bucket {
	case "day", "week", "month":
	default:
		return nil, fmt.Errorf("unsupported bucket %q", bucket)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT date_trunc('%s', created_at) AS bucket,
		       COUNT(*),
		       COUNT(DISTINCT visitor_id)
		FROM visits
		WHERE NOT bot AND created_at >= $1 AND created_at < $2
		GROUP BY bucket
		ORDER BY bucket
	`, bucket), from, to)
	if err != nil {
		return nil, fmt.Errorf("visit series: %w", err)
	}
	defer rows.Close()

	buckets := []models.VisitBucket{}
	for rows.Next() {
		var b models.VisitBucket
		if err := rows.Scan(&b.Start, &b.TotalVisits, &b.UniqueVisitors); err != nil {
			return nil, fmt.Errorf("scan visit bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}
