// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package analytics records page-view events and computes the dashboard
// rollups. Recording is fire-and-forget from the browser: the visit insert
// issues a visitor id that a later beacon uses to report time on page.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mileusna/useragent"

	"foliopress/internal/models"
	"foliopress/internal/store"
)

// Service wraps the visit store with user-agent parsing and rollup math.
type Service struct {
	visits *store.VisitStore
}

// New creates the analytics service.
func New(visits *store.VisitStore) *Service {
	return &Service{visits: visits}
}

// Record parses the User-Agent header, stores the visit, and returns it with
// the freshly issued visitor id.
func (s *Service) Record(ctx context.Context, pageURL, rawUA string) (*models.Visit, error) {
	ua := useragent.Parse(rawUA)

	device := "desktop"
	switch {
	case ua.Mobile:
		device = "mobile"
	case ua.Tablet:
		device = "tablet"
	}

	visit := &models.Visit{
		VisitorID: uuid.New(),
		PageURL:   pageURL,
		Browser:   ua.Name,
		OS:        ua.OS,
		Device:    device,
		Bot:       ua.Bot,
	}
	return s.visits.Record(ctx, visit)
}

// UpdateDuration applies the time-on-page beacon for an issued visitor id.
// Unknown ids are silently accepted — the beacon must never block a page.
func (s *Service) UpdateDuration(ctx context.Context, visitorID uuid.UUID, seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("negative duration %d", seconds)
	}
	return s.visits.UpdateDuration(ctx, visitorID, seconds)
}

// Overview is the dashboard rollup: the current period, the prior comparable
// period, percent changes between them, and a bucketed series.
type Overview struct {
	Current  models.VisitStats    `json:"current"`
	Previous models.VisitStats    `json:"previous"`
	Change   OverviewChange       `json:"change"`
	Series   []models.VisitBucket `json:"series"`
	Bucket   string               `json:"bucket"`
	Days     int                  `json:"days"`
}

// OverviewChange holds percent changes vs the prior comparable period.
type OverviewChange struct {
	UniqueVisitors float64 `json:"unique_visitors"`
	TotalVisits    float64 `json:"total_visits"`
	AvgDuration    float64 `json:"avg_duration"`
}

// Overview computes rollups for the trailing window of the given length in
// days, bucketed by "day", "week", or "month", compared against the window
// immediately before it.
func (s *Service) Overview(ctx context.Context, bucket string, days int) (*Overview, error) {
	if days <= 0 {
		days = 30
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)
	prevFrom := from.AddDate(0, 0, -days)

	current, err := s.visits.StatsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	previous, err := s.visits.StatsBetween(ctx, prevFrom, from)
	if err != nil {
		return nil, err
	}
	series, err := s.visits.Series(ctx, bucket, from, to)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Current:  *current,
		Previous: *previous,
		Change: OverviewChange{
			UniqueVisitors: PercentChange(float64(current.UniqueVisitors), float64(previous.UniqueVisitors)),
			TotalVisits:    PercentChange(float64(current.TotalVisits), float64(previous.TotalVisits)),
			AvgDuration:    PercentChange(current.AvgDuration, previous.AvgDuration),
		},
		Series: series,
		Bucket: bucket,
		Days:   days,
	}, nil
}

// PercentChange computes (current-previous)/previous*100. A zero previous
// period is defined as zero change, never a division by zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
