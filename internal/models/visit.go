// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Visit is one recorded page view. The browser receives VisitorID when the
// view is recorded and sends it back later with the time-on-page update.
type Visit struct {
	ID        int64     `json:"id"`
	VisitorID uuid.UUID `json:"visitor_id"`
	PageURL   string    `json:"page_url"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Device    string    `json:"device"` // "desktop", "mobile", "tablet"
	Bot       bool      `json:"bot"`
	Duration  int       `json:"duration"` // seconds on page, 0 until updated
	CreatedAt time.Time `json:"created_at"`
}

// VisitStats is a rollup over a period of recorded visits.
type VisitStats struct {
	UniqueVisitors int     `json:"unique_visitors"`
	TotalVisits    int     `json:"total_visits"`
	AvgDuration    float64 `json:"avg_duration"` // seconds, over visits with a duration
}

// VisitBucket is one point of a bucketed visit series.
type VisitBucket struct {
	Start          time.Time `json:"start"`
	TotalVisits    int       `json:"total_visits"`
	UniqueVisitors int       `json:"unique_visitors"`
}
