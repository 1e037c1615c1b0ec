// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"foliopress/internal/models"
)

const testPage = "/store-test-page"

func TestVisitRecordAndDuration(t *testing.T) {
	db := testDB(t)
	s := NewVisitStore(db)
	ctx := context.Background()

	t.Cleanup(func() { cleanVisits(t, db, testPage) })

	visit, err := s.Record(ctx, &models.Visit{
		VisitorID: uuid.New(),
		PageURL:   testPage,
		Browser:   "Firefox",
		OS:        "Linux",
		Device:    "desktop",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if visit.ID == 0 {
		t.Error("expected generated id")
	}
	if visit.Duration != 0 {
		t.Errorf("expected zero duration, got %d", visit.Duration)
	}

	if err := s.UpdateDuration(ctx, visit.VisitorID, 42); err != nil {
		t.Fatalf("UpdateDuration: %v", err)
	}

	var d int
	if err := db.QueryRow("SELECT duration FROM visits WHERE id = $1", visit.ID).Scan(&d); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if d != 42 {
		t.Errorf("duration: got %d, want 42", d)
	}

	// An unknown visitor id is a silent no-op.
	if err := s.UpdateDuration(ctx, uuid.New(), 10); err != nil {
		t.Errorf("UpdateDuration unknown id: %v", err)
	}
}

func TestVisitStatsExcludeBots(t *testing.T) {
	db := testDB(t)
	s := NewVisitStore(db)
	ctx := context.Background()

	t.Cleanup(func() { cleanVisits(t, db, testPage) })

	human := uuid.New()
	if _, err := s.Record(ctx, &models.Visit{VisitorID: human, PageURL: testPage, Device: "desktop"}); err != nil {
		t.Fatalf("Record human: %v", err)
	}
	if _, err := s.Record(ctx, &models.Visit{VisitorID: human, PageURL: testPage, Device: "desktop"}); err != nil {
		t.Fatalf("Record human again: %v", err)
	}
	if _, err := s.Record(ctx, &models.Visit{VisitorID: uuid.New(), PageURL: testPage, Device: "desktop", Bot: true}); err != nil {
		t.Fatalf("Record bot: %v", err)
	}

	from := time.Now().UTC().Add(-time.Hour)
	to := time.Now().UTC().Add(time.Hour)

	stats, err := s.StatsBetween(ctx, from, to)
	if err != nil {
		t.Fatalf("StatsBetween: %v", err)
	}
	if stats.TotalVisits < 2 {
		t.Errorf("expected at least 2 visits, got %d", stats.TotalVisits)
	}

	var botVisible int
	db.QueryRow(`
		SELECT COUNT(*) FROM visits
		WHERE bot AND page_url = $1 AND created_at >= $2 AND created_at < $3
	`, testPage, from, to).Scan(&botVisible)
	if botVisible == 0 {
		t.Fatal("bot row should exist in the table")
	}

	series, err := s.Series(ctx, "day", from, to)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(series) == 0 {
		t.Error("expected at least one bucket")
	}

	// Unsupported bucket names are rejected before touching SQL.
	if _, err := s.Series(ctx, "hour; DROP TABLE visits", from, to); err == nil {
		t.Error("expected error for unsupported bucket")
	}
}
