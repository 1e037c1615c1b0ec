// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"foliopress/internal/analytics"
	"foliopress/internal/cache"
)

// Analytics serves the public visit-tracking endpoints and the admin
// dashboard rollup.
type Analytics struct {
	service *analytics.Service
	rollups *cache.RollupCache
}

// NewAnalytics creates the analytics handler group. rollups may be nil, in
// which case every dashboard load recomputes.
func NewAnalytics(service *analytics.Service, rollups *cache.RollupCache) *Analytics {
	return &Analytics{service: service, rollups: rollups}
}

// RecordVisit ingests one page view from the public site and returns the
// visitor id the browser should echo back with its duration beacon.
func (a *Analytics) RecordVisit(w http.ResponseWriter, r *http.Request) {
	var in struct {
		PageURL string `json:"page_url"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if in.PageURL == "" {
		respondError(w, http.StatusBadRequest, "page_url is required")
		return
	}

	visit, err := a.service.Record(r.Context(), in.PageURL, r.UserAgent())
	if err != nil {
		respondInternal(w, "record visit", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"visitor_id": visit.VisitorID,
	})
}

// UpdateDuration applies the time-on-page beacon. Unknown visitor ids are
// accepted silently so stale beacons never error in the browser console.
func (a *Analytics) UpdateDuration(w http.ResponseWriter, r *http.Request) {
	var in struct {
		VisitorID uuid.UUID `json:"visitor_id"`
		Duration  int       `json:"duration"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if in.VisitorID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "visitor_id is required")
		return
	}

	if err := a.service.UpdateDuration(r.Context(), in.VisitorID, in.Duration); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Dashboard returns the visit rollup for the admin dashboard: current vs
// previous period stats and a bucketed series. Results are cached briefly
// so dashboard refreshes don't hammer the aggregate queries.
func (a *Analytics) Dashboard(w http.ResponseWriter, r *http.Request) {
	bucket := r.URL.Query().Get("bucket")
	switch bucket {
	case "", "day":
		bucket = "day"
	case "week", "month":
	default:
		respondError(w, http.StatusBadRequest, "bucket must be day, week, or month")
		return
	}

	days := 30
	if d, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && d > 0 && d <= 365 {
		days = d
	}

	cacheKey := fmt.Sprintf("dashboard:%s:%d", bucket, days)
	if a.rollups != nil {
		var cached analytics.Overview
		if a.rollups.Get(r.Context(), cacheKey, &cached) {
			respondJSON(w, http.StatusOK, &cached)
			return
		}
	}

	overview, err := a.service.Overview(r.Context(), bucket, days)
	if err != nil {
		respondInternal(w, "dashboard rollup", err)
		return
	}

	if a.rollups != nil {
		a.rollups.Set(r.Context(), cacheKey, overview)
	}

	respondJSON(w, http.StatusOK, overview)
}
