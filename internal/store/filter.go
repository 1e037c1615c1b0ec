// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the page size applied when the request omits one.
	DefaultLimit = 20

	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
)

// Filter is the ephemeral list state for one request: free-text search,
// sort field + direction, and pagination. It is owned by the caller and
// never persisted.
type Filter struct {
	Search string
	Sort   string
	Order  string // "asc" or "desc"
	Page   int    // 1-based
	Limit  int
}

// ParseFilter extracts a Filter from request query parameters, normalizing
// out-of-range values rather than rejecting them.
func ParseFilter(q url.Values) Filter {
	f := Filter{
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
		Page:   1,
		Limit:  DefaultLimit,
	}

	if q.Get("order") == "asc" {
		f.Order = "asc"
	} else {
		f.Order = "desc"
	}

	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		f.Page = p
	}
	if l, err := strconv.Atoi(q.Get("limit")); err == nil && l > 0 {
		f.Limit = l
		if f.Limit > MaxLimit {
			f.Limit = MaxLimit
		}
	}

	return f
}

// Offset returns the row offset for the current page.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TotalPages computes ceil(count/limit). A zero count yields zero pages.
func TotalPages(count, limit int) int {
	if limit <= 0 || count <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}
