// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

// PageItem is one entry in the pagination control: either a page number or
// an ellipsis gap.
type PageItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Active   bool `json:"active,omitempty"`
}

// Pagination is a purely presentational model: the caller owns the page
// state and re-requests with a different page param.
type Pagination struct {
	Current int        `json:"current"`
	Total   int        `json:"total"`
	HasPrev bool       `json:"has_prev"`
	HasNext bool       `json:"has_next"`
	Items   []PageItem `json:"items"`
}

// Paginate builds the page control for current of total pages. Up to five
// pages render in full; beyond that the range collapses to first, the
// current page's neighbors, and last, with ellipses in the gaps.
func Paginate(current, total int) *Pagination {
	if total < 0 {
		total = 0
	}
	if current < 1 {
		current = 1
	}
	if total > 0 && current > total {
		current = total
	}

	p := &Pagination{
		Current: current,
		Total:   total,
		HasPrev: current > 1,
		HasNext: current < total,
	}

	if total <= 5 {
		for i := 1; i <= total; i++ {
			p.Items = append(p.Items, PageItem{Page: i, Active: i == current})
		}
		return p
	}

	add := func(page int) {
		p.Items = append(p.Items, PageItem{Page: page, Active: page == current})
	}

	add(1)
	if current > 3 {
		p.Items = append(p.Items, PageItem{Ellipsis: true})
	}
	for i := max(2, current-1); i <= min(total-1, current+1); i++ {
		add(i)
	}
	if current < total-2 {
		p.Items = append(p.Items, PageItem{Ellipsis: true})
	}
	add(total)

	return p
}
