// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package view builds the entity-agnostic list view models the admin UI
// consumes: table cells from column descriptors, row actions, and windowed
// pagination. It knows nothing about entity semantics; each resource
// supplies descriptors and the view renders whatever rows it is handed.
package view

import (
	"fmt"
	"strings"
)

// Row is one entity serialized to its JSON field map. Field accessors look
// up these keys directly.
type Row map[string]any

// Column describes one table column. Exactly one of Field or Render must be
// set: Field does a direct property lookup, Render computes a derived
// display value (localized text, badges, joined names). Sort state is owned
// by the caller's query params — the table itself holds none.
type Column struct {
	Header   string
	Field    string
	Render   func(Row) string
	Sortable bool
	Sort     string // sort key sent back in query params; defaults to Field
}

// Action describes a row action button. Href may contain "{id}", replaced
// with the row's id at build time.
type Action struct {
	Label   string
	Icon    string
	Variant string // "default", "danger"
	Href    string
}

// Cell is one rendered table cell.
type Cell struct {
	Value string `json:"value"`
}

// TableRow is one rendered row with its resolved action URLs.
type TableRow struct {
	ID      any          `json:"id"`
	Cells   []Cell       `json:"cells"`
	Actions []ActionLink `json:"actions,omitempty"`
}

// ActionLink is an Action resolved against a concrete row.
type ActionLink struct {
	Label   string `json:"label"`
	Icon    string `json:"icon,omitempty"`
	Variant string `json:"variant,omitempty"`
	Href    string `json:"href"`
}

// Header is one rendered column header.
type Header struct {
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
	Sort     string `json:"sort,omitempty"`
}

// Table is the complete list view model. Loading and EmptyMessage are
// mutually exclusive: a loading table never reports emptiness.
type Table struct {
	Headers      []Header   `json:"headers"`
	Rows         []TableRow `json:"rows"`
	Loading      bool       `json:"loading"`
	EmptyMessage string     `json:"empty_message,omitempty"`
}

// BuildTable renders rows against column and action descriptors.
// A descriptor with both Field and Render (or neither) is a programming
// error and fails loudly.
func BuildTable(rows []Row, cols []Column, actions []Action, emptyMessage string) (*Table, error) {
	t := &Table{
		Headers: make([]Header, len(cols)),
		Rows:    []TableRow{},
	}

	for i, c := range cols {
		if (c.Field == "") == (c.Render == nil) {
			return nil, fmt.Errorf("column %q: exactly one of Field or Render required", c.Header)
		}
		sort := c.Sort
		if sort == "" {
			sort = c.Field
		}
		t.Headers[i] = Header{Label: c.Header, Sortable: c.Sortable, Sort: sort}
	}

	for _, row := range rows {
		tr := TableRow{ID: row["id"], Cells: make([]Cell, len(cols))}
		for i, c := range cols {
			tr.Cells[i] = Cell{Value: renderCell(row, c)}
		}
		for _, a := range actions {
			tr.Actions = append(tr.Actions, ActionLink{
				Label:   a.Label,
				Icon:    a.Icon,
				Variant: a.Variant,
				Href:    strings.ReplaceAll(a.Href, "{id}", fmt.Sprint(row["id"])),
			})
		}
		t.Rows = append(t.Rows, tr)
	}

	if len(t.Rows) == 0 {
		t.EmptyMessage = emptyMessage
	}
	return t, nil
}

// renderCell resolves one cell through the column's accessor.
func renderCell(row Row, c Column) string {
	if c.Render != nil {
		return c.Render(row)
	}
	v, ok := row[c.Field]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; print integers without a fraction.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(val)
	}
}

// Localized returns a Render accessor that resolves a localized-text field
// for the given language, falling back through available languages.
func Localized(field, lang, defaultLang string) func(Row) string {
	return func(row Row) string {
		m, ok := row[field].(map[string]any)
		if !ok {
			return ""
		}
		pick := func(l string) string {
			if v, ok := m[l].(string); ok && v != "" {
				return v
			}
			return ""
		}
		if v := pick(lang); v != "" {
			return v
		}
		if v := pick(defaultLang); v != "" {
			return v
		}
		for _, v := range m {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
		return ""
	}
}
