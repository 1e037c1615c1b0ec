// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableFieldAndRender(t *testing.T) {
	rows := []Row{
		{"id": float64(1), "name": "Alpha", "rating": float64(5), "active": true},
		{"id": float64(2), "name": "Beta", "rating": float64(4.5), "active": false},
	}
	cols := []Column{
		{Header: "Name", Field: "name", Sortable: true},
		{Header: "Rating", Field: "rating"},
		{Header: "Active", Field: "active"},
		{Header: "Shout", Render: func(r Row) string { return r["name"].(string) + "!" }},
	}

	table, err := BuildTable(rows, cols, nil, "nothing here")
	require.NoError(t, err)

	require.Len(t, table.Headers, 4)
	assert.True(t, table.Headers[0].Sortable)
	assert.Equal(t, "name", table.Headers[0].Sort)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Alpha", table.Rows[0].Cells[0].Value)
	assert.Equal(t, "5", table.Rows[0].Cells[1].Value, "whole floats print without a fraction")
	assert.Equal(t, "4.5", table.Rows[1].Cells[1].Value)
	assert.Equal(t, "yes", table.Rows[0].Cells[2].Value)
	assert.Equal(t, "no", table.Rows[1].Cells[2].Value)
	assert.Equal(t, "Beta!", table.Rows[1].Cells[3].Value)
	assert.Empty(t, table.EmptyMessage, "non-empty table has no empty message")
}

func TestBuildTableRejectsAmbiguousColumn(t *testing.T) {
	rows := []Row{{"id": float64(1)}}

	// Neither accessor.
	_, err := BuildTable(rows, []Column{{Header: "Broken"}}, nil, "")
	assert.Error(t, err)

	// Both accessors.
	_, err = BuildTable(rows, []Column{{
		Header: "Broken",
		Field:  "id",
		Render: func(Row) string { return "" },
	}}, nil, "")
	assert.Error(t, err)
}

func TestBuildTableActionsAndEmpty(t *testing.T) {
	actions := []Action{
		{Label: "Edit", Href: "/admin/api/things/{id}"},
		{Label: "Delete", Variant: "danger", Href: "/admin/api/things/{id}"},
	}
	cols := []Column{{Header: "Name", Field: "name"}}

	table, err := BuildTable([]Row{{"id": float64(7), "name": "X"}}, cols, actions, "")
	require.NoError(t, err)
	require.Len(t, table.Rows[0].Actions, 2)
	assert.Equal(t, "/admin/api/things/7", table.Rows[0].Actions[0].Href)
	assert.Equal(t, "danger", table.Rows[0].Actions[1].Variant)

	empty, err := BuildTable(nil, cols, actions, "No things yet.")
	require.NoError(t, err)
	assert.Equal(t, "No things yet.", empty.EmptyMessage)
	assert.Empty(t, empty.Rows)
}

func TestLocalizedAccessor(t *testing.T) {
	render := Localized("title", "en", "id")

	assert.Equal(t, "Hello", render(Row{"title": map[string]any{"en": "Hello", "id": "Halo"}}))
	assert.Equal(t, "Halo", render(Row{"title": map[string]any{"id": "Halo"}}))
	assert.Equal(t, "Bonjour", render(Row{"title": map[string]any{"fr": "Bonjour"}}))
	assert.Equal(t, "", render(Row{"title": "not a map"}))
	assert.Equal(t, "", render(Row{}))
}
