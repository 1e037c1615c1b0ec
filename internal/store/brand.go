// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"foliopress/internal/models"
)

// NewBrandStore returns the repository for brand logos.
func NewBrandStore(db *sql.DB) *Repository[models.Brand] {
	return NewRepository(db, Schema[models.Brand]{
		Table: "brands",
		Columns: []string{
			"id", "title", "website", "image", "created_at", "updated_at",
		},
		Scan: func(row RowScanner) (*models.Brand, error) {
			b := &models.Brand{}
			err := row.Scan(&b.ID, &b.Title, &b.Website, &b.Image,
				&b.CreatedAt, &b.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
		Insert: func(b *models.Brand) ([]string, []any) {
			return []string{"title", "website", "image"},
				[]any{b.Title, b.Website, b.Image}
		},
		Update: func(b *models.Brand) ([]string, []any) {
			return []string{"title", "website", "image"},
				[]any{b.Title, b.Website, b.Image}
		},
		Search: []SearchColumn{{Name: "title", Localized: true}},
		Sorts: map[string]string{
			"created_at": "created_at",
		},
	})
}
