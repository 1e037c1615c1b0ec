// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"foliopress/internal/models"
)

// NewBannerStore returns the repository for banners.
func NewBannerStore(db *sql.DB) *Repository[models.Banner] {
	return NewRepository(db, Schema[models.Banner]{
		Table: "banners",
		Columns: []string{
			"id", "caption", "image", "link_url", "active",
			"created_at", "updated_at",
		},
		Scan: func(row RowScanner) (*models.Banner, error) {
			b := &models.Banner{}
			err := row.Scan(&b.ID, &b.Caption, &b.Image, &b.LinkURL, &b.Active,
				&b.CreatedAt, &b.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
		Insert: func(b *models.Banner) ([]string, []any) {
			return []string{"caption", "image", "link_url", "active"},
				[]any{b.Caption, b.Image, b.LinkURL, b.Active}
		},
		Update: func(b *models.Banner) ([]string, []any) {
			return []string{"caption", "image", "link_url", "active"},
				[]any{b.Caption, b.Image, b.LinkURL, b.Active}
		},
		Search: []SearchColumn{{Name: "caption", Localized: true}},
		Sorts: map[string]string{
			"created_at": "created_at",
		},
	})
}
