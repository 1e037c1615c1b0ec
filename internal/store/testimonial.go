// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"foliopress/internal/models"
)

// NewTestimonialStore returns the repository for testimonials.
func NewTestimonialStore(db *sql.DB) *Repository[models.Testimonial] {
	return NewRepository(db, Schema[models.Testimonial]{
		Table: "testimonials",
		Columns: []string{
			"id", "name", "role", "message", "rating", "photo",
			"created_at", "updated_at",
		},
		Scan: func(row RowScanner) (*models.Testimonial, error) {
			t := &models.Testimonial{}
			err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Message, &t.Rating,
				&t.Photo, &t.CreatedAt, &t.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		Insert: func(t *models.Testimonial) ([]string, []any) {
			return []string{"name", "role", "message", "rating", "photo"},
				[]any{t.Name, t.Role, t.Message, t.Rating, t.Photo}
		},
		Update: func(t *models.Testimonial) ([]string, []any) {
			return []string{"name", "role", "message", "rating", "photo"},
				[]any{t.Name, t.Role, t.Message, t.Rating, t.Photo}
		},
		Search: []SearchColumn{
			{Name: "name"},
			{Name: "role", Localized: true},
			{Name: "message", Localized: true},
		},
		Sorts: map[string]string{
			"name":       "name",
			"rating":     "rating",
			"created_at": "created_at",
		},
	})
}
