// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"foliopress/internal/models"
)

// NewFAQStore returns the repository for FAQ entries.
func NewFAQStore(db *sql.DB) *Repository[models.FAQ] {
	return NewRepository(db, Schema[models.FAQ]{
		Table: "faqs",
		Columns: []string{
			"id", "question", "answer", "position", "created_at", "updated_at",
		},
		Scan: func(row RowScanner) (*models.FAQ, error) {
			f := &models.FAQ{}
			err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Position,
				&f.CreatedAt, &f.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
		Insert: func(f *models.FAQ) ([]string, []any) {
			return []string{"question", "answer", "position"},
				[]any{f.Question, f.Answer, f.Position}
		},
		Update: func(f *models.FAQ) ([]string, []any) {
			return []string{"question", "answer", "position"},
				[]any{f.Question, f.Answer, f.Position}
		},
		Search: []SearchColumn{
			{Name: "question", Localized: true},
			{Name: "answer", Localized: true},
		},
		Sorts: map[string]string{
			"position":   "position",
			"created_at": "created_at",
		},
	})
}
