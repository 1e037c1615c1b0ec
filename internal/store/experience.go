// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"foliopress/internal/models"
)

// NewExperienceStore returns the repository for work-history entries.
func NewExperienceStore(db *sql.DB) *Repository[models.Experience] {
	return NewRepository(db, Schema[models.Experience]{
		Table: "experiences",
		Columns: []string{
			"id", "position", "company", "description", "start_date",
			"end_date", "created_at", "updated_at",
		},
		Scan: func(row RowScanner) (*models.Experience, error) {
			e := &models.Experience{}
			err := row.Scan(&e.ID, &e.Position, &e.Company, &e.Description,
				&e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return e, nil
		},
		Insert: func(e *models.Experience) ([]string, []any) {
			return []string{"position", "company", "description", "start_date", "end_date"},
				[]any{e.Position, e.Company, e.Description, e.StartDate, e.EndDate}
		},
		Update: func(e *models.Experience) ([]string, []any) {
			return []string{"position", "company", "description", "start_date", "end_date"},
				[]any{e.Position, e.Company, e.Description, e.StartDate, e.EndDate}
		},
		Search: []SearchColumn{
			{Name: "position", Localized: true},
			{Name: "company"},
		},
		Sorts: map[string]string{
			"company":    "company",
			"start_date": "start_date",
			"created_at": "created_at",
		},
	})
}
