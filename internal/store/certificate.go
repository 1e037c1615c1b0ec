// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"foliopress/internal/models"
)

// NewCertificateStore returns the repository for certificates.
func NewCertificateStore(db *sql.DB) *Repository[models.Certificate] {
	return NewRepository(db, Schema[models.Certificate]{
		Table: "certificates",
		Columns: []string{
			"id", "title", "issuer", "issued_at", "file",
			"created_at", "updated_at",
		},
		Scan: func(row RowScanner) (*models.Certificate, error) {
			c := &models.Certificate{}
			err := row.Scan(&c.ID, &c.Title, &c.Issuer, &c.IssuedAt, &c.File,
				&c.CreatedAt, &c.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		Insert: func(c *models.Certificate) ([]string, []any) {
			return []string{"title", "issuer", "issued_at", "file"},
				[]any{c.Title, c.Issuer, c.IssuedAt, c.File}
		},
		Update: func(c *models.Certificate) ([]string, []any) {
			return []string{"title", "issuer", "issued_at", "file"},
				[]any{c.Title, c.Issuer, c.IssuedAt, c.File}
		},
		Search: []SearchColumn{
			{Name: "title", Localized: true},
			{Name: "issuer"},
		},
		Sorts: map[string]string{
			"issuer":     "issuer",
			"issued_at":  "issued_at",
			"created_at": "created_at",
		},
	})
}
