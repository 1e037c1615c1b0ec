// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"foliopress/internal/models"
)

// NewServicePackageStore returns the repository for service packages.
func NewServicePackageStore(db *sql.DB) *Repository[models.ServicePackage] {
	return NewRepository(db, Schema[models.ServicePackage]{
		Table: "service_packages",
		Columns: []string{
			"id", "name", "description", "features", "price_cents",
			"currency", "highlighted", "created_at", "updated_at",
		},
		Scan: func(row RowScanner) (*models.ServicePackage, error) {
			p := &models.ServicePackage{}
			err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Features,
				&p.PriceCents, &p.Currency, &p.Highlighted,
				&p.CreatedAt, &p.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		Insert: func(p *models.ServicePackage) ([]string, []any) {
			return []string{"name", "description", "features", "price_cents", "currency", "highlighted"},
				[]any{p.Name, p.Description, p.Features, p.PriceCents, p.Currency, p.Highlighted}
		},
		Update: func(p *models.ServicePackage) ([]string, []any) {
			return []string{"name", "description", "features", "price_cents", "currency", "highlighted"},
				[]any{p.Name, p.Description, p.Features, p.PriceCents, p.Currency, p.Highlighted}
		},
		Search: []SearchColumn{
			{Name: "name", Localized: true},
			{Name: "description", Localized: true},
		},
		Sorts: map[string]string{
			"price":      "price_cents",
			"created_at": "created_at",
		},
	})
}
