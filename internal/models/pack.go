// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ServicePackage is a priced service offering. Features holds one
// newline-separated list per language.
type ServicePackage struct {
	ID          int64         `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Features    LocalizedText `json:"features"`
	PriceCents  int64         `json:"price_cents"`
	Currency    string        `json:"currency"`
	Highlighted bool          `json:"highlighted"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
