// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Certificate is a credential with an attached scan (image or PDF).
type Certificate struct {
	ID        int64         `json:"id"`
	Title     LocalizedText `json:"title"`
	Issuer    string        `json:"issuer"`
	IssuedAt  *time.Time    `json:"issued_at,omitempty"`
	File      *string       `json:"file,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
