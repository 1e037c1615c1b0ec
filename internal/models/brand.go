// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Brand is a partner/client logo entry.
type Brand struct {
	ID        int64         `json:"id"`
	Title     LocalizedText `json:"title"`
	Website   *string       `json:"website,omitempty"`
	Image     *string       `json:"image,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
