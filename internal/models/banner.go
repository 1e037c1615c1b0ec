// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Banner is a promotional image shown on the public site.
type Banner struct {
	ID        int64         `json:"id"`
	Caption   LocalizedText `json:"caption"`
	Image     *string       `json:"image,omitempty"`
	LinkURL   *string       `json:"link_url,omitempty"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
