// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Testimonial is a client quote shown on the public site. Role and Message
// are editable per language; Photo references an uploaded image.
type Testimonial struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Role      LocalizedText `json:"role"`
	Message   LocalizedText `json:"message"`
	Rating    int           `json:"rating"` // 1-5 stars
	Photo     *string       `json:"photo,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
