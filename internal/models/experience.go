// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Experience is a work-history entry. EndDate is nil for a current position.
type Experience struct {
	ID          int64         `json:"id"`
	Position    LocalizedText `json:"position"`
	Company     string        `json:"company"`
	Description LocalizedText `json:"description"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
