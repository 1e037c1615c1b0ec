// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// FAQ is a question/answer pair. Answer holds rich HTML per language.
type FAQ struct {
	ID        int64         `json:"id"`
	Question  LocalizedText `json:"question"`
	Answer    LocalizedText `json:"answer"`
	Position  int           `json:"position"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
