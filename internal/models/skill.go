// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Skill is a technology entry usable inside tech stacks. Icon is either an
// uploaded file path or an icon-font class name (e.g. "devicon-go-plain"),
// which the storage layer passes through unresolved.
type Skill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Icon      *string   `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TechStack groups skills under a localized heading. Deleting a skill that is
// still attached to a stack is refused by the store's referential guard.
type TechStack struct {
	ID          int64         `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	SkillIDs    []int64       `json:"skill_ids,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
