// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"foliopress/internal/models"
)

// NewSkillStore returns the repository for skills. The guard refuses to
// delete a skill while any tech stack still includes it.
func NewSkillStore(db *sql.DB) *Repository[models.Skill] {
	return NewRepository(db, Schema[models.Skill]{
		Table: "skills",
		Columns: []string{
			"id", "name", "icon", "created_at", "updated_at",
		},
		Scan: func(row RowScanner) (*models.Skill, error) {
			s := &models.Skill{}
			err := row.Scan(&s.ID, &s.Name, &s.Icon, &s.CreatedAt, &s.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		Insert: func(s *models.Skill) ([]string, []any) {
			return []string{"name", "icon"}, []any{s.Name, s.Icon}
		},
		Update: func(s *models.Skill) ([]string, []any) {
			return []string{"name", "icon"}, []any{s.Name, s.Icon}
		},
		Search: []SearchColumn{{Name: "name"}},
		Sorts: map[string]string{
			"name":       "name",
			"created_at": "created_at",
		},
		Guards: []Guard{
			{
				Table:   "tech_stack_skills",
				Column:  "skill_id",
				Message: "skill is used by one or more tech stacks",
			},
		},
	})
}
