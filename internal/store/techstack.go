// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"foliopress/internal/models"
)

// TechStackStore wraps the generic repository with join-table handling for
// the stack's skill membership.
type TechStackStore struct {
	*Repository[models.TechStack]
	db *sql.DB
}

// NewTechStackStore returns the repository for tech stacks.
func NewTechStackStore(db *sql.DB) *TechStackStore {
	repo := NewRepository(db, Schema[models.TechStack]{
		Table: "tech_stacks",
		Columns: []string{
			"id", "title", "description", "created_at", "updated_at",
		},
		Scan: func(row RowScanner) (*models.TechStack, error) {
			t := &models.TechStack{}
			err := row.Scan(&t.ID, &t.Title, &t.Description,
				&t.CreatedAt, &t.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		Insert: func(t *models.TechStack) ([]string, []any) {
			return []string{"title", "description"}, []any{t.Title, t.Description}
		},
		Update: func(t *models.TechStack) ([]string, []any) {
			return []string{"title", "description"}, []any{t.Title, t.Description}
		},
		Search: []SearchColumn{
			{Name: "title", Localized: true},
			{Name: "description", Localized: true},
		},
		Sorts: map[string]string{
			"created_at": "created_at",
		},
	})
	return &TechStackStore{Repository: repo, db: db}
}

// SetSkills replaces the stack's skill membership in one transaction.
func (s *TechStackStore) SetSkills(ctx context.Context, stackID int64, skillIDs []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("set stack skills: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tech_stack_skills WHERE tech_stack_id = $1`, stackID); err != nil {
		return fmt.Errorf("clear stack skills: %w", err)
	}

	for _, skillID := range skillIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tech_stack_skills (tech_stack_id, skill_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, stackID, skillID); err != nil {
			return fmt.Errorf("attach skill %d: %w", skillID, err)
		}
	}

	return tx.Commit()
}

// SkillIDs returns the ids of the skills attached to a stack.
func (s *TechStackStore) SkillIDs(ctx context.Context, stackID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT skill_id FROM tech_stack_skills
		WHERE tech_stack_id = $1 ORDER BY skill_id
	`, stackID)
	if err != nil {
		return nil, fmt.Errorf("stack skills: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan stack skill: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
