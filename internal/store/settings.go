// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"foliopress/internal/models"
)

// SettingsStore manages singleton settings documents. Each document lives
// under a fixed key; the unique constraint on the key column enforces the
// single-row invariant so Save never races a concurrent insert.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore returns a SettingsStore backed by the given database.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get unmarshals the document stored under key into dst. When no row exists
// yet, dst is left at its zero value and no error is returned.
func (s *SettingsStore) Get(ctx context.Context, key models.SettingsKey, dst any) error {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = $1`, string(key)).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get settings %q: %w", key, err)
	}

	if err := json.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("decode settings %q: %w", key, err)
	}
	return nil
}

// Save upserts the document under its key.
func (s *SettingsStore) Save(ctx context.Context, key models.SettingsKey, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode settings %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, string(key), value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save settings %q: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when the document was last saved, or the zero time if it
// has never been saved.
func (s *SettingsStore) UpdatedAt(ctx context.Context, key models.SettingsKey) (time.Time, error) {
	var t time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT updated_at FROM settings WHERE key = $1`, string(key)).Scan(&t)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("settings updated_at %q: %w", key, err)
	}
	return t, nil
}
