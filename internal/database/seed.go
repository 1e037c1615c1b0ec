// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data.
// It creates a default admin operator if none exists. The operator will be
// prompted to set up 2FA on first login (totp_enabled = false).
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert default admin operator. 2FA is not enabled — they must set it
	// up on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@foliopress.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// Default singleton settings so the admin UI has something to edit.
	defaults := []struct {
		key   string
		value string
	}{
		{"web", `{"site_name":{"id":"Portofolio Saya","en":"My Portfolio"},"tagline":{},"social_links":{}}`},
		{"privacy-policy", `{"body":{}}`},
		{"contact", `{"email":"","phone":"","address":{}}`},
	}
	for _, d := range defaults {
		if _, err := db.Exec(`
			INSERT INTO settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING
		`, d.key, d.value); err != nil {
			return fmt.Errorf("seed settings %s: %w", d.key, err)
		}
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@foliopress.local",
		"password", "admin",
	)

	return nil
}
