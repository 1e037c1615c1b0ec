// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"foliopress/internal/models"
)

func TestCheckLocalizedLen(t *testing.T) {
	ok := models.LocalizedText{"id": "pendek", "en": "short"}
	if err := checkLocalizedLen("message", ok, maxTextLen); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	long := models.LocalizedText{"id": "ok", "en": strings.Repeat("x", maxTextLen+1)}
	err := checkLocalizedLen("message", long, maxTextLen)
	if err == nil {
		t.Fatal("expected error for oversized value")
	}
	if !strings.Contains(err.Error(), "message (en)") {
		t.Errorf("error should name the field and language, got: %v", err)
	}

	if err := checkLocalizedLen("body", nil, maxTextLen); err != nil {
		t.Errorf("nil map should pass, got: %v", err)
	}
}

func TestCheckNameLen(t *testing.T) {
	if err := checkNameLen("name", "Budi"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Rune count, not byte count: 200 multibyte runes are fine.
	if err := checkNameLen("name", strings.Repeat("é", maxNameLen)); err != nil {
		t.Errorf("200 runes should pass, got: %v", err)
	}

	if err := checkNameLen("name", strings.Repeat("a", maxNameLen+1)); err == nil {
		t.Error("expected error past the limit")
	}
}
