// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"unicode/utf8"

	"foliopress/internal/models"
)

// Validation limits for entity fields.
const (
	maxNameLen     = 200
	maxTextLen     = 10_000
	maxRichTextLen = 100_000
)

// checkLocalizedLen returns an error when any language value of a localized
// field exceeds max runes.
func checkLocalizedLen(field string, t models.LocalizedText, max int) error {
	for lang, val := range t {
		if utf8.RuneCountInString(val) > max {
			return fmt.Errorf("%s (%s) is too long (max %d characters)", field, lang, max)
		}
	}
	return nil
}

// checkNameLen rejects plain string fields past the name limit.
func checkNameLen(field, val string) error {
	if utf8.RuneCountInString(val) > maxNameLen {
		return fmt.Errorf("%s is too long (max %d characters)", field, maxNameLen)
	}
	return nil
}
