// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Languages lists the language codes the admin can edit, in display order.
// The first entry is the default language used for required-field validation.
var Languages = []string{"id", "en"}

// DefaultLanguage is the primary language. Required fields must have a value
// here; translations in other languages may lag behind.
const DefaultLanguage = "id"

// LocalizedText maps a language code to a string value. It is stored as a
// JSONB column and is never assumed complete — callers must go through
// Resolve, which tolerates missing languages.
type LocalizedText map[string]string

// Get returns the exact value for a language, or "" if absent.
func (t LocalizedText) Get(lang string) string {
	if t == nil {
		return ""
	}
	return t[lang]
}

// Resolve returns the value for the requested language, falling back to the
// default language and then to the first non-empty value in sorted key order.
// Returns "" only when the map holds no non-empty value at all.
func (t LocalizedText) Resolve(lang string) string {
	if t == nil {
		return ""
	}
	if v := t[lang]; v != "" {
		return v
	}
	if v := t[DefaultLanguage]; v != "" {
		return v
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if t[k] != "" {
			return t[k]
		}
	}
	return ""
}

// HasDefault reports whether the default-language entry is non-empty.
// Required localized fields validate against this only.
func (t LocalizedText) HasDefault() bool {
	return strings.TrimSpace(t.Get(DefaultLanguage)) != ""
}

// Merge overlays a partial translation map onto t and returns the result.
// Languages present in patch replace the existing value; an empty patch value
// removes the language. Languages absent from patch are left untouched.
func (t LocalizedText) Merge(patch LocalizedText) LocalizedText {
	out := make(LocalizedText, len(t)+len(patch))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range patch {
		if v == "" {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// Value implements driver.Valuer so LocalizedText can be written to a JSONB
// column. A nil map serializes as an empty object, not SQL NULL.
func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal localized text: %w", err)
	}
	return b, nil
}

// Scan implements sql.Scanner for reading JSONB columns.
func (t *LocalizedText) Scan(src any) error {
	if src == nil {
		*t = LocalizedText{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan localized text: unsupported type %T", src)
	}
	m := make(LocalizedText)
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("scan localized text: %w", err)
	}
	*t = m
	return nil
}
