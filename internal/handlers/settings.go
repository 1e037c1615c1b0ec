// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"

	"foliopress/internal/models"
	"foliopress/internal/storage"
	"foliopress/internal/store"
)

// Settings serves the singleton settings documents. Each document lives
// under a fixed well-known name; there is no list, create, or delete.
type Settings struct {
	settings *store.SettingsStore
	storage  storage.Storage
}

// NewSettings creates the settings handler group.
func NewSettings(settings *store.SettingsStore, st storage.Storage) *Settings {
	return &Settings{settings: settings, storage: st}
}

// Mount registers the settings routes on a chi router.
func (s *Settings) Mount(r chi.Router) {
	r.Get("/{name}", s.Get)
	r.Put("/{name}", s.Save)
}

// Get returns one settings document. A document that was never saved comes
// back as its zero value, not a 404 — singletons always exist.
func (s *Settings) Get(w http.ResponseWriter, r *http.Request) {
	key, ok := settingsKey(w, r)
	if !ok {
		return
	}

	doc := newSettingsDoc(key)
	if err := s.settings.Get(r.Context(), key, doc); err != nil {
		respondInternal(w, "get settings", err)
		return
	}

	updatedAt, err := s.settings.UpdatedAt(r.Context(), key)
	if err != nil {
		respondInternal(w, "get settings", err)
		return
	}

	s.resolveLogo(key, doc)
	respondJSON(w, http.StatusOK, map[string]any{
		"key":        key,
		"value":      doc,
		"updated_at": updatedAt,
	})
}

// Save validates and upserts one settings document.
func (s *Settings) Save(w http.ResponseWriter, r *http.Request) {
	key, ok := settingsKey(w, r)
	if !ok {
		return
	}

	doc := newSettingsDoc(key)
	if err := decodeJSON(r, doc); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if msg := validateSettingsDoc(key, doc); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if err := s.settings.Save(r.Context(), key, doc); err != nil {
		respondInternal(w, "save settings", err)
		return
	}

	s.resolveLogo(key, doc)
	respondJSON(w, http.StatusOK, map[string]any{
		"key":   key,
		"value": doc,
	})
}

// settingsKey resolves the {name} URL parameter to a known settings key.
func settingsKey(w http.ResponseWriter, r *http.Request) (models.SettingsKey, bool) {
	key := models.SettingsKey(chi.URLParam(r, "name"))
	switch key {
	case models.SettingsWeb, models.SettingsPrivacy, models.SettingsContact:
		return key, true
	}
	respondError(w, http.StatusNotFound, "unknown settings document")
	return "", false
}

// newSettingsDoc returns the typed zero document for a key.
func newSettingsDoc(key models.SettingsKey) any {
	switch key {
	case models.SettingsWeb:
		return &models.WebSettings{}
	case models.SettingsPrivacy:
		return &models.PrivacyPolicy{}
	default:
		return &models.ContactInfo{}
	}
}

// validateSettingsDoc returns the first validation error, or "".
func validateSettingsDoc(key models.SettingsKey, doc any) string {
	switch d := doc.(type) {
	case *models.WebSettings:
		if !d.SiteName.HasDefault() {
			return "site name is required in the default language"
		}
		for name, url := range d.SocialLinks {
			if strings.TrimSpace(name) == "" {
				return "social link name cannot be empty"
			}
			if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
				return "social link URLs must be absolute"
			}
		}
	case *models.PrivacyPolicy:
		if !d.Body.HasDefault() {
			return "policy body is required in the default language"
		}
		if err := checkLocalizedLen("policy body", d.Body, maxRichTextLen); err != nil {
			return err.Error()
		}
	case *models.ContactInfo:
		if d.Email != "" {
			if _, err := mail.ParseAddress(d.Email); err != nil {
				return "invalid contact email address"
			}
		}
	}
	return ""
}

// resolveLogo rewrites the web settings logo reference to a servable URL.
func (s *Settings) resolveLogo(key models.SettingsKey, doc any) {
	if key != models.SettingsWeb {
		return
	}
	if d, ok := doc.(*models.WebSettings); ok && d.Logo != nil {
		resolved := storage.ResolveURL(s.storage, *d.Logo)
		d.Logo = &resolved
	}
}
