// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Singleton settings documents. Each lives under a fixed well-known key in
// the settings table; the unique constraint on the key enforces the
// single-row invariant instead of an application-level existence check.

// SettingsKey identifies a singleton settings document.
type SettingsKey string

const (
	SettingsWeb     SettingsKey = "web"
	SettingsPrivacy SettingsKey = "privacy-policy"
	SettingsContact SettingsKey = "contact"
)

// WebSettings holds global site configuration.
type WebSettings struct {
	SiteName    LocalizedText     `json:"site_name"`
	Tagline     LocalizedText     `json:"tagline"`
	Logo        *string           `json:"logo,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

// PrivacyPolicy holds the privacy policy body as rich HTML per language.
type PrivacyPolicy struct {
	Body LocalizedText `json:"body"`
}

// ContactInfo holds the agency's contact details.
type ContactInfo struct {
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address LocalizedText `json:"address"`
}
