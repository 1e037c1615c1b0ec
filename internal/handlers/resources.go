// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// resources.go declares the per-entity descriptors: payload decoding with
// validation, list columns, and upload rules. The shared request lifecycle
// lives in resource.go; nothing here touches the database directly.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"foliopress/internal/models"
	"foliopress/internal/storage"
	"foliopress/internal/store"
	"foliopress/internal/view"
)

// crudActions returns the standard edit/delete row actions for an entity.
func crudActions(base string) []view.Action {
	return []view.Action{
		{Label: "Edit", Icon: "pencil", Href: base + "/{id}"},
		{Label: "Delete", Icon: "trash", Variant: "danger", Href: base + "/{id}"},
	}
}

// localized builds the default-language cell accessor for a JSONB text map.
func localized(field string) func(view.Row) string {
	return view.Localized(field, models.DefaultLanguage, models.DefaultLanguage)
}

// NewTestimonialResource wires the testimonials endpoint.
func NewTestimonialResource(repo *store.Repository[models.Testimonial], st storage.Storage) *Resource[models.Testimonial] {
	return NewResource(repo, st, Descriptor[models.Testimonial]{
		Name: "testimonial",
		Decode: func(payload json.RawMessage, existing *models.Testimonial) (*models.Testimonial, error) {
			var in struct {
				Name    string               `json:"name"`
				Role    models.LocalizedText `json:"role"`
				Message models.LocalizedText `json:"message"`
				Rating  int                  `json:"rating"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("invalid payload: %w", err)
			}

			e := &models.Testimonial{Rating: 5}
			if existing != nil {
				*e = *existing
			}
			e.Name = strings.TrimSpace(in.Name)
			e.Role = e.Role.Merge(in.Role)
			e.Message = e.Message.Merge(in.Message)
			if in.Rating != 0 {
				e.Rating = in.Rating
			}

			if e.Name == "" {
				return nil, fmt.Errorf("name is required")
			}
			if err := checkNameLen("name", e.Name); err != nil {
				return nil, err
			}
			if !e.Message.HasDefault() {
				return nil, fmt.Errorf("message is required in the default language")
			}
			if err := checkLocalizedLen("message", e.Message, maxTextLen); err != nil {
				return nil, err
			}
			if e.Rating < 1 || e.Rating > 5 {
				return nil, fmt.Errorf("rating must be between 1 and 5")
			}
			return e, nil
		},
		AssetRef: func(e *models.Testimonial) **string { return &e.Photo },
		Upload:   ImageRules("testimonials"),
		Columns: []view.Column{
			{Header: "Name", Field: "name", Sortable: true},
			{Header: "Role", Render: localized("role")},
			{Header: "Rating", Field: "rating", Sortable: true},
		},
		Actions:      crudActions("/admin/api/testimonials"),
		EmptyMessage: "No testimonials yet.",
	})
}

// NewBrandResource wires the brands endpoint.
func NewBrandResource(repo *store.Repository[models.Brand], st storage.Storage) *Resource[models.Brand] {
	return NewResource(repo, st, Descriptor[models.Brand]{
		Name: "brand",
		Decode: func(payload json.RawMessage, existing *models.Brand) (*models.Brand, error) {
			var in struct {
				Title   models.LocalizedText `json:"title"`
				Website *string              `json:"website"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("invalid payload: %w", err)
			}

			e := &models.Brand{}
			if existing != nil {
				*e = *existing
			}
			e.Title = e.Title.Merge(in.Title)
			if in.Website != nil {
				e.Website = in.Website
			}

			if !e.Title.HasDefault() {
				return nil, fmt.Errorf("title is required in the default language")
			}
			return e, nil
		},
		AssetRef: func(e *models.Brand) **string { return &e.Image },
		Upload:   ImageRules("brands"),
		Columns: []view.Column{
			{Header: "Title", Render: localized("title")},
			{Header: "Website", Field: "website"},
		},
		Actions:      crudActions("/admin/api/brands"),
		EmptyMessage: "No brands yet.",
	})
}

// NewCertificateResource wires the certificates endpoint. Certificates also
// accept PDF files.
func NewCertificateResource(repo *store.Repository[models.Certificate], st storage.Storage) *Resource[models.Certificate] {
	return NewResource(repo, st, Descriptor[models.Certificate]{
		Name: "certificate",
		Decode: func(payload json.RawMessage, existing *models.Certificate) (*models.Certificate, error) {
			var in struct {
				Title    models.LocalizedText `json:"title"`
				Issuer   string               `json:"issuer"`
				IssuedAt *time.Time           `json:"issued_at"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("invalid payload: %w", err)
			}

			e := &models.Certificate{}
			if existing != nil {
				*e = *existing
			}
			e.Title = e.Title.Merge(in.Title)
			e.Issuer = strings.TrimSpace(in.Issuer)
			if in.IssuedAt != nil {
				e.IssuedAt = in.IssuedAt
			}

			if !e.Title.HasDefault() {
				return nil, fmt.Errorf("title is required in the default language")
			}
			return e, nil
		},
		AssetRef: func(e *models.Certificate) **string { return &e.File },
		Upload:   DocumentRules("certificates"),
		Columns: []view.Column{
			{Header: "Title", Render: localized("title")},
			{Header: "Issuer", Field: "issuer", Sortable: true},
			{Header: "Issued", Field: "issued_at", Sortable: true, Sort: "issued_at"},
		},
		Actions:      crudActions("/admin/api/certificates"),
		EmptyMessage: "No certificates yet.",
	})
}

// NewFAQResource wires the FAQ endpoint. FAQs carry no asset.
func NewFAQResource(repo *store.Repository[models.FAQ], st storage.Storage) *Resource[models.FAQ] {
	return NewResource(repo, st, Descriptor[models.FAQ]{
		Name: "faq",
		Decode: func(payload json.RawMessage, existing *models.FAQ) (*models.FAQ, error) {
			var in struct {
				Question models.LocalizedText `json:"question"`
				Answer   models.LocalizedText `json:"answer"`
				Position *int                 `json:"position"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("invalid payload: %w", err)
			}

			e := &models.FAQ{}
			if existing != nil {
				*e = *existing
			}
			e.Question = e.Question.Merge(in.Question)
			e.Answer = e.Answer.Merge(in.Answer)
			if in.Position != nil {
				e.Position = *in.Position
			}

			if !e.Question.HasDefault() {
				return nil, fmt.Errorf("question is required in the default language")
			}
			if !e.Answer.HasDefault() {
				return nil, fmt.Errorf("answer is required in the default language")
			}
			if err := checkLocalizedLen("answer", e.Answer, maxRichTextLen); err != nil {
				return nil, err
			}
			if e.Position < 0 {
				return nil, fmt.Errorf("position cannot be negative")
			}
			return e, nil
		},
		Columns: []view.Column{
			{Header: "Question", Render: localized("question")},
			{Header: "Position", Field: "position", Sortable: true},
		},
		Actions:      crudActions("/admin/api/faqs"),
		EmptyMessage: "No FAQ entries yet.",
	})
}

// NewSkillResource wires the skills endpoint. Icon is either an uploaded
// image or an icon-font class name sent in the payload.
func NewSkillResource(repo *store.Repository[models.Skill], st storage.Storage) *Resource[models.Skill] {
	return NewResource(repo, st, Descriptor[models.Skill]{
		Name: "skill",
		Decode: func(payload json.RawMessage, existing *models.Skill) (*models.Skill, error) {
			var in struct {
				Name string  `json:"name"`
				Icon *string `json:"icon"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("invalid payload: %w", err)
			}

			e := &models.Skill{}
			if existing != nil {
				*e = *existing
			}
			e.Name = strings.TrimSpace(in.Name)
			// Icon class names come through the payload; file icons come
			// through the multipart part and override this.
			if in.Icon != nil {
				if *in.Icon != "" && !storage.IsIconClass(*in.Icon) {
					return nil, fmt.Errorf("icon must be an icon class name or an uploaded file")
				}
				e.Icon = in.Icon
			}

			if e.Name == "" {
				return nil, fmt.Errorf("name is required")
			}
			return e, nil
		},
		AssetRef: func(e *models.Skill) **string { return &e.Icon },
		Upload:   ImageRules("skills"),
		Columns: []view.Column{
			{Header: "Name", Field: "name", Sortable: true},
			{Header: "Icon", Field: "icon"},
		},
		Actions:      crudActions("/admin/api/skills"),
		EmptyMessage: "No skills yet.",
	})
}

// NewTechStackResource wires the tech-stacks endpoint. Skill membership is
// written through the join table after the row itself is saved.
func NewTechStackResource(stacks *store.TechStackStore, st storage.Storage) *Resource[models.TechStack] {
	return NewResource(stacks.Repository, st, Descriptor[models.TechStack]{
		Name: "tech stack",
		Decode: func(payload json.RawMessage, existing *models.TechStack) (*models.TechStack, error) {
			var in struct {
				Title       models.LocalizedText `json:"title"`
				Description models.LocalizedText `json:"description"`
				SkillIDs    []int64              `json:"skill_ids"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("invalid payload: %w", err)
			}

			e := &models.TechStack{}
			if existing != nil {
				*e = *existing
			}
			e.Title = e.Title.Merge(in.Title)
			e.Description = e.Description.Merge(in.Description)
			if in.SkillIDs != nil {
				e.SkillIDs = in.SkillIDs
			}

			if !e.Title.HasDefault() {
				return nil, fmt.Errorf("title is required in the default language")
			}
			return e, nil
		},
		AfterSave: func(r *http.Request, e *models.TechStack, payload json.RawMessage) error {
			var in struct {
				SkillIDs []int64 `json:"skill_ids"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return err
			}
			if in.SkillIDs == nil {
				return nil
			}
			if err := stacks.SetSkills(r.Context(), e.ID, in.SkillIDs); err != nil {
				return err
			}
			e.SkillIDs = in.SkillIDs
			return nil
		},
		Decorate: func(r *http.Request, e *models.TechStack) error {
			ids, err := stacks.SkillIDs(r.Context(), e.ID)
			if err != nil {
				return err
			}
			e.SkillIDs = ids
			return nil
		},
		Columns: []view.Column{
			{Header: "Title", Render: localized("title")},
			{Header: "Description", Render: localized("description")},
		},
		Actions:      crudActions("/admin/api/tech-stacks"),
		EmptyMessage: "No tech stacks yet.",
	})
}

// NewServicePackageResource wires the service packages endpoint.
func NewServicePackageResource(repo *store.Repository[models.ServicePackage], st storage.Storage) *Resource[models.ServicePackage] {
	return NewResource(repo, st, Descriptor[models.ServicePackage]{
		Name: "service package",
		Decode: func(payload json.RawMessage, existing *models.ServicePackage) (*models.ServicePackage, error) {
			var in struct {
				Name        models.LocalizedText `json:"name"`
				Description models.LocalizedText `json:"description"`
				Features    models.LocalizedText `json:"features"`
				PriceCents  *int64               `json:"price_cents"`
				Currency    string               `json:"currency"`
				Highlighted *bool                `json:"highlighted"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("invalid payload: %w", err)
			}

			e := &models.ServicePackage{Currency: "IDR"}
			if existing != nil {
				*e = *existing
			}
			e.Name = e.Name.Merge(in.Name)
			e.Description = e.Description.Merge(in.Description)
			e.Features = e.Features.Merge(in.Features)
			if in.PriceCents != nil {
				e.PriceCents = *in.PriceCents
			}
			if in.Currency != "" {
				e.Currency = strings.ToUpper(in.Currency)
			}
			if in.Highlighted != nil {
				e.Highlighted = *in.Highlighted
			}

			if !e.Name.HasDefault() {
				return nil, fmt.Errorf("name is required in the default language")
			}
			if e.PriceCents < 0 {
				return nil, fmt.Errorf("price cannot be negative")
			}
			if len(e.Currency) != 3 {
				return nil, fmt.Errorf("currency must be a 3-letter code")
			}
			return e, nil
		},
		Columns: []view.Column{
			{Header: "Name", Render: localized("name")},
			{Header: "Price", Field: "price_cents", Sortable: true, Sort: "price"},
			{Header: "Currency", Field: "currency"},
			{Header: "Highlighted", Field: "highlighted"},
		},
		Actions:      crudActions("/admin/api/packages"),
		EmptyMessage: "No service packages yet.",
	})
}

// NewBannerResource wires the banners endpoint.
func NewBannerResource(repo *store.Repository[models.Banner], st storage.Storage) *Resource[models.Banner] {
	return NewResource(repo, st, Descriptor[models.Banner]{
		Name: "banner",
		Decode: func(payload json.RawMessage, existing *models.Banner) (*models.Banner, error) {
			var in struct {
				Caption models.LocalizedText `json:"caption"`
				LinkURL *string              `json:"link_url"`
				Active  *bool                `json:"active"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("invalid payload: %w", err)
			}

			e := &models.Banner{Active: true}
			if existing != nil {
				*e = *existing
			}
			e.Caption = e.Caption.Merge(in.Caption)
			if in.LinkURL != nil {
				e.LinkURL = in.LinkURL
			}
			if in.Active != nil {
				e.Active = *in.Active
			}

			// A banner without an image on create is rejected at the row
			// level only when no file part arrived; caption stays optional.
			return e, nil
		},
		AssetRef: func(e *models.Banner) **string { return &e.Image },
		Upload:   ImageRules("banners"),
		Columns: []view.Column{
			{Header: "Caption", Render: localized("caption")},
			{Header: "Active", Field: "active"},
		},
		Actions:      crudActions("/admin/api/banners"),
		EmptyMessage: "No banners yet.",
	})
}

// NewExperienceResource wires the work-experience endpoint.
func NewExperienceResource(repo *store.Repository[models.Experience], st storage.Storage) *Resource[models.Experience] {
	return NewResource(repo, st, Descriptor[models.Experience]{
		Name: "experience",
		Decode: func(payload json.RawMessage, existing *models.Experience) (*models.Experience, error) {
			var in struct {
				Position    models.LocalizedText `json:"position"`
				Company     string               `json:"company"`
				Description models.LocalizedText `json:"description"`
				StartDate   *time.Time           `json:"start_date"`
				EndDate     *time.Time           `json:"end_date"`
			}
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("invalid payload: %w", err)
			}

			e := &models.Experience{}
			if existing != nil {
				*e = *existing
			}
			e.Position = e.Position.Merge(in.Position)
			e.Company = strings.TrimSpace(in.Company)
			e.Description = e.Description.Merge(in.Description)
			if in.StartDate != nil {
				e.StartDate = *in.StartDate
			}
			// EndDate nil means "current position" and may also clear a
			// previously set end date on update.
			e.EndDate = in.EndDate

			if !e.Position.HasDefault() {
				return nil, fmt.Errorf("position is required in the default language")
			}
			if e.Company == "" {
				return nil, fmt.Errorf("company is required")
			}
			if err := checkNameLen("company", e.Company); err != nil {
				return nil, err
			}
			if err := checkLocalizedLen("description", e.Description, maxTextLen); err != nil {
				return nil, err
			}
			if e.StartDate.IsZero() {
				return nil, fmt.Errorf("start date is required")
			}
			if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
				return nil, fmt.Errorf("end date cannot precede start date")
			}
			return e, nil
		},
		Columns: []view.Column{
			{Header: "Position", Render: localized("position")},
			{Header: "Company", Field: "company", Sortable: true},
			{Header: "Start", Field: "start_date", Sortable: true, Sort: "start_date"},
			{Header: "End", Field: "end_date"},
		},
		Actions:      crudActions("/admin/api/experiences"),
		EmptyMessage: "No experience entries yet.",
	})
}
