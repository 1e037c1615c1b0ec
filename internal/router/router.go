// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// FolioPress admin API. It organizes routes into public ingestion and
// authenticated admin groups with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"foliopress/internal/handlers"
	"foliopress/internal/middleware"
	"foliopress/internal/models"
	"foliopress/internal/session"
)

// Deps bundles everything the router mounts. Keeping it in one struct keeps
// New's signature stable as entities are added.
type Deps struct {
	Sessions *session.Store
	// Secure marks cookies set by the router HTTPS-only.
	Secure bool

	Auth      *handlers.Auth
	Analytics *handlers.Analytics
	Settings  *handlers.Settings

	Testimonials *handlers.Resource[models.Testimonial]
	Brands       *handlers.Resource[models.Brand]
	Certificates *handlers.Resource[models.Certificate]
	FAQs         *handlers.Resource[models.FAQ]
	Skills       *handlers.Resource[models.Skill]
	TechStacks   *handlers.Resource[models.TechStack]
	Packages     *handlers.Resource[models.ServicePackage]
	Banners      *handlers.Resource[models.Banner]
	Experiences  *handlers.Resource[models.Experience]
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(deps Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(deps.Sessions))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Public visit ingestion, rate limited per client IP.
	visitLimiter := middleware.NewRateLimiter(60, time.Minute)
	r.Route("/api/visits", func(r chi.Router) {
		r.Use(visitLimiter.Middleware)
		r.Post("/", deps.Analytics.RecordVisit)
		r.Patch("/", deps.Analytics.UpdateDuration)
	})

	// Admin API — CSRF on everything, auth on everything past login.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.NewCSRF(deps.Secure))

		r.Post("/login", deps.Auth.Login)
		r.Post("/logout", deps.Auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/2fa/setup", deps.Auth.TwoFASetup)
			r.Post("/2fa/verify", deps.Auth.TwoFAVerify)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/me", deps.Auth.Me)
			r.Get("/dashboard", deps.Analytics.Dashboard)

			r.Route("/testimonials", deps.Testimonials.Mount)
			r.Route("/brands", deps.Brands.Mount)
			r.Route("/certificates", deps.Certificates.Mount)
			r.Route("/faqs", deps.FAQs.Mount)
			r.Route("/skills", deps.Skills.Mount)
			r.Route("/tech-stacks", deps.TechStacks.Mount)
			r.Route("/packages", deps.Packages.Mount)
			r.Route("/banners", deps.Banners.Mount)
			r.Route("/experiences", deps.Experiences.Mount)

			r.Route("/settings", deps.Settings.Mount)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
