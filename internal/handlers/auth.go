// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"foliopress/internal/middleware"
	"foliopress/internal/session"
	"foliopress/internal/store"
)

// totpIssuer is the issuer shown in authenticator apps.
const totpIssuer = "FolioPress"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		sessions:  sessions,
		userStore: userStore,
	}
}

// Login validates credentials and opens a session. The session starts with
// TwoFADone false; the client must complete the 2FA step before the admin
// API accepts it.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := a.userStore.FindByEmail(r.Context(), in.Email)
	if err != nil {
		respondInternal(w, "login lookup failed", err)
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, in.Password) {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	// TwoFADone starts as false — the operator must complete 2FA.
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		TwoFADone:   false,
	})
	if err != nil {
		respondInternal(w, "session create failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"display_name": user.DisplayName,
		"role":         user.Role,
		"needs_setup":  user.Needs2FASetup(),
	})
}

// TwoFASetup generates a TOTP secret for the logged-in operator and returns
// the otpauth QR code as a base64 PNG together with the secret for manual
// entry.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		respondInternal(w, "totp generate failed", err)
		return
	}

	if err := a.userStore.SetTOTPSecret(r.Context(), sess.UserID, key.Secret()); err != nil {
		respondInternal(w, "save totp secret failed", err)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		respondInternal(w, "qr code generation failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"qr_code": base64.StdEncoding.EncodeToString(qrPNG),
		"secret":  key.Secret(),
	})
}

// TwoFAVerify validates the TOTP code and completes authentication. On the
// first successful verification TOTP becomes permanently enabled for the
// account.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var in struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := a.userStore.FindByID(r.Context(), sess.UserID)
	if err != nil || user == nil {
		respondInternal(w, "user lookup for 2fa failed", err)
		return
	}

	if user.TOTPSecret == nil {
		respondError(w, http.StatusConflict, "two-factor setup required first")
		return
	}

	if !totp.Validate(in.Code, *user.TOTPSecret) {
		respondError(w, http.StatusUnauthorized, "invalid code")
		return
	}

	// First-time setup: enable TOTP in the database.
	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(r.Context(), user.ID); err != nil {
			respondInternal(w, "enable totp failed", err)
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		respondInternal(w, "session update failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"display_name": user.DisplayName,
		"role":         user.Role,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me returns the current session's operator identity. The admin frontend
// calls this on load to restore its auth state.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"email":        sess.Email,
		"display_name": sess.DisplayName,
		"role":         sess.Role,
		"two_fa_done":  sess.TwoFADone,
	})
}
