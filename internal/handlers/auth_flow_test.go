// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// auth_flow_test.go contains handler integration tests for the Auth handler
// methods: Login, TwoFASetup, TwoFAVerify, Logout, and Me. Tests exercise
// real database and Valkey connections; they are skipped when those
// services are unavailable.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"

	"foliopress/internal/models"
	"foliopress/internal/session"
)

// loginRequest posts credentials to Login and returns the recorder.
func loginRequest(env *testEnv, email, password string) *httptest.ResponseRecorder {
	body := `{"email":"` + email + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	env.Auth.Login(rec, req)
	return rec
}

// sessionCookie extracts the session cookie from a login response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	email := "login-flow@test.local"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })

	user, err := env.UserStore.Create(t.Context(), email, "correct-horse", "Flow Tester", models.RoleAdmin)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	t.Run("bad JSON body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/login", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		env.Auth.Login(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rec.Code)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := loginRequest(env, "nobody@test.local", "whatever")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rec.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := loginRequest(env, email, "wrong")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rec.Code)
		}
	})

	t.Run("valid credentials open a pre-2FA session", func(t *testing.T) {
		rec := loginRequest(env, email, "correct-horse")
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}

		var body struct {
			DisplayName string `json:"display_name"`
			NeedsSetup  bool   `json:"needs_setup"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.DisplayName != "Flow Tester" {
			t.Errorf("display_name: got %q", body.DisplayName)
		}
		if !body.NeedsSetup {
			t.Error("fresh account should need 2FA setup")
		}

		cookie := sessionCookie(t, rec)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		sess, err := env.Sessions.Get(t.Context(), req)
		if err != nil || sess == nil {
			t.Fatalf("session lookup: sess=%v err=%v", sess, err)
		}
		if sess.UserID != user.ID {
			t.Errorf("session user: got %s, want %s", sess.UserID, user.ID)
		}
		if sess.TwoFADone {
			t.Error("login must not mark 2FA as done")
		}
	})
}

func TestTwoFAFlow(t *testing.T) {
	env := newTestEnv(t)

	email := "twofa-flow@test.local"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })

	user, err := env.UserStore.Create(t.Context(), email, "correct-horse", "Flow Tester", models.RoleAdmin)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	loginRec := loginRequest(env, email, "correct-horse")
	cookie := sessionCookie(t, loginRec)
	sess := testSession(user.ID, email, "admin", false)

	t.Run("setup requires session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/2fa/setup", nil)
		rec := httptest.NewRecorder()
		env.Auth.TwoFASetup(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rec.Code)
		}
	})

	t.Run("verify before setup conflicts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/2fa/verify", strings.NewReader(`{"code":"000000"}`))
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		env.Auth.TwoFAVerify(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("status: got %d, want 409", rec.Code)
		}
	})

	var secret string
	t.Run("setup returns secret and QR code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/2fa/setup", nil)
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		rec := httptest.NewRecorder()
		env.Auth.TwoFASetup(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}

		var body struct {
			QRCode string `json:"qr_code"`
			Secret string `json:"secret"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Secret == "" {
			t.Error("secret should not be empty")
		}
		if body.QRCode == "" {
			t.Error("qr_code should not be empty")
		}
		secret = body.Secret
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/2fa/verify", strings.NewReader(`{"code":"000000"}`))
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		env.Auth.TwoFAVerify(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rec.Code)
		}
	})

	t.Run("valid code completes 2FA and enables TOTP", func(t *testing.T) {
		code, err := totp.GenerateCode(secret, time.Now())
		if err != nil {
			t.Fatalf("generate code: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/admin/api/2fa/verify", strings.NewReader(`{"code":"`+code+`"}`))
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		env.Auth.TwoFAVerify(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}

		// TOTP is now permanently enabled on the account.
		stored, err := env.UserStore.FindByID(t.Context(), user.ID)
		if err != nil || stored == nil {
			t.Fatalf("reload user: %v", err)
		}
		if !stored.TOTPEnabled {
			t.Error("TOTP should be enabled after first verification")
		}

		// The stored session is marked verified.
		getReq := httptest.NewRequest(http.MethodGet, "/", nil)
		getReq.AddCookie(cookie)
		updated, err := env.Sessions.Get(t.Context(), getReq)
		if err != nil || updated == nil {
			t.Fatalf("session lookup: %v", err)
		}
		if !updated.TwoFADone {
			t.Error("session should be marked TwoFADone after verify")
		}
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	email := "logout-flow@test.local"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })

	if _, err := env.UserStore.Create(t.Context(), email, "correct-horse", "Flow Tester", models.RoleEditor); err != nil {
		t.Fatalf("create user: %v", err)
	}

	loginRec := loginRequest(env, email, "correct-horse")
	cookie := sessionCookie(t, loginRec)

	req := httptest.NewRequest(http.MethodPost, "/admin/api/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.Auth.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}

	// The session must be gone from Valkey.
	getReq := httptest.NewRequest(http.MethodGet, "/", nil)
	getReq.AddCookie(cookie)
	sess, err := env.Sessions.Get(t.Context(), getReq)
	if err != nil {
		t.Fatalf("session lookup: %v", err)
	}
	if sess != nil {
		t.Error("session should be destroyed after logout")
	}

	// The cookie is expired on the response.
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge >= 0 {
			t.Error("logout should expire the session cookie")
		}
	}
}

func TestMe(t *testing.T) {
	t.Run("without session", func(t *testing.T) {
		auth := NewAuth(nil, nil)
		rec := httptest.NewRecorder()
		auth.Me(rec, httptest.NewRequest(http.MethodGet, "/admin/api/me", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rec.Code)
		}
	})

	t.Run("echoes session identity", func(t *testing.T) {
		auth := NewAuth(nil, nil)
		sess := testSession(uuid.New(), "me@test.local", "editor", true)

		req := httptest.NewRequest(http.MethodGet, "/admin/api/me", nil)
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		rec := httptest.NewRecorder()
		auth.Me(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rec.Code)
		}

		var body map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "me@test.local" {
			t.Errorf("email: got %v", body["email"])
		}
		if body["two_fa_done"] != true {
			t.Errorf("two_fa_done: got %v", body["two_fa_done"])
		}
	})
}
