// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/listkeeper/listkeeper/internal/auth"
	"github.com/listkeeper/listkeeper/internal/observability"
)

// AuthHandler serves the session endpoints: login, validate-user, logout.
type AuthHandler struct {
	sessions *auth.Service
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(sessions *auth.Service) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies a credential pair, sets the session cookie, and returns
// the minted token as data. The cookie max-age mirrors the token TTL.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, loginSchema, &req); err != nil {
		slog.DebugContext(r.Context(), "rejected login payload", "error", err)
		respondFailure(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	minted, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			observability.RecordAuthFailure("bad_credentials")
		}
		respondError(w, r, err, msgUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessions.CookieName(),
		Value:    minted,
		Path:     "/",
		MaxAge:   h.sessions.TokenTTL(),
		HttpOnly: true,
	})
	respondSuccess(w, minted)
}

// ValidateUser resolves the session cookie to the caller's user record.
func (h *AuthHandler) ValidateUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.ResolveRequest(r)
	if err != nil {
		observability.RecordAuthFailure("bad_token")
		respondError(w, r, err, msgUnauthorized)
		return
	}
	respondSuccess(w, user)
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessions.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondSuccess(w, map[string]any{})
}
