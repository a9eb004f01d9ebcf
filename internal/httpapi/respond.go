// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/listkeeper/listkeeper/internal/auth"
	"github.com/listkeeper/listkeeper/internal/todo"
)

// Messages returned to clients. Several are shared across distinct failure
// causes on purpose: the merged wording is part of the API contract and
// keeps resource existence unobservable.
const (
	msgUnauthorized     = "User unauthorized."
	msgInvalidPassword  = "The provided value for the password is invalid"
	msgBadKey           = "The provided value for the id is invalid"
	msgListUpdateFailed = "Something went wrong while updating the list."
	msgListDeleteFailed = "Something went wrong while deleting the list and its items."
	msgInternalError    = "Internal Server Error"
	msgInvalidPayload   = "The request payload is invalid"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failureEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// respondSuccess writes the success envelope with HTTP 200.
func respondSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

// respondFailure writes the failure envelope with the given status.
func respondFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, failureEnvelope{Error: true, Message: message})
}

// respondError maps a service error onto the failure envelope.
// notOwnedMessage is the client-facing wording for the merged
// missing-or-not-owned outcome, which varies by operation.
func respondError(w http.ResponseWriter, r *http.Request, err error, notOwnedMessage string) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondFailure(w, http.StatusUnauthorized, msgInvalidPassword)
	case errors.Is(err, auth.ErrUnauthorized):
		respondFailure(w, http.StatusBadRequest, msgUnauthorized)
	case errors.Is(err, todo.ErrBadKey):
		respondFailure(w, http.StatusBadRequest, msgBadKey)
	case errors.Is(err, todo.ErrNotOwned):
		respondFailure(w, http.StatusBadRequest, notOwnedMessage)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		respondFailure(w, http.StatusInternalServerError, msgInternalError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Debug("failed to write response body", "error", err)
	}
}
