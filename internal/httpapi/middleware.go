// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"

	"github.com/listkeeper/listkeeper/internal/auth"
	"github.com/listkeeper/listkeeper/internal/logging"
	"github.com/listkeeper/listkeeper/internal/observability"
)

type ctxKey int

const userKey ctxKey = iota

// UserFrom returns the authenticated user attached to ctx by RequireAuth,
// or nil on unauthenticated routes.
func UserFrom(ctx context.Context) *auth.User {
	user, _ := ctx.Value(userKey).(*auth.User)
	return user
}

func withUser(ctx context.Context, user *auth.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// RequestID assigns each request a ulid, attaches it to the logging
// context, and echoes it in the X-Request-Id response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ulid.Make().String()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}

// Recoverer converts a handler panic into the internal-error envelope.
// Panic details are logged and never serialized to the client.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value, compared by identity
					panic(rec)
				}
				slog.ErrorContext(r.Context(), "handler panic",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
				)
				respondFailure(w, http.StatusInternalServerError, msgInternalError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RecordMetrics observes completed requests on the given metrics. A nil
// metrics disables recording.
func RecordMetrics(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if metrics == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordRequest(route, r.Method, ww.Status(), time.Since(start))
		})
	}
}

// RequireAuth resolves the credential cookie to a live user before any
// resource logic runs and attaches the user to the request context. A
// missing, invalid, or expired credential short-circuits with the
// unauthorized envelope.
//
// roles is accepted for future per-route claim requirements but is not
// checked yet; every authenticated caller passes.
func RequireAuth(sessions *auth.Service, roles ...string) func(http.Handler) http.Handler {
	_ = roles
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := sessions.ResolveRequest(r)
			if err != nil {
				observability.RecordAuthFailure("unauthenticated")
				respondError(w, r, err, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
		})
	}
}
