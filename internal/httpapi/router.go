// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package httpapi

import (
	"github.com/go-chi/chi/v5"

	"github.com/listkeeper/listkeeper/internal/auth"
	"github.com/listkeeper/listkeeper/internal/observability"
	"github.com/listkeeper/listkeeper/internal/todo"
)

// NewRouter wires the full API surface. metrics may be nil to disable
// request metrics (tests, metrics server turned off).
func NewRouter(sessions *auth.Service, todos *todo.Service, metrics *observability.Metrics) *chi.Mux {
	authHandler := NewAuthHandler(sessions)
	todoHandler := NewTodoHandler(todos)

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RecordMetrics(metrics))
	r.Use(Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Get("/validate-user", authHandler.ValidateUser)
		r.Get("/logout", authHandler.Logout)
	})

	r.Route("/todolist", func(r chi.Router) {
		r.Use(RequireAuth(sessions))

		r.Get("/", todoHandler.Lists)
		r.Post("/", todoHandler.CreateList)
		r.Post("/{id}", todoHandler.RenameList)
		r.Delete("/{id}", todoHandler.DeleteList)

		r.Get("/{id}/items", todoHandler.ListItems)
		r.Post("/{id}/items", todoHandler.CreateItem)
		r.Post("/{id}/items/{itemId}", todoHandler.UpdateItem)
		r.Delete("/{id}/items/{itemId}", todoHandler.DeleteItem)
	})

	return r
}
