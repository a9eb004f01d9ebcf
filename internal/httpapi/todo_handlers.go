// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/listkeeper/listkeeper/internal/todo"
)

// TodoHandler serves the list and item endpoints. Every route is behind
// RequireAuth, so UserFrom always yields the caller.
type TodoHandler struct {
	todos *todo.Service
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(todos *todo.Service) *TodoHandler {
	return &TodoHandler{todos: todos}
}

type listNameRequest struct {
	Name string `json:"name"`
}

type itemCreateRequest struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type itemUpdateRequest struct {
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	Completed *bool  `json:"completed"`
}

// Lists returns every list owned by the caller.
func (h *TodoHandler) Lists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.todos.Lists(r.Context(), UserFrom(r.Context()))
	if err != nil {
		respondError(w, r, err, msgUnauthorized)
		return
	}
	respondSuccess(w, lists)
}

// CreateList inserts a new list owned by the caller.
func (h *TodoHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req listNameRequest
	if err := decodeBody(r, listNameSchema, &req); err != nil {
		slog.DebugContext(r.Context(), "rejected list payload", "error", err)
		respondFailure(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	list, err := h.todos.CreateList(r.Context(), UserFrom(r.Context()), req.Name)
	if err != nil {
		respondError(w, r, err, msgUnauthorized)
		return
	}
	respondSuccess(w, list)
}

// RenameList renames a list the caller owns and returns the modified count.
func (h *TodoHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	var req listNameRequest
	if err := decodeBody(r, listNameSchema, &req); err != nil {
		slog.DebugContext(r.Context(), "rejected list payload", "error", err)
		respondFailure(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	count, err := h.todos.RenameList(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		respondError(w, r, err, msgListUpdateFailed)
		return
	}
	respondSuccess(w, count)
}

// DeleteList deletes a list the caller owns along with all its items and
// returns the deleted-list count.
func (h *TodoHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	count, err := h.todos.DeleteList(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err, msgListDeleteFailed)
		return
	}
	respondSuccess(w, count)
}

// ListItems returns every item in a list.
func (h *TodoHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.todos.ListItems(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err, msgUnauthorized)
		return
	}
	respondSuccess(w, items)
}

// CreateItem inserts a new item into a list with the caller as owner.
func (h *TodoHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemCreateRequest
	if err := decodeBody(r, itemCreateSchema, &req); err != nil {
		slog.DebugContext(r.Context(), "rejected item payload", "error", err)
		respondFailure(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	item, err := h.todos.CreateItem(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"), req.Title, req.Detail)
	if err != nil {
		respondError(w, r, err, msgUnauthorized)
		return
	}
	respondSuccess(w, item)
}

// UpdateItem applies a partial update to an item the caller owns and
// returns the modified count.
func (h *TodoHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req itemUpdateRequest
	if err := decodeBody(r, itemUpdateSchema, &req); err != nil {
		slog.DebugContext(r.Context(), "rejected item payload", "error", err)
		respondFailure(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	patch := todo.ItemPatch{
		Title:     req.Title,
		Detail:    req.Detail,
		Completed: req.Completed,
	}
	count, err := h.todos.UpdateItem(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "itemId"), patch)
	if err != nil {
		respondError(w, r, err, msgUnauthorized)
		return
	}
	respondSuccess(w, count)
}

// DeleteItem deletes a single item the caller owns and returns the deleted
// count.
func (h *TodoHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	count, err := h.todos.DeleteItem(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "itemId"))
	if err != nil {
		respondError(w, r, err, msgUnauthorized)
		return
	}
	respondSuccess(w, count)
}
