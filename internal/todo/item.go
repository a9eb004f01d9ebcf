// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package todo

import (
	"context"
	"time"
)

// Item is a single entry scoped to one list. OwnerID is denormalized onto
// the item at creation so ownership checks never need the parent list.
type Item struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemPatch describes a partial item update. Title and Detail apply only
// when non-empty; an empty string means "leave unchanged". Completed applies
// whenever the pointer is set, so an explicit false is honored.
type ItemPatch struct {
	Title     string
	Detail    string
	Completed *bool
}

// IsZero reports whether the patch changes nothing.
func (p ItemPatch) IsZero() bool {
	return p.Title == "" && p.Detail == "" && p.Completed == nil
}

// ItemRepository manages item persistence.
type ItemRepository interface {
	// Create stores a new item.
	Create(ctx context.Context, item *Item) error

	// GetByID retrieves an item by ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*Item, error)

	// ListByList retrieves all items in a list.
	ListByList(ctx context.Context, listID string) ([]Item, error)

	// Update applies a patch to an item and returns the modified count.
	Update(ctx context.Context, id string, patch ItemPatch) (int64, error)

	// Delete removes a single item and returns the deleted count.
	Delete(ctx context.Context, id string) (int64, error)

	// DeleteByList removes every item in a list and returns the deleted count.
	DeleteByList(ctx context.Context, listID string) (int64, error)
}
