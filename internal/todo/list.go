// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package todo

import (
	"context"
	"time"
)

// List is a named collection of items owned by exactly one user. OwnerID
// never changes after creation.
type List struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListRepository manages list persistence.
type ListRepository interface {
	// Create stores a new list.
	Create(ctx context.Context, list *List) error

	// GetByID retrieves a list by ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*List, error)

	// ListByOwner retrieves all lists owned by a user.
	ListByOwner(ctx context.Context, ownerID string) ([]List, error)

	// Rename updates a list's name and returns the modified count.
	Rename(ctx context.Context, id, name string) (int64, error)

	// Delete removes a list and returns the deleted count.
	Delete(ctx context.Context, id string) (int64, error)
}
