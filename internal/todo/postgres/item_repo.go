// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/listkeeper/listkeeper/internal/todo"
)

// ItemRepository implements todo.ItemRepository using PostgreSQL.
type ItemRepository struct {
	db DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create stores a new item.
func (r *ItemRepository) Create(ctx context.Context, item *todo.Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO items (id, list_id, owner_id, title, detail, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		item.ID,
		item.ListID,
		item.OwnerID,
		item.Title,
		item.Detail,
		item.Completed,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return oops.Code("ITEM_CREATE_FAILED").
			With("operation", "insert item").
			With("item_id", item.ID).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves an item by ID.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*todo.Item, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, list_id, owner_id, title, detail, completed, created_at, updated_at
		FROM items
		WHERE id = $1
	`, id)

	var i todo.Item
	err := row.Scan(&i.ID, &i.ListID, &i.OwnerID, &i.Title, &i.Detail, &i.Completed, &i.CreatedAt, &i.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ITEM_NOT_FOUND").
			With("item_id", id).
			Wrap(todo.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ITEM_GET_BY_ID_FAILED").
			With("operation", "get item by id").
			With("item_id", id).
			Wrap(err)
	}
	return &i, nil
}

// ListByList retrieves all items in a list, oldest first.
func (r *ItemRepository) ListByList(ctx context.Context, listID string) ([]todo.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, list_id, owner_id, title, detail, completed, created_at, updated_at
		FROM items
		WHERE list_id = $1
		ORDER BY created_at
	`, listID)
	if err != nil {
		return nil, oops.Code("ITEM_QUERY_FAILED").
			With("operation", "list items").
			With("list_id", listID).
			Wrap(err)
	}
	defer rows.Close()

	items := []todo.Item{}
	for rows.Next() {
		var i todo.Item
		if err := rows.Scan(&i.ID, &i.ListID, &i.OwnerID, &i.Title, &i.Detail, &i.Completed, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, oops.Code("ITEM_SCAN_FAILED").
				With("operation", "scan item row").
				Wrap(err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("ITEM_QUERY_FAILED").
			With("operation", "iterate items").
			Wrap(err)
	}
	return items, nil
}

// Update applies a patch to an item and returns the modified count. Only
// the fields the patch actually sets appear in the statement.
func (r *ItemRepository) Update(ctx context.Context, id string, patch todo.ItemPatch) (int64, error) {
	if patch.IsZero() {
		return 0, nil
	}

	set := []string{}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != "" {
		appendSet("title", patch.Title)
	}
	if patch.Detail != "" {
		appendSet("detail", patch.Detail)
	}
	if patch.Completed != nil {
		appendSet("completed", *patch.Completed)
	}
	appendSet("updated_at", time.Now())

	//nolint:gosec // G201: column names are fixed strings, values are bound parameters.
	query := fmt.Sprintf(`UPDATE items SET %s WHERE id = $1`, strings.Join(set, ", "))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, oops.Code("ITEM_UPDATE_FAILED").
			With("operation", "update item").
			With("item_id", id).
			Wrap(err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a single item and returns the deleted count.
func (r *ItemRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM items WHERE id = $1
	`, id)
	if err != nil {
		return 0, oops.Code("ITEM_DELETE_FAILED").
			With("operation", "delete item").
			With("item_id", id).
			Wrap(err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByList removes every item in a list and returns the deleted count.
func (r *ItemRepository) DeleteByList(ctx context.Context, listID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM items WHERE list_id = $1
	`, listID)
	if err != nil {
		return 0, oops.Code("ITEM_DELETE_BY_LIST_FAILED").
			With("operation", "delete items by list").
			With("list_id", listID).
			Wrap(err)
	}
	return tag.RowsAffected(), nil
}

// Compile-time interface check.
var _ todo.ItemRepository = (*ItemRepository)(nil)
