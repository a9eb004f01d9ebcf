// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

// Package postgres implements the todo repositories on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/listkeeper/listkeeper/internal/todo"
)

// DB is the subset of pgxpool.Pool the repositories use. pgxmock satisfies
// it for tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ListRepository implements todo.ListRepository using PostgreSQL.
type ListRepository struct {
	db DB
}

// NewListRepository creates a new ListRepository.
func NewListRepository(db DB) *ListRepository {
	return &ListRepository{db: db}
}

// Create stores a new list.
func (r *ListRepository) Create(ctx context.Context, list *todo.List) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO lists (id, owner_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		list.ID,
		list.OwnerID,
		list.Name,
		list.CreatedAt,
		list.UpdatedAt,
	)
	if err != nil {
		return oops.Code("LIST_CREATE_FAILED").
			With("operation", "insert list").
			With("list_id", list.ID).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves a list by ID.
func (r *ListRepository) GetByID(ctx context.Context, id string) (*todo.List, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, created_at, updated_at
		FROM lists
		WHERE id = $1
	`, id)

	var l todo.List
	err := row.Scan(&l.ID, &l.OwnerID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("LIST_NOT_FOUND").
			With("list_id", id).
			Wrap(todo.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("LIST_GET_BY_ID_FAILED").
			With("operation", "get list by id").
			With("list_id", id).
			Wrap(err)
	}
	return &l, nil
}

// ListByOwner retrieves all lists owned by a user, oldest first.
func (r *ListRepository) ListByOwner(ctx context.Context, ownerID string) ([]todo.List, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, created_at, updated_at
		FROM lists
		WHERE owner_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, oops.Code("LIST_QUERY_FAILED").
			With("operation", "list by owner").
			With("owner_id", ownerID).
			Wrap(err)
	}
	defer rows.Close()

	lists := []todo.List{}
	for rows.Next() {
		var l todo.List
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, oops.Code("LIST_SCAN_FAILED").
				With("operation", "scan list row").
				Wrap(err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("LIST_QUERY_FAILED").
			With("operation", "iterate lists").
			Wrap(err)
	}
	return lists, nil
}

// Rename updates a list's name and returns the modified count.
func (r *ListRepository) Rename(ctx context.Context, id, name string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE lists SET name = $2, updated_at = $3
		WHERE id = $1
	`, id, name, time.Now())
	if err != nil {
		return 0, oops.Code("LIST_RENAME_FAILED").
			With("operation", "rename list").
			With("list_id", id).
			Wrap(err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a list and returns the deleted count.
func (r *ListRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM lists WHERE id = $1
	`, id)
	if err != nil {
		return 0, oops.Code("LIST_DELETE_FAILED").
			With("operation", "delete list").
			With("list_id", id).
			Wrap(err)
	}
	return tag.RowsAffected(), nil
}

// Compile-time interface check.
var _ todo.ListRepository = (*ListRepository)(nil)
