// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package todo

import (
	"context"
	"errors"
	"time"

	"github.com/samber/oops"

	"github.com/listkeeper/listkeeper/internal/auth"
)

// Service implements the ownership-scoped operations over lists and items.
type Service struct {
	lists ListRepository
	items ItemRepository
}

// NewService creates a Service.
func NewService(lists ListRepository, items ItemRepository) (*Service, error) {
	if lists == nil {
		return nil, oops.Code("TODO_BAD_DEPS").Errorf("list repository is required")
	}
	if items == nil {
		return nil, oops.Code("TODO_BAD_DEPS").Errorf("item repository is required")
	}
	return &Service{lists: lists, items: items}, nil
}

// Lists returns every list owned by the caller.
func (s *Service) Lists(ctx context.Context, user *auth.User) ([]List, error) {
	if user == nil {
		return nil, oops.Code("TODO_UNAUTHORIZED").Wrap(auth.ErrUnauthorized)
	}

	lists, err := s.lists.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, oops.Code("LIST_QUERY_FAILED").
			With("operation", "list by owner").
			With("owner_id", user.ID).
			Wrap(err)
	}
	return lists, nil
}

// CreateList inserts a new list owned by the caller. Names are not unique.
func (s *Service) CreateList(ctx context.Context, user *auth.User, name string) (*List, error) {
	if user == nil {
		return nil, oops.Code("TODO_UNAUTHORIZED").Wrap(auth.ErrUnauthorized)
	}

	now := time.Now()
	list := &List{
		ID:        NewKey(),
		OwnerID:   user.ID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, oops.Code("LIST_CREATE_FAILED").
			With("operation", "insert list").
			With("owner_id", user.ID).
			Wrap(err)
	}
	return list, nil
}

// RenameList renames a list the caller owns and returns the modified count.
func (s *Service) RenameList(ctx context.Context, user *auth.User, id, name string) (int64, error) {
	if user == nil {
		return 0, oops.Code("TODO_UNAUTHORIZED").Wrap(auth.ErrUnauthorized)
	}
	if _, err := ParseKey(id); err != nil {
		return 0, err
	}

	if err := s.ownList(ctx, user, id); err != nil {
		return 0, err
	}

	count, err := s.lists.Rename(ctx, id, name)
	if err != nil {
		return 0, oops.Code("LIST_RENAME_FAILED").
			With("operation", "rename list").
			With("list_id", id).
			Wrap(err)
	}
	return count, nil
}

// DeleteList deletes a list the caller owns, then every item in it, and
// returns the deleted-list count. Item removal is unconditional once the
// parent's ownership is established; items inherit trust from the verified
// list and are not individually owner-checked.
func (s *Service) DeleteList(ctx context.Context, user *auth.User, id string) (int64, error) {
	if user == nil {
		return 0, oops.Code("TODO_UNAUTHORIZED").Wrap(auth.ErrUnauthorized)
	}
	if _, err := ParseKey(id); err != nil {
		return 0, err
	}

	if err := s.ownList(ctx, user, id); err != nil {
		return 0, err
	}

	count, err := s.lists.Delete(ctx, id)
	if err != nil {
		return 0, oops.Code("LIST_DELETE_FAILED").
			With("operation", "delete list").
			With("list_id", id).
			Wrap(err)
	}

	if _, err := s.items.DeleteByList(ctx, id); err != nil {
		return 0, oops.Code("LIST_DELETE_FAILED").
			With("operation", "delete list items").
			With("list_id", id).
			Wrap(err)
	}

	return count, nil
}

// ListItems returns every item in a list. The caller's ownership of the
// list is not checked here; reads are scoped by list id only.
func (s *Service) ListItems(ctx context.Context, listID string) ([]Item, error) {
	if _, err := ParseKey(listID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByList(ctx, listID)
	if err != nil {
		return nil, oops.Code("ITEM_QUERY_FAILED").
			With("operation", "list items").
			With("list_id", listID).
			Wrap(err)
	}
	return items, nil
}

// CreateItem inserts a new item into a list with the caller as owner and
// completed false. The list's existence and ownership are not verified
// before insertion.
func (s *Service) CreateItem(ctx context.Context, user *auth.User, listID, title, detail string) (*Item, error) {
	if user == nil {
		return nil, oops.Code("TODO_UNAUTHORIZED").Wrap(auth.ErrUnauthorized)
	}
	if _, err := ParseKey(listID); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &Item{
		ID:        NewKey(),
		ListID:    listID,
		OwnerID:   user.ID,
		Title:     title,
		Detail:    detail,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, oops.Code("ITEM_CREATE_FAILED").
			With("operation", "insert item").
			With("list_id", listID).
			Wrap(err)
	}
	return item, nil
}

// UpdateItem applies a partial update to an item the caller owns and returns
// the modified count. An empty patch modifies nothing and reports zero.
func (s *Service) UpdateItem(ctx context.Context, user *auth.User, itemID string, patch ItemPatch) (int64, error) {
	if user == nil {
		return 0, oops.Code("TODO_UNAUTHORIZED").Wrap(auth.ErrUnauthorized)
	}
	if _, err := ParseKey(itemID); err != nil {
		return 0, err
	}

	if err := s.ownItem(ctx, user, itemID); err != nil {
		return 0, err
	}

	if patch.IsZero() {
		return 0, nil
	}

	count, err := s.items.Update(ctx, itemID, patch)
	if err != nil {
		return 0, oops.Code("ITEM_UPDATE_FAILED").
			With("operation", "update item").
			With("item_id", itemID).
			Wrap(err)
	}
	return count, nil
}

// DeleteItem deletes a single item the caller owns and returns the deleted
// count.
func (s *Service) DeleteItem(ctx context.Context, user *auth.User, itemID string) (int64, error) {
	if user == nil {
		return 0, oops.Code("TODO_UNAUTHORIZED").Wrap(auth.ErrUnauthorized)
	}
	if _, err := ParseKey(itemID); err != nil {
		return 0, err
	}

	if err := s.ownItem(ctx, user, itemID); err != nil {
		return 0, err
	}

	count, err := s.items.Delete(ctx, itemID)
	if err != nil {
		return 0, oops.Code("ITEM_DELETE_FAILED").
			With("operation", "delete item").
			With("item_id", itemID).
			Wrap(err)
	}
	return count, nil
}

// ownList is the single merged existence+ownership check for lists. A miss
// and an ownership mismatch produce the same ErrNotOwned.
func (s *Service) ownList(ctx context.Context, user *auth.User, id string) error {
	list, err := s.lists.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return oops.Code("LIST_FETCH_FAILED").
			With("operation", "get list by id").
			With("list_id", id).
			Wrap(err)
	}
	if err != nil || list.OwnerID != user.ID {
		return oops.Code("LIST_NOT_OWNED").
			With("list_id", id).
			Wrap(ErrNotOwned)
	}
	return nil
}

// ownItem is the single merged existence+ownership check for items.
func (s *Service) ownItem(ctx context.Context, user *auth.User, id string) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return oops.Code("ITEM_FETCH_FAILED").
			With("operation", "get item by id").
			With("item_id", id).
			Wrap(err)
	}
	if err != nil || item.OwnerID != user.ID {
		return oops.Code("ITEM_NOT_OWNED").
			With("item_id", id).
			Wrap(ErrNotOwned)
	}
	return nil
}
