// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package todo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/listkeeper/listkeeper/internal/auth"
	"github.com/listkeeper/listkeeper/internal/todo"
	"github.com/listkeeper/listkeeper/internal/todo/mocks"
)

var (
	owner    = &auth.User{ID: "65b1f0c2a9d3e84b7c1a2f30", Name: "Ada", Email: "ada@example.com"}
	stranger = &auth.User{ID: "65b1f0c2a9d3e84b7c1a2f31", Name: "Eve", Email: "eve@example.com"}
)

const (
	listID = "507f1f77bcf86cd799439011"
	itemID = "507f191e810c19729de860ea"
)

func newService(t *testing.T) (*todo.Service, *mocks.MockListRepository, *mocks.MockItemRepository) {
	t.Helper()
	lists := mocks.NewMockListRepository(t)
	items := mocks.NewMockItemRepository(t)
	svc, err := todo.NewService(lists, items)
	require.NoError(t, err)
	return svc, lists, items
}

func TestNewService_NilDependencies(t *testing.T) {
	svc, err := todo.NewService(nil, mocks.NewMockItemRepository(t))
	require.Error(t, err)
	assert.Nil(t, svc)

	svc, err = todo.NewService(mocks.NewMockListRepository(t), nil)
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestService_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only the caller's lists", func(t *testing.T) {
		svc, lists, _ := newService(t)
		want := []todo.List{{ID: listID, OwnerID: owner.ID, Name: "groceries"}}
		lists.On("ListByOwner", ctx, owner.ID).Return(want, nil)

		got, err := svc.Lists(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("nil user is unauthorized", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.Lists(ctx, nil)
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("store failure surfaces as internal", func(t *testing.T) {
		svc, lists, _ := newService(t)
		lists.On("ListByOwner", ctx, owner.ID).Return(nil, errors.New("connection refused"))

		_, err := svc.Lists(ctx, owner)
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrUnauthorized)
	})
}

func TestService_CreateList(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an owned list with a fresh key", func(t *testing.T) {
		svc, lists, _ := newService(t)
		lists.On("Create", ctx, mock.AnythingOfType("*todo.List")).Return(nil)

		list, err := svc.CreateList(ctx, owner, "groceries")
		require.NoError(t, err)
		assert.Equal(t, owner.ID, list.OwnerID)
		assert.Equal(t, "groceries", list.Name)
		assert.True(t, todo.ValidKey(list.ID))
		assert.False(t, list.CreatedAt.IsZero())
	})

	t.Run("nil user is unauthorized", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.CreateList(ctx, nil, "groceries")
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	})
}

func TestService_RenameList(t *testing.T) {
	ctx := context.Background()
	existing := &todo.List{ID: listID, OwnerID: owner.ID, Name: "groceries"}

	t.Run("owner can rename", func(t *testing.T) {
		svc, lists, _ := newService(t)
		lists.On("GetByID", ctx, listID).Return(existing, nil)
		lists.On("Rename", ctx, listID, "errands").Return(int64(1), nil)

		count, err := svc.RenameList(ctx, owner, listID, "errands")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing and not-owned are the same outcome", func(t *testing.T) {
		svc, lists, _ := newService(t)
		lists.On("GetByID", ctx, listID).Return(nil, todo.ErrNotFound).Once()
		lists.On("GetByID", ctx, listID).Return(existing, nil).Once()

		_, errMissing := svc.RenameList(ctx, owner, listID, "errands")
		_, errNotOwned := svc.RenameList(ctx, stranger, listID, "errands")

		assert.ErrorIs(t, errMissing, todo.ErrNotOwned)
		assert.ErrorIs(t, errNotOwned, todo.ErrNotOwned)
	})

	t.Run("malformed key never reaches the store", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.RenameList(ctx, owner, "not-hex", "errands")
		assert.ErrorIs(t, err, todo.ErrBadKey)
	})
}

func TestService_DeleteList(t *testing.T) {
	ctx := context.Background()
	existing := &todo.List{ID: listID, OwnerID: owner.ID, Name: "groceries"}

	t.Run("cascades to items after ownership passes", func(t *testing.T) {
		svc, lists, items := newService(t)
		lists.On("GetByID", ctx, listID).Return(existing, nil)
		lists.On("Delete", ctx, listID).Return(int64(1), nil)
		items.On("DeleteByList", ctx, listID).Return(int64(7), nil)

		count, err := svc.DeleteList(ctx, owner, listID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, "reported count is lists deleted, not items")
	})

	t.Run("stranger cannot delete and no store mutation occurs", func(t *testing.T) {
		svc, lists, items := newService(t)
		lists.On("GetByID", ctx, listID).Return(existing, nil)

		_, err := svc.DeleteList(ctx, stranger, listID)
		assert.ErrorIs(t, err, todo.ErrNotOwned)
		lists.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		items.AssertNotCalled(t, "DeleteByList", mock.Anything, mock.Anything)
	})

	t.Run("item cascade failure surfaces", func(t *testing.T) {
		svc, lists, items := newService(t)
		lists.On("GetByID", ctx, listID).Return(existing, nil)
		lists.On("Delete", ctx, listID).Return(int64(1), nil)
		items.On("DeleteByList", ctx, listID).Return(int64(0), errors.New("connection refused"))

		_, err := svc.DeleteList(ctx, owner, listID)
		require.Error(t, err)
	})
}

func TestService_ListItems(t *testing.T) {
	ctx := context.Background()

	t.Run("returns items by list id without an owner check", func(t *testing.T) {
		svc, _, items := newService(t)
		want := []todo.Item{{ID: itemID, ListID: listID, OwnerID: owner.ID, Title: "milk"}}
		items.On("ListByList", ctx, listID).Return(want, nil)

		got, err := svc.ListItems(ctx, listID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("malformed list key is a request error", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.ListItems(ctx, "zz")
		assert.ErrorIs(t, err, todo.ErrBadKey)
	})
}

func TestService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("creates item owned by caller, not completed", func(t *testing.T) {
		svc, lists, items := newService(t)
		items.On("Create", ctx, mock.AnythingOfType("*todo.Item")).Return(nil)

		item, err := svc.CreateItem(ctx, owner, listID, "milk", "two liters")
		require.NoError(t, err)
		assert.Equal(t, listID, item.ListID)
		assert.Equal(t, owner.ID, item.OwnerID)
		assert.Equal(t, "milk", item.Title)
		assert.Equal(t, "two liters", item.Detail)
		assert.False(t, item.Completed)
		assert.True(t, todo.ValidKey(item.ID))

		// The list itself is never fetched; insertion does not verify the
		// parent exists or is owned by the caller.
		lists.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("nil user is unauthorized", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.CreateItem(ctx, nil, listID, "milk", "")
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("malformed list key is rejected before the store", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.CreateItem(ctx, owner, "507f1f77", "milk", "")
		assert.ErrorIs(t, err, todo.ErrBadKey)
	})
}

func TestService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	existing := &todo.Item{ID: itemID, ListID: listID, OwnerID: owner.ID, Title: "milk", Detail: "one liter"}

	boolPtr := func(b bool) *bool { return &b }

	t.Run("owner applies a partial patch", func(t *testing.T) {
		svc, _, items := newService(t)
		patch := todo.ItemPatch{Completed: boolPtr(false)}
		items.On("GetByID", ctx, itemID).Return(existing, nil)
		items.On("Update", ctx, itemID, patch).Return(int64(1), nil)

		count, err := svc.UpdateItem(ctx, owner, itemID, patch)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("empty patch modifies nothing and reports zero", func(t *testing.T) {
		svc, _, items := newService(t)
		items.On("GetByID", ctx, itemID).Return(existing, nil)

		count, err := svc.UpdateItem(ctx, owner, itemID, todo.ItemPatch{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
		items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing and not-owned are the same outcome", func(t *testing.T) {
		svc, _, items := newService(t)
		items.On("GetByID", ctx, itemID).Return(nil, todo.ErrNotFound).Once()
		items.On("GetByID", ctx, itemID).Return(existing, nil).Once()

		_, errMissing := svc.UpdateItem(ctx, owner, itemID, todo.ItemPatch{Title: "bread"})
		_, errNotOwned := svc.UpdateItem(ctx, stranger, itemID, todo.ItemPatch{Title: "bread"})

		assert.ErrorIs(t, errMissing, todo.ErrNotOwned)
		assert.ErrorIs(t, errNotOwned, todo.ErrNotOwned)
	})
}

func TestService_DeleteItem(t *testing.T) {
	ctx := context.Background()
	existing := &todo.Item{ID: itemID, ListID: listID, OwnerID: owner.ID, Title: "milk"}

	t.Run("owner deletes", func(t *testing.T) {
		svc, _, items := newService(t)
		items.On("GetByID", ctx, itemID).Return(existing, nil)
		items.On("Delete", ctx, itemID).Return(int64(1), nil)

		count, err := svc.DeleteItem(ctx, owner, itemID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("stranger gets the merged outcome, nothing deleted", func(t *testing.T) {
		svc, _, items := newService(t)
		items.On("GetByID", ctx, itemID).Return(existing, nil)

		_, err := svc.DeleteItem(ctx, stranger, itemID)
		assert.ErrorIs(t, err, todo.ErrNotOwned)
		items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("malformed key is rejected before the store", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.DeleteItem(ctx, owner, "xyz")
		assert.ErrorIs(t, err, todo.ErrBadKey)
	})
}

func TestItemPatch_IsZero(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	assert.True(t, todo.ItemPatch{}.IsZero())
	assert.False(t, todo.ItemPatch{Title: "x"}.IsZero())
	assert.False(t, todo.ItemPatch{Detail: "x"}.IsZero())
	assert.False(t, todo.ItemPatch{Completed: boolPtr(false)}.IsZero(),
		"explicit false still counts as a change")
}
