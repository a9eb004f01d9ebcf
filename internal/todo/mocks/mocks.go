// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

// Package mocks provides testify mocks for the todo package interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/listkeeper/listkeeper/internal/todo"
)

// MockListRepository is a mock implementation of todo.ListRepository.
type MockListRepository struct {
	mock.Mock
}

// NewMockListRepository creates a new MockListRepository with cleanup-time
// expectation assertion.
func NewMockListRepository(t *testing.T) *MockListRepository {
	m := &MockListRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockListRepository) Create(ctx context.Context, list *todo.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) GetByID(ctx context.Context, id string) (*todo.List, error) {
	args := m.Called(ctx, id)
	if l := args.Get(0); l != nil {
		return l.(*todo.List), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListRepository) ListByOwner(ctx context.Context, ownerID string) ([]todo.List, error) {
	args := m.Called(ctx, ownerID)
	if l := args.Get(0); l != nil {
		return l.([]todo.List), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListRepository) Rename(ctx context.Context, id, name string) (int64, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockItemRepository is a mock implementation of todo.ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

// NewMockItemRepository creates a new MockItemRepository with cleanup-time
// expectation assertion.
func NewMockItemRepository(t *testing.T) *MockItemRepository {
	m := &MockItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockItemRepository) Create(ctx context.Context, item *todo.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id string) (*todo.Item, error) {
	args := m.Called(ctx, id)
	if i := args.Get(0); i != nil {
		return i.(*todo.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) ListByList(ctx context.Context, listID string) ([]todo.Item, error) {
	args := m.Called(ctx, listID)
	if i := args.Get(0); i != nil {
		return i.([]todo.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, id string, patch todo.ItemPatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) DeleteByList(ctx context.Context, listID string) (int64, error) {
	args := m.Called(ctx, listID)
	return args.Get(0).(int64), args.Error(1)
}

// Compile-time interface checks.
var (
	_ todo.ListRepository = (*MockListRepository)(nil)
	_ todo.ItemRepository = (*MockItemRepository)(nil)
)
