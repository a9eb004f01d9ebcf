// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/listkeeper/listkeeper/internal/auth"
	authmocks "github.com/listkeeper/listkeeper/internal/auth/mocks"
	"github.com/listkeeper/listkeeper/internal/todo"
)

func seedCommand(t *testing.T) (*bytes.Buffer, func(cfg *seedConfig, deps *seedDeps) error) {
	t.Helper()
	cmd := NewSeedCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetContext(context.Background())
	return &out, func(cfg *seedConfig, deps *seedDeps) error {
		return runSeed(cmd, cfg, deps)
	}
}

func TestRunSeed_CreatesUser(t *testing.T) {
	users := authmocks.NewMockUserRepository(t)
	hasher := authmocks.NewMockPasswordHasher(t)

	hasher.On("Hash", "s3cret").Return("phc-hash", nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *auth.User) bool {
		return u.Name == "Ada" && u.Email == "ada@example.com" &&
			u.PasswordHash == "phc-hash" && todo.ValidKey(u.ID)
	})).Return(nil)

	out, run := seedCommand(t)
	cfg := &seedConfig{name: "Ada", email: "ada@example.com", password: "s3cret", timeout: time.Second}

	require.NoError(t, run(cfg, &seedDeps{users: users, hasher: hasher}))
	assert.Contains(t, out.String(), "Created user")
}

func TestRunSeed_ExistingAccountIsSkipped(t *testing.T) {
	users := authmocks.NewMockUserRepository(t)
	hasher := authmocks.NewMockPasswordHasher(t)

	hasher.On("Hash", "s3cret").Return("phc-hash", nil)
	users.On("Create", mock.Anything, mock.Anything).Return(auth.ErrEmailExists)

	out, run := seedCommand(t)
	cfg := &seedConfig{name: "Ada", email: "ada@example.com", password: "s3cret", timeout: time.Second}

	require.NoError(t, run(cfg, &seedDeps{users: users, hasher: hasher}))
	assert.Contains(t, out.String(), "already exists")
}

func TestRunSeed_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		cfg  seedConfig
	}{
		{name: "empty name", cfg: seedConfig{email: "a@x.com", password: "pw"}},
		{name: "bad email", cfg: seedConfig{name: "Ada", email: "nope", password: "pw"}},
		{name: "empty password", cfg: seedConfig{name: "Ada", email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, run := seedCommand(t)
			cfg := tt.cfg
			cfg.timeout = time.Second
			err := run(&cfg, &seedDeps{
				users:  authmocks.NewMockUserRepository(t),
				hasher: authmocks.NewMockPasswordHasher(t),
			})
			assert.Error(t, err)
		})
	}
}
