// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCmdMigrator implements Migrator for command tests.
type fakeCmdMigrator struct {
	upErr      error
	downErr    error
	version    uint
	dirty      bool
	versionErr error

	upCalled    bool
	downCalled  bool
	closeCalled bool
}

func (f *fakeCmdMigrator) Up() error   { f.upCalled = true; return f.upErr }
func (f *fakeCmdMigrator) Down() error { f.downCalled = true; return f.downErr }
func (f *fakeCmdMigrator) Version() (uint, bool, error) {
	return f.version, f.dirty, f.versionErr
}
func (f *fakeCmdMigrator) Close() error { f.closeCalled = true; return nil }

// withFakeMigrator swaps the migrator factory for the duration of a test.
func withFakeMigrator(t *testing.T, fake *fakeCmdMigrator) {
	t.Helper()
	orig := newMigrator
	newMigrator = func(string) (Migrator, error) { return fake, nil }
	t.Cleanup(func() { newMigrator = orig })
}

func runMigrateSubcommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewMigrateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateUp(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/listkeeper")
	fake := &fakeCmdMigrator{}
	withFakeMigrator(t, fake)

	out, err := runMigrateSubcommand(t, "up")
	require.NoError(t, err)
	assert.True(t, fake.upCalled)
	assert.True(t, fake.closeCalled)
	assert.Contains(t, out, "Migrations applied")
}

func TestMigrateUp_Error(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/listkeeper")
	fake := &fakeCmdMigrator{upErr: errors.New("boom")}
	withFakeMigrator(t, fake)

	_, err := runMigrateSubcommand(t, "up")
	require.Error(t, err)
	assert.True(t, fake.closeCalled, "migrator must be closed on failure")
}

func TestMigrateDown(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/listkeeper")
	fake := &fakeCmdMigrator{}
	withFakeMigrator(t, fake)

	out, err := runMigrateSubcommand(t, "down")
	require.NoError(t, err)
	assert.True(t, fake.downCalled)
	assert.Contains(t, out, "Migrations rolled back")
}

func TestMigrateStatus(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/listkeeper")

	t.Run("no migrations", func(t *testing.T) {
		withFakeMigrator(t, &fakeCmdMigrator{version: 0})
		out, err := runMigrateSubcommand(t, "status")
		require.NoError(t, err)
		assert.Contains(t, out, "No migrations applied")
	})

	t.Run("reports version and dirty flag", func(t *testing.T) {
		withFakeMigrator(t, &fakeCmdMigrator{version: 2, dirty: true})
		out, err := runMigrateSubcommand(t, "status")
		require.NoError(t, err)
		assert.Contains(t, out, "Version: 2 (dirty: true)")
	})
}

func TestMigrate_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	withFakeMigrator(t, &fakeCmdMigrator{})

	_, err := runMigrateSubcommand(t, "up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database-url")
}
