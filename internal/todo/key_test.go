// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package todo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listkeeper/listkeeper/internal/todo"
)

func TestNewKey(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		key := todo.NewKey()
		assert.Len(t, key, todo.KeyLength)
		assert.True(t, todo.ValidKey(key))
		assert.False(t, seen[key], "keys must not repeat")
		seen[key] = true
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "valid lowercase hex", key: "507f1f77bcf86cd799439011"},
		{name: "valid uppercase hex", key: "507F1F77BCF86CD799439011"},
		{name: "empty", key: "", wantErr: true},
		{name: "too short", key: "507f1f77", wantErr: true},
		{name: "too long", key: "507f1f77bcf86cd79943901100", wantErr: true},
		{name: "non-hex characters", key: "507f1f77bcf86cd79943901z", wantErr: true},
		{name: "right length but spaces", key: "507f1f77 bcf86cd79943901", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := todo.ParseKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, todo.ErrBadKey)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, got)
		})
	}
}
