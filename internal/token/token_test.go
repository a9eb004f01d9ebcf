// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listkeeper/listkeeper/internal/token"
)

func TestNewCodec(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		ttl     time.Duration
		wantErr error
	}{
		{
			name:   "valid configuration",
			secret: "test-secret",
			ttl:    time.Hour,
		},
		{
			name:    "empty secret",
			secret:  "",
			ttl:     time.Hour,
			wantErr: token.ErrNoSecret,
		},
		{
			name:   "zero ttl",
			secret: "test-secret",
			ttl:    0,
		},
		{
			name:   "negative ttl",
			secret: "test-secret",
			ttl:    -time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := token.NewCodec(tt.secret, tt.ttl)
			if tt.secret != "" && tt.ttl > 0 {
				require.NoError(t, err)
				assert.NotNil(t, codec)
				assert.Equal(t, tt.ttl, codec.TTL())
				return
			}
			require.Error(t, err)
			assert.Nil(t, codec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := token.NewCodec("test-secret", time.Hour)
	require.NoError(t, err)

	identity := token.Identity{
		ID:    "65b1f0c2a9d3e84b7c1a2f30",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	}

	raw, err := codec.Mint(identity)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := codec.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, claims.UserID)
	assert.Equal(t, identity.Name, claims.Name)
	assert.Equal(t, identity.Email, claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestCodec_Verify_Invalid(t *testing.T) {
	codec, err := token.NewCodec("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("garbage input", func(t *testing.T) {
		claims, err := codec.Verify("not-a-token")
		require.Error(t, err)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := codec.Verify("")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := token.NewCodec("other-secret", time.Hour)
		require.NoError(t, err)

		raw, err := other.Mint(token.Identity{ID: "65b1f0c2a9d3e84b7c1a2f30"})
		require.NoError(t, err)

		_, err = codec.Verify(raw)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		short, err := token.NewCodec("test-secret", time.Millisecond)
		require.NoError(t, err)

		raw, err := short.Mint(token.Identity{ID: "65b1f0c2a9d3e84b7c1a2f30"})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = codec.Verify(raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		raw, err := codec.Mint(token.Identity{ID: "65b1f0c2a9d3e84b7c1a2f30"})
		require.NoError(t, err)

		tampered := raw[:len(raw)-2] + "xx"
		_, err = codec.Verify(tampered)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}

func TestCodec_Verify_NeverPanics(t *testing.T) {
	codec, err := token.NewCodec("test-secret", time.Hour)
	require.NoError(t, err)

	for _, raw := range []string{"", ".", "..", "a.b.c", "\x00\x01"} {
		_, err := codec.Verify(raw)
		assert.True(t, errors.Is(err, token.ErrInvalidToken), "input %q", raw)
	}
}
