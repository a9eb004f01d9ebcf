// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package todo

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/samber/oops"
)

// KeyLength is the length of a store key: 12 random bytes hex-encoded.
const KeyLength = 24

// NewKey mints a new store key.
func NewKey() string {
	var b [KeyLength / 2]byte
	// rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// ParseKey validates that s is a well-formed store key. Malformed keys are a
// request error and must never reach the store as lookup arguments.
func ParseKey(s string) (string, error) {
	if len(s) != KeyLength {
		return "", oops.Code("TODO_BAD_KEY").
			With("key", s).
			Wrap(ErrBadKey)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", oops.Code("TODO_BAD_KEY").
			With("key", s).
			Wrap(ErrBadKey)
	}
	return s, nil
}

// ValidKey reports whether s is a well-formed store key.
func ValidKey(s string) bool {
	_, err := ParseKey(s)
	return err == nil
}
