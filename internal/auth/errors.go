// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package auth

import "errors"

// ErrNotFound is returned when a requested user does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned by Login for both an unknown email and a
// wrong password. The two cases share one error so callers cannot tell which
// check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized is returned when a request carries no credential, an
// invalid or expired credential, or a credential for a deleted account.
var ErrUnauthorized = errors.New("unauthorized")

// ErrEmailExists is returned when creating a user with an email that is
// already registered.
var ErrEmailExists = errors.New("email already registered")
