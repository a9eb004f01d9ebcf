// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package todo

import "errors"

// ErrNotFound is returned by repositories when a list or item does not exist.
var ErrNotFound = errors.New("not found")

// ErrNotOwned is the merged failure for "resource missing" and "resource
// owned by someone else". One sentinel, one code path: the two cases must
// stay indistinguishable so existence cannot be inferred.
var ErrNotOwned = errors.New("resource missing or not owned")

// ErrBadKey is returned for identifiers that are not well-formed store keys.
var ErrBadKey = errors.New("malformed resource key")
