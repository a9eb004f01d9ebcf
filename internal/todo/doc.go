// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

// Package todo implements the ownership-scoped list/item service. Every
// mutation is gated on the authenticated caller owning the resource; a
// missing resource and a resource owned by someone else are deliberately
// the same outcome so callers cannot probe for existence.
package todo
