// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

// Package httpapi exposes the list manager over a JSON HTTP API. It owns
// the response envelope, the authentication gate, request-shape validation,
// and the route table; all resource semantics live in the auth and todo
// services it delegates to.
package httpapi
