// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

// Package auth provides credential issuance and session resolution:
// password verification on login, token minting, and resolving an inbound
// request's cookie back to a live user record.
package auth
