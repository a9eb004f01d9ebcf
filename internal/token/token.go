// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

// Package token implements the stateless credential codec. A token is a
// signed HS256 JWT carrying the user's identity and an expiry; validity is
// purely a function of signature and clock, nothing is stored server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// ErrInvalidToken is returned by Verify for any token that fails signature,
// shape, or expiry checks. Callers treat it as a normal outcome, not a fault.
var ErrInvalidToken = errors.New("invalid token")

// ErrNoSecret is returned when a Codec is constructed without a signing secret.
var ErrNoSecret = errors.New("signing secret is not configured")

// Identity is the set of user attributes embedded in a minted token.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// Claims is the JWT payload: registered claims plus the user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Codec mints and verifies credentials with a shared HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec. The secret must be non-empty and the ttl positive.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, oops.Code("TOKEN_NO_SECRET").Wrap(ErrNoSecret)
	}
	if ttl <= 0 {
		return nil, oops.Code("TOKEN_BAD_TTL").
			With("ttl", ttl.String()).
			Errorf("token ttl must be positive")
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the validity window applied to minted tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Mint signs a token for the given identity, valid for the codec's TTL.
func (c *Codec) Mint(id Identity) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: id.ID,
		Name:   id.Name,
		Email:  id.Email,
	})

	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", oops.Code("TOKEN_SIGN_FAILED").
			With("operation", "sign claims").
			Wrap(err)
	}
	return signed, nil
}

// Verify decodes and validates a token. It returns the claims only when the
// signature is valid and the token is within its validity window; every other
// outcome is ErrInvalidToken.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, oops.Code("TOKEN_INVALID").Wrap(ErrInvalidToken)
	}
	if !tok.Valid {
		return nil, oops.Code("TOKEN_INVALID").Wrap(ErrInvalidToken)
	}

	return claims, nil
}
