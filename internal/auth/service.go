// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/oops"

	"github.com/listkeeper/listkeeper/internal/token"
)

// Service resolves sessions: it exchanges credentials for tokens on login
// and resolves inbound tokens back to live user records.
type Service struct {
	users      UserRepository
	hasher     PasswordHasher
	codec      *token.Codec
	cookieName string
}

// dummyPasswordHash is used when a user doesn't exist to prevent timing attacks.
// We still run password verification to make response time consistent.
// This is NOT a real credential - it's a fake hash that will never match any password.
//
//nolint:gosec // G101: This is an intentionally fake hash for timing attack prevention, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// NewService creates a session Service.
func NewService(users UserRepository, hasher PasswordHasher, codec *token.Codec, cookieName string) (*Service, error) {
	if users == nil {
		return nil, oops.Code("AUTH_BAD_DEPS").Errorf("users repository is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_BAD_DEPS").Errorf("password hasher is required")
	}
	if codec == nil {
		return nil, oops.Code("AUTH_BAD_DEPS").Errorf("token codec is required")
	}
	if cookieName == "" {
		return nil, oops.Code("AUTH_BAD_DEPS").Errorf("cookie name is required")
	}
	return &Service{users: users, hasher: hasher, codec: codec, cookieName: cookieName}, nil
}

// CookieName returns the name of the cookie carrying the credential.
func (s *Service) CookieName() string {
	return s.cookieName
}

// TokenTTL returns the validity window of minted credentials. The transport
// layer mirrors it onto the cookie max-age.
func (s *Service) TokenTTL() int {
	return int(s.codec.TTL().Seconds())
}

// Login verifies an email/password pair and mints a credential for the user.
// An unknown email and a wrong password both return ErrInvalidCredentials;
// the two cases are indistinguishable from outside to prevent account
// enumeration. Password verification runs even when the user is missing so
// response timing stays consistent.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, lookupErr := s.users.GetByEmail(ctx, email)

	targetHash := dummyPasswordHash
	userExists := false

	if lookupErr != nil {
		if !errors.Is(lookupErr, ErrNotFound) {
			return "", oops.Code("AUTH_LOGIN_FAILED").
				With("operation", "get user by email").
				Wrap(lookupErr)
		}
	} else {
		targetHash = user.PasswordHash
		userExists = true
	}

	valid, verifyErr := s.hasher.Verify(password, targetHash)
	if verifyErr != nil {
		if !userExists {
			return "", oops.Code("AUTH_INVALID_CREDENTIALS").Wrap(ErrInvalidCredentials)
		}
		return "", oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(verifyErr)
	}

	if !userExists || !valid {
		return "", oops.Code("AUTH_INVALID_CREDENTIALS").Wrap(ErrInvalidCredentials)
	}

	minted, err := s.codec.Mint(token.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		return "", oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "mint token").
			Wrap(err)
	}

	return minted, nil
}

// ResolveToken verifies a raw credential and re-fetches the user it names.
// The fetch guarantees a deleted account stops authenticating immediately,
// even while its token is unexpired, and yields fresh user attributes.
func (s *Service) ResolveToken(ctx context.Context, raw string) (*User, error) {
	claims, err := s.codec.Verify(raw)
	if err != nil {
		return nil, oops.Code("AUTH_UNAUTHORIZED").Wrap(ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code("AUTH_UNAUTHORIZED").Wrap(ErrUnauthorized)
		}
		return nil, oops.Code("AUTH_RESOLVE_FAILED").
			With("operation", "get user by id").
			Wrap(err)
	}

	return user, nil
}

// ResolveRequest reads the credential cookie from an inbound request and
// resolves it to a user. A missing cookie is the same unauthorized outcome
// as an invalid token.
func (s *Service) ResolveRequest(r *http.Request) (*User, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, oops.Code("AUTH_UNAUTHORIZED").Wrap(ErrUnauthorized)
	}
	return s.ResolveToken(r.Context(), cookie.Value)
}
