// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

// AuthService proves possession of a private key and manages session tokens.
type AuthService interface {
	// IssueNonce draws a fresh nonce stamped with the current bucket.
	IssueNonce(ctx context.Context) (models.Nonce, error)

	// Authenticate resolves the user named by req, admits req.Nonce into the
	// ledger and verifies the signature. Every rejection is
	// [ErrAuthenticationFailed]; only backend faults surface otherwise.
	Authenticate(ctx context.Context, req models.AuthRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages the key to handle bindings.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Exists(ctx context.Context, handle models.Handle) (bool, error)
	Lookup(ctx context.Context, keyHash models.KeyHash) (models.User, error)

	// Delete removes handle on behalf of requester. Users may only delete
	// themselves.
	Delete(ctx context.Context, requester, handle models.Handle) error
}

// NonceService maintains the nonce ledger.
type NonceService interface {
	// PurgeExpired drops ledger entries outside the recency window and
	// returns how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

// HealthService reports backend reachability.
type HealthService interface {
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
