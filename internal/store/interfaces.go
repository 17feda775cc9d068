// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Database is the record of truth for users and the nonce ledger.
//
// Every backend provides the same semantics; callers never lock around it.
// AddUser and CheckAndAddNonce are single compare-and-insert statements, so
// of two concurrent calls for the same key only one can report true.
type Database interface {
	// AddUser creates a user keyed by HashPublicKey(publicKey). It returns
	// false without mutating anything when the key hash or the handle is
	// already taken. An empty handle is replaced by a generated one.
	AddUser(ctx context.Context, publicKey []byte, handle models.Handle) (bool, error)

	// HaveUser reports whether a user with handle currently exists.
	HaveUser(ctx context.Context, handle models.Handle) (bool, error)

	// GetUser resolves a user by key hash. Absence is [ErrUserNotFound].
	GetUser(ctx context.Context, keyHash models.KeyHash) (models.User, error)

	// DeleteUser removes the user and its ledger entries in one transaction.
	// It returns false when no user had that handle.
	DeleteUser(ctx context.Context, handle models.Handle) (bool, error)

	// CheckAndAddNonce admits nonce for the user at most once. It returns
	// false without touching the ledger when the nonce is not recent.
	CheckAndAddNonce(ctx context.Context, nonce models.Nonce, userKeyHash models.KeyHash) (bool, error)

	// ClearOldNonces purges ledger entries more than one bucket older than the
	// recency window and returns how many were removed.
	ClearOldNonces(ctx context.Context) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
