// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Outcome errors. They describe expected results, not faults; callers should
// use [errors.Is] to match against them.
var (
	// ErrUserNotFound is returned by GetUser when no user has the key hash.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists signals that AddUser reported a duplicate. The
	// Database itself answers false; this error is for the layers above.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidPublicKey is returned by AddUser for an empty public key.
	ErrInvalidPublicKey = errors.New("public key is empty")
)

// Infrastructure errors. Every driver failure is wrapped in
// [ErrBackendUnavailable]; failures the dialect deems retryable additionally
// wrap [ErrTransient]. Nothing in this package retries.
var (
	ErrBackendUnavailable = errors.New("storage backend unavailable")
	ErrTransient          = errors.New("transient storage failure")

	// ErrUnknownBackend is returned by NewDatabase for an unsupported backend.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
