// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed is the single outcome of every rejected
	// authentication: unknown key, stale or replayed nonce, bad signature.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrForbidden = errors.New("operation is not permitted for this user")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
