// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPublicKey   = errors.New("public key is required")
	ErrHandleTooLong    = errors.New("handle is too long")
	ErrInvalidKeyHash   = errors.New("key hash is missing or malformed")
	ErrEmptyNonce       = errors.New("nonce value is required")
	ErrInvalidSignature = errors.New("signature is incomplete")
)
