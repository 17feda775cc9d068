// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidPublicKey is returned for bytes that do not encode a point
	// on the curve.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSignature is returned when a signature is malformed or the
	// verification equation does not hold.
	ErrInvalidSignature = errors.New("invalid signature")
)
