// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/rand"
	"fmt"
	"time"
)

// NonceSize is the number of random bytes in a server-issued nonce value.
const NonceSize = 32

// Nonce is a timestamped, single-use token bound to one authentication attempt.
//
// A given Value is admitted at most once per user. IssuedAt is the coarse
// bucket index (see [RecencyWindow.Bucket]) rather than a precise timestamp,
// which keeps the ledger sweep a simple range delete.
type Nonce struct {
	// Value is the random token.
	Value []byte `json:"value"`

	// IssuedAt is the bucket index the nonce was issued in.
	IssuedAt int64 `json:"issued_at"`
}

// NewNonce draws a fresh random nonce stamped with the bucket of now.
func NewNonce(window RecencyWindow, now time.Time) (Nonce, error) {
	value := make([]byte, NonceSize)
	if _, err := rand.Read(value); err != nil {
		return Nonce{}, fmt.Errorf("error generating nonce: %w", err)
	}

	return Nonce{
		Value:    value,
		IssuedAt: window.Bucket(now),
	}, nil
}

// IsRecent reports whether the nonce was issued inside the recency window
// ending at now. Stale nonces are rejected by this check alone: their ledger
// entries may already be purged.
func (n Nonce) IsRecent(window RecencyWindow, now time.Time) bool {
	return window.Contains(n.IssuedAt, now)
}
