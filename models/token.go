// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT issued after a successful Schnorr authentication.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The subject claim is the base58 form of the user's [Handle].
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Handle is the owner extracted from the "sub" claim.
	Handle Handle `json:"-"`
}

// GetHandle decodes the user handle from the token's "sub" claim.
func (t *Token) GetHandle() (Handle, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("error extracting handle from token: %w", err)
	}

	handle, err := ParseHandle(subject)
	if err != nil {
		return nil, fmt.Errorf("error decoding handle from token: %w", err)
	}

	return handle, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
