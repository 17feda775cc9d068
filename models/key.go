// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

// KeyHashSize is the length in bytes of a [KeyHash].
const KeyHashSize = sha256.Size

// KeyHash is the fixed-size SHA-256 digest of a user's public key.
// Its text form (JSON, URL path segments) is base58.
type KeyHash []byte

// HashPublicKey derives the [KeyHash] of a raw public key. It is the only
// place where the digest is computed, so the mapping stays consistent across
// registration and lookup.
func HashPublicKey(publicKey []byte) KeyHash {
	sum := sha256.Sum256(publicKey)
	return sum[:]
}

// Valid reports whether h has the length of a SHA-256 digest.
func (h KeyHash) Valid() bool {
	return len(h) == KeyHashSize
}

// Equal reports whether h and other hold the same digest.
func (h KeyHash) Equal(other KeyHash) bool {
	return bytes.Equal(h, other)
}

func (h KeyHash) String() string {
	return base58.Encode(h)
}

func (h KeyHash) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(h)), nil
}

func (h *KeyHash) UnmarshalText(text []byte) error {
	decoded, err := decodeBase58(text)
	if err != nil {
		return fmt.Errorf("invalid key hash: %w", err)
	}
	*h = decoded
	return nil
}

// ParseKeyHash decodes the base58 text form of a key hash and checks its size.
func ParseKeyHash(s string) (KeyHash, error) {
	var h KeyHash
	if err := h.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	if !h.Valid() {
		return nil, fmt.Errorf("invalid key hash: expected %d bytes, got %d", KeyHashSize, len(h))
	}
	return h, nil
}

// MaxHandleSize bounds the length of a client-supplied [Handle].
const MaxHandleSize = 64

// Handle is the opaque identifier of a user. Its text form is base58.
type Handle []byte

// Equal reports whether h and other are the same handle.
func (h Handle) Equal(other Handle) bool {
	return bytes.Equal(h, other)
}

func (h Handle) String() string {
	return base58.Encode(h)
}

func (h Handle) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(h)), nil
}

func (h *Handle) UnmarshalText(text []byte) error {
	decoded, err := decodeBase58(text)
	if err != nil {
		return fmt.Errorf("invalid handle: %w", err)
	}
	*h = decoded
	return nil
}

// ParseHandle decodes the base58 text form of a handle.
func ParseHandle(s string) (Handle, error) {
	var h Handle
	if err := h.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	if len(h) == 0 || len(h) > MaxHandleSize {
		return nil, fmt.Errorf("invalid handle: length %d out of range", len(h))
	}
	return h, nil
}

// base58.Decode rejects the empty string, which is a valid "absent" value here.
func decodeBase58(text []byte) ([]byte, error) {
	if len(text) == 0 {
		return nil, nil
	}
	return base58.Decode(string(text))
}
