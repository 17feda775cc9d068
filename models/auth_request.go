// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthRequest carries the per-request authentication material.
//
// The user is identified either by PublicKeyHash or, when that is empty, by
// the raw PublicKey. Signature.Message must embed Nonce.Value so that a
// signature cannot be replayed with another nonce.
type AuthRequest struct {
	PublicKeyHash KeyHash          `json:"public_key_hash,omitempty"`
	PublicKey     []byte           `json:"public_key,omitempty"`
	Nonce         Nonce            `json:"nonce"`
	Signature     SchnorrSignature `json:"signature"`
}

// KeyHash resolves the key hash identifying the user.
func (r AuthRequest) KeyHash() KeyHash {
	if len(r.PublicKeyHash) > 0 {
		return r.PublicKeyHash
	}
	if len(r.PublicKey) > 0 {
		return HashPublicKey(r.PublicKey)
	}
	return nil
}

// Normalize strips sign padding from the signature components so the
// request satisfies the [SchnorrSignature] precondition.
func (r AuthRequest) Normalize() AuthRequest {
	r.Signature = NewSchnorrSignature(
		r.Signature.Message,
		TrimLeadingZeros(r.Signature.S),
		TrimLeadingZeros(r.Signature.E),
	)
	return r
}

// AuthResponse is returned after a successful Schnorr authentication.
type AuthResponse struct {
	Handle Handle `json:"handle"`
	Token  string `json:"token"`
}

// ExistsResponse answers a user existence check.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// SessionResponse describes the holder of a valid session token.
type SessionResponse struct {
	Handle Handle `json:"handle"`
}
