// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schnorrtest produces secp256k1 Schnorr signatures accepted by
// crypto.NewSchnorrVerifier. It exists for tests; the server never signs.
package schnorrtest

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/models"
)

// Key is a test identity.
type Key struct {
	Private *secp256k1.PrivateKey
}

// NewKey generates a random key pair.
func NewKey(t testing.TB) Key {
	t.Helper()
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	return Key{Private: priv}
}

// PublicKey returns the compressed SEC1 encoding of the public key.
func (k Key) PublicKey() []byte {
	return k.Private.PubKey().SerializeCompressed()
}

// Hash returns models.HashPublicKey of the compressed public key.
func (k Key) Hash() models.KeyHash {
	return models.HashPublicKey(k.PublicKey())
}

// Sign signs message with a fresh random commitment:
//
//	R = k*G, e = H(R || m), s = k - x*e mod n
func (k Key) Sign(t testing.TB, message []byte) models.SchnorrSignature {
	t.Helper()
	for {
		nonce, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			t.Fatalf("generating commitment: %v", err)
		}

		e := crypto.Challenge(nonce.PubKey(), message)
		if e.IsZero() {
			continue
		}

		var s secp256k1.ModNScalar
		s.Mul2(&k.Private.Key, e).Negate().Add(&nonce.Key)

		sBytes, eBytes := s.Bytes(), e.Bytes()
		return models.NewSchnorrSignature(
			message,
			models.TrimLeadingZeros(sBytes[:]),
			models.TrimLeadingZeros(eBytes[:]),
		)
	}
}

// SignNonce signs a message that embeds the nonce value, the way clients do.
func (k Key) SignNonce(t testing.TB, nonce models.Nonce) models.SchnorrSignature {
	t.Helper()
	message := append([]byte("key-keeper auth:"), nonce.Value...)
	return k.Sign(t, message)
}

// AuthRequest builds a complete, valid authentication request for nonce.
func (k Key) AuthRequest(t testing.TB, nonce models.Nonce) models.AuthRequest {
	t.Helper()
	return models.AuthRequest{
		PublicKeyHash: k.Hash(),
		Nonce:         nonce,
		Signature:     k.SignNonce(t, nonce),
	}
}
