// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-key-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/verifier_mock.go -package=mock

// SignatureVerifier checks Schnorr signatures against stored public keys.
// It knows nothing about users, nonces or storage.
type SignatureVerifier interface {
	// ValidatePublicKey reports whether publicKey is a usable verification
	// key. It is called once, at registration.
	ValidatePublicKey(publicKey []byte) error

	// Verify checks sig against publicKey. A nil error means the signature
	// equation holds for sig.Message.
	Verify(publicKey []byte, sig models.SchnorrSignature) error
}
