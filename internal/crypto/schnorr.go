// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/MKhiriev/go-key-keeper/models"
)

// scalarSize is the byte length of a secp256k1 group scalar.
const scalarSize = 32

// schnorrVerifier is the secp256k1 implementation of [SignatureVerifier].
//
// A signature (s, e) over message m is valid for public key P iff
//
//	R  = s*G + e*P
//	e' = SHA-256(compressed(R) || m) mod n
//
// gives e' == e, with R not the point at infinity, s < n and 0 < e < n.
type schnorrVerifier struct{}

// NewSchnorrVerifier constructs a secp256k1 [SignatureVerifier].
func NewSchnorrVerifier() SignatureVerifier {
	return &schnorrVerifier{}
}

// ValidatePublicKey accepts SEC1 compressed (33 bytes) and uncompressed
// (65 bytes) encodings of a point on the curve.
func (v *schnorrVerifier) ValidatePublicKey(publicKey []byte) error {
	if _, err := secp256k1.ParsePubKey(publicKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return nil
}

func (v *schnorrVerifier) Verify(publicKey []byte, sig models.SchnorrSignature) error {
	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	s, err := parseScalar(sig.GetS())
	if err != nil {
		return fmt.Errorf("%w: s %w", ErrInvalidSignature, err)
	}
	e, err := parseScalar(sig.GetE())
	if err != nil {
		return fmt.Errorf("%w: e %w", ErrInvalidSignature, err)
	}
	if e.IsZero() {
		return fmt.Errorf("%w: e is zero", ErrInvalidSignature)
	}

	var p, sG, eP, r secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	secp256k1.ScalarBaseMultNonConst(s, &sG)
	secp256k1.ScalarMultNonConst(e, &p, &eP)
	secp256k1.AddNonConst(&sG, &eP, &r)

	if (r.X.IsZero() && r.Y.IsZero()) || r.Z.IsZero() {
		return fmt.Errorf("%w: commitment is the point at infinity", ErrInvalidSignature)
	}
	r.ToAffine()

	expected := Challenge(secp256k1.NewPublicKey(&r.X, &r.Y), sig.GetMessage())
	if !expected.Equals(e) {
		return ErrInvalidSignature
	}
	return nil
}

// Challenge computes SHA-256(compressed(r) || message) reduced mod n.
func Challenge(r *secp256k1.PublicKey, message []byte) *secp256k1.ModNScalar {
	h := sha256.New()
	h.Write(r.SerializeCompressed())
	h.Write(message)

	var e secp256k1.ModNScalar
	e.SetByteSlice(h.Sum(nil))
	return &e
}

// parseScalar decodes a minimal big-endian integer that must be below the
// group order.
func parseScalar(b []byte) (*secp256k1.ModNScalar, error) {
	if len(b) > scalarSize {
		return nil, fmt.Errorf("is %d bytes long", len(b))
	}

	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(b); overflow {
		return nil, errors.New("exceeds the group order")
	}
	return &k, nil
}
