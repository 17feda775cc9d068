// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math/big"

// SchnorrSignature holds a signed message and the two signature components.
//
// S and E are unsigned big-endian integers in their minimal-length form: no
// leading zero bytes and no sign byte. The constructor does not normalise or
// validate; callers strip padding first (see [TrimLeadingZeros]). Verification
// lives with the authenticator, not here.
type SchnorrSignature struct {
	Message []byte `json:"message"`
	S       []byte `json:"s"`
	E       []byte `json:"e"`
}

// NewSchnorrSignature builds a signature from already normalised components.
func NewSchnorrSignature(message, s, e []byte) SchnorrSignature {
	return SchnorrSignature{
		Message: message,
		S:       s,
		E:       e,
	}
}

// SchnorrSignatureFromInts builds a signature from big integers. The absolute
// values are used, so the components are always non-negative and minimal.
func SchnorrSignatureFromInts(message []byte, s, e *big.Int) SchnorrSignature {
	return NewSchnorrSignature(message, s.Bytes(), e.Bytes())
}

// GetMessage returns the exact bytes that were signed.
func (s SchnorrSignature) GetMessage() []byte {
	return s.Message
}

// GetS returns the s component.
func (s SchnorrSignature) GetS() []byte {
	return s.S
}

// GetE returns the e component.
func (s SchnorrSignature) GetE() []byte {
	return s.E
}

// TrimLeadingZeros strips the zero padding that signed big-integer encodings
// add in front of a value whose top bit is set. The result shares memory with b.
func TrimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}
