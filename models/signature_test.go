// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimLeadingZeros(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{name: "nil", input: nil, want: nil},
		{name: "already minimal", input: []byte{0x80, 0x01}, want: []byte{0x80, 0x01}},
		{name: "sign byte", input: []byte{0x00, 0x80, 0x01}, want: []byte{0x80, 0x01}},
		{name: "several zeros", input: []byte{0, 0, 0, 7}, want: []byte{7}},
		{name: "all zeros", input: []byte{0, 0}, want: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimLeadingZeros(tt.input))
		})
	}
}

func TestSchnorrSignature_Accessors(t *testing.T) {
	sig := NewSchnorrSignature([]byte("msg"), []byte{1}, []byte{2})

	assert.Equal(t, []byte("msg"), sig.GetMessage())
	assert.Equal(t, []byte{1}, sig.GetS())
	assert.Equal(t, []byte{2}, sig.GetE())
}

func TestSchnorrSignatureFromInts(t *testing.T) {
	s := new(big.Int).SetBytes([]byte{0x80, 0x00})
	e := big.NewInt(-5)

	sig := SchnorrSignatureFromInts([]byte("m"), s, e)
	assert.Equal(t, []byte{0x80, 0x00}, sig.GetS())
	assert.Equal(t, []byte{5}, sig.GetE(), "sign is dropped")
}

func TestAuthRequest_KeyHash(t *testing.T) {
	pk := []byte("raw key")
	hash := HashPublicKey(pk)

	assert.True(t, AuthRequest{PublicKeyHash: hash}.KeyHash().Equal(hash))
	assert.True(t, AuthRequest{PublicKey: pk}.KeyHash().Equal(hash))
	assert.True(t, AuthRequest{PublicKeyHash: hash, PublicKey: []byte("ignored")}.KeyHash().Equal(hash))
	assert.Nil(t, AuthRequest{}.KeyHash())
}

func TestAuthRequest_Normalize(t *testing.T) {
	req := AuthRequest{
		Signature: SchnorrSignature{
			Message: []byte("m"),
			S:       []byte{0, 0x90},
			E:       []byte{0, 0, 1},
		},
	}

	norm := req.Normalize()
	assert.Equal(t, []byte{0x90}, norm.Signature.S)
	assert.Equal(t, []byte{1}, norm.Signature.E)
	assert.Equal(t, []byte("m"), norm.Signature.Message)
}
