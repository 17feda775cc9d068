// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPublicKey targets the raw public key of a registration.
	FieldPublicKey = "public_key"

	// FieldHandle targets the optional client-chosen handle of a registration.
	FieldHandle = "handle"

	// FieldKeyHash targets the key identifying the user of an auth request,
	// either the explicit hash or the one derived from the raw key.
	FieldKeyHash = "key_hash"

	// FieldNonce targets the nonce value of an auth request.
	FieldNonce = "nonce"

	// FieldSignature targets the signed message and both signature components.
	FieldSignature = "signature"
)

// scalarSize is the largest minimal encoding of a secp256k1 scalar.
const scalarSize = 32

// RequestValidator implements [Validator] for models.RegisterRequest and
// models.AuthRequest, in value and pointer form.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When no fields are given,
// every field of the type is checked.
//
// Returns ErrUnsupportedType for any other type and ErrUnknownField for a
// field name that does not apply to the type.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.AuthRequest:
		return v.validateAuthRequest(ctx, value, fields...)
	case *models.AuthRequest:
		return v.validateAuthRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPublicKey, FieldHandle}
	}

	for _, field := range fields {
		switch field {
		case FieldPublicKey:
			if len(req.PublicKey) == 0 {
				return ErrEmptyPublicKey
			}
		case FieldHandle:
			if len(req.Handle) > models.MaxHandleSize {
				return fmt.Errorf("%w: %d bytes, at most %d allowed", ErrHandleTooLong, len(req.Handle), models.MaxHandleSize)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateAuthRequest(_ context.Context, req models.AuthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeyHash, FieldNonce, FieldSignature}
	}

	for _, field := range fields {
		switch field {
		case FieldKeyHash:
			if !req.KeyHash().Valid() {
				return ErrInvalidKeyHash
			}
		case FieldNonce:
			if len(req.Nonce.Value) == 0 {
				return ErrEmptyNonce
			}
		case FieldSignature:
			sig := req.Signature
			if len(sig.GetMessage()) == 0 || len(sig.GetS()) > scalarSize ||
				len(sig.GetE()) == 0 || len(sig.GetE()) > scalarSize {
				return ErrInvalidSignature
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}
