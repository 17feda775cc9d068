// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides structural validation of inbound requests
// before they reach the Database or the signature verifier.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Construct a Validator once and keep it inside the service that needs it.
//  2. Call Validate with context, value, and optional field names to enforce rules.
//
// Validators check shape only: presence, sizes and encodings. Whether a key is
// a curve point or a signature verifies is decided elsewhere.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
