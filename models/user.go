// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the server-side identity record that binds a public key to an
// opaque user handle.
//
// Key material is never updated in place: rotating a key is modelled as
// deleting the user and adding a new one.
type User struct {
	// PublicKey is the raw verification key (SEC1-encoded secp256k1 point).
	PublicKey []byte `json:"public_key"`

	// PublicKeyHash is HashPublicKey(PublicKey). It is the primary lookup key
	// and is unique across all users.
	PublicKeyHash KeyHash `json:"public_key_hash"`

	// Handle is the opaque identifier of the user, either supplied by the
	// client at registration or assigned by the server.
	Handle Handle `json:"handle"`

	// CreatedAt is the timestamp when the user was added.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of a user registration call.
type RegisterRequest struct {
	PublicKey []byte `json:"public_key"`
	Handle    Handle `json:"handle,omitempty"`
}
