// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, handle generation,
// HTTP request and response bodies, JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// HandleCtxKey is the key used to store the authenticated user handle in the context.
var HandleCtxKey = contextKey("handle")

// UserCtxKey is the key used to store the user resolved by Schnorr
// authentication in the context.
var UserCtxKey = contextKey("user")

// WithHandle returns a copy of ctx carrying handle.
func WithHandle(ctx context.Context, handle models.Handle) context.Context {
	return context.WithValue(ctx, HandleCtxKey, handle)
}

// GetHandleFromContext retrieves the authenticated user handle from the context.
//
// Returns ok == false when the value is missing, empty or of an unexpected type.
//
// Example usage:
//
//	handle, ok := utils.GetHandleFromContext(ctx)
//	if !ok {
//	    // request was not authenticated
//	}
func GetHandleFromContext(ctx context.Context) (models.Handle, bool) {
	handle, ok := ctx.Value(HandleCtxKey).(models.Handle)
	if !ok || len(handle) == 0 {
		return nil, false
	}
	return handle, true
}

// WithUser returns a copy of ctx carrying the authenticated user and its handle.
func WithUser(ctx context.Context, user models.User) context.Context {
	ctx = context.WithValue(ctx, UserCtxKey, user)
	return WithHandle(ctx, user.Handle)
}

// GetUserFromContext retrieves the user stored by [WithUser].
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
