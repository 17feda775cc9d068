// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-key-keeper HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies for requests rejected before they reach a service.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded into
	// the expected model.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidHandle is returned when a {handle} path segment is not a
	// base58 handle of an acceptable size.
	MsgInvalidHandle = "invalid handle"

	// MsgInvalidKeyHash is returned when a {keyHash} path segment is not a
	// base58 SHA-256 digest.
	MsgInvalidKeyHash = "invalid key hash"

	// MsgInvalidGzipData is returned when a request declares a gzip body that
	// cannot be decompressed.
	MsgInvalidGzipData = "invalid gzip data"
)
