// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the [Database] contract over two SQL backends:
// an embedded SQLite file and a hosted PostgreSQL server. Both share one
// implementation built with squirrel; only connection setup, placeholders
// and error classification differ per dialect.
//
// Driver errors never leave this package raw. Failures that mean the backend
// could not answer wrap [ErrBackendUnavailable], and those worth retrying
// also wrap [ErrTransient].
package store
