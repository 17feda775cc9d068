// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/migrations"
)

// DB is an open connection pool together with everything that differs between
// SQL dialects: the migration set, the query placeholders and the way driver
// errors are classified.
type DB struct {
	*sql.DB
	dialect            string
	queries            sqlQueries
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		queries:            newSQLQueries(dialect),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the embedded schema of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// Dialect returns the SQL dialect name ("postgres" or "sqlite").
func (db *DB) Dialect() string {
	return db.dialect
}

// wrapError marks err as a backend failure, and as transient when the
// dialect classifier says a retry may succeed.
func (db *DB) wrapError(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrBackendUnavailable, ErrTransient, err)
	}
	return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}

// withTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic; panics are re-raised.
func (db *DB) withTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return db.wrapError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = db.wrapError(commitErr)
		}
	}()

	return fn(ctx, tx)
}
