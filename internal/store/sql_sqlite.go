// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/migrations"
)

// NewConnectSQLite opens the embedded engine at cfg.Path, creating the parent
// directory if needed.
//
// The file runs in WAL mode with a small pool: readers proceed while a write
// is in progress, and writers queue on SQLite's file lock through the busy
// timeout. Explicit transactions take the write lock up front (_txlock).
func NewConnectSQLite(ctx context.Context, cfg config.Embedded, log *logger.Logger) (*DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("%w: error creating database directory: %w", ErrBackendUnavailable, err)
		}
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: error opening connection to DB: %w", ErrBackendUnavailable, err)
	}
	conn.SetMaxOpenConns(sqliteMaxOpenConns)

	db := newDB(conn, migrations.SQLite, NewSQLiteErrorClassifier(), log)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, db.wrapError(err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", cfg.Path).Msg("connected to database successfully")

	return db, nil
}

// sqliteMaxOpenConns bounds the pool of the embedded engine.
const sqliteMaxOpenConns = 4

func sqliteDSN(cfg config.Embedded) string {
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_txlock", "immediate")
	params.Set("_foreign_keys", "on")
	if cfg.BusyTimeout > 0 {
		params.Set("_busy_timeout", fmt.Sprintf("%d", cfg.BusyTimeout.Milliseconds()))
	}
	return "file:" + cfg.Path + "?" + params.Encode()
}
