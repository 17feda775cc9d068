// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// NewDatabase opens the backend named by cfg.Backend, applies pending
// migrations and returns it as a [Database]. The backend is chosen once here
// and never switched afterwards.
//
// The caller owns the returned value and must Close it on shutdown.
func NewDatabase(ctx context.Context, cfg config.Storage, window models.RecencyWindow, log *logger.Logger) (Database, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating database...")

	var (
		db  *DB
		err error
	)
	switch cfg.Backend {
	case config.BackendHosted:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.BackendEmbedded:
		db, err = NewConnectSQLite(ctx, cfg.Embedded, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Backend, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLDatabase(db, window, log), nil
}
