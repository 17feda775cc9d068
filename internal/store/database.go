// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

// sqlDatabase is the [Database] implementation shared by both SQL backends.
// The dialect-specific parts live in [DB].
type sqlDatabase struct {
	db     *DB
	window models.RecencyWindow
	logger *logger.Logger

	now       func() time.Time
	newHandle func() models.Handle
}

// NewSQLDatabase wraps an open and migrated connection into a [Database]
// whose nonce ledger uses window.
func NewSQLDatabase(db *DB, window models.RecencyWindow, log *logger.Logger) Database {
	log.Debug().Str("dialect", db.dialect).Msg("creating database")
	uuids := utils.NewUUIDGenerator()
	return &sqlDatabase{
		db:        db,
		window:    window,
		logger:    log,
		now:       time.Now,
		newHandle: uuids.Handle,
	}
}

func (d *sqlDatabase) AddUser(ctx context.Context, publicKey []byte, handle models.Handle) (bool, error) {
	log := logger.FromContext(ctx)

	if len(publicKey) == 0 {
		return false, ErrInvalidPublicKey
	}
	if len(handle) == 0 {
		handle = d.newHandle()
	}

	keyHash := models.HashPublicKey(publicKey)
	query, args, err := d.db.queries.insertUser(keyHash, publicKey, handle, d.now().UTC())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlDatabase.AddUser").Msg("error inserting user")
		return false, d.db.wrapError(err)
	}

	created, err := rowsAffected(res)
	if err != nil {
		return false, d.db.wrapError(err)
	}

	log.Debug().
		Str("func", "sqlDatabase.AddUser").
		Stringer("key_hash", keyHash).
		Stringer("handle", handle).
		Bool("created", created).
		Msg("add user")

	return created, nil
}

func (d *sqlDatabase) HaveUser(ctx context.Context, handle models.Handle) (bool, error) {
	if len(handle) == 0 {
		return false, nil
	}

	query, args, err := d.db.queries.haveUser(handle)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = d.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "sqlDatabase.HaveUser").Msg("error looking up handle")
		return false, d.db.wrapError(err)
	}

	return true, nil
}

func (d *sqlDatabase) GetUser(ctx context.Context, keyHash models.KeyHash) (models.User, error) {
	if !keyHash.Valid() {
		return models.User{}, ErrUserNotFound
	}

	query, args, err := d.db.queries.getUser(keyHash)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user                    models.User
		hash, publicKey, handle []byte
	)
	err = d.db.QueryRowContext(ctx, query, args...).Scan(&hash, &publicKey, &handle, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "sqlDatabase.GetUser").Msg("error looking up user")
		return models.User{}, d.db.wrapError(err)
	}

	user.PublicKeyHash = hash
	user.PublicKey = publicKey
	user.Handle = handle

	return user, nil
}

func (d *sqlDatabase) DeleteUser(ctx context.Context, handle models.Handle) (bool, error) {
	log := logger.FromContext(ctx)

	if len(handle) == 0 {
		return false, nil
	}

	deleteUserQuery, deleteUserArgs, err := d.db.queries.deleteUser(handle)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		deleted bool
		purged  int64
	)
	err = d.db.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var keyHash []byte
		scanErr := tx.QueryRowContext(ctx, deleteUserQuery, deleteUserArgs...).Scan(&keyHash)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil
		}
		if scanErr != nil {
			return d.db.wrapError(scanErr)
		}
		deleted = true

		deleteNoncesQuery, deleteNoncesArgs, buildErr := d.db.queries.deleteUserNonces(keyHash)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		res, execErr := tx.ExecContext(ctx, deleteNoncesQuery, deleteNoncesArgs...)
		if execErr != nil {
			return d.db.wrapError(execErr)
		}
		if purged, execErr = res.RowsAffected(); execErr != nil {
			return d.db.wrapError(execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "sqlDatabase.DeleteUser").Msg("error deleting user")
		return false, err
	}

	log.Debug().
		Str("func", "sqlDatabase.DeleteUser").
		Stringer("handle", handle).
		Bool("deleted", deleted).
		Int64("purged_nonces", purged).
		Msg("delete user")

	return deleted, nil
}

func (d *sqlDatabase) CheckAndAddNonce(ctx context.Context, nonce models.Nonce, userKeyHash models.KeyHash) (bool, error) {
	log := logger.FromContext(ctx)

	if len(nonce.Value) == 0 || len(userKeyHash) == 0 {
		return false, nil
	}
	if !nonce.IsRecent(d.window, d.now()) {
		log.Debug().
			Str("func", "sqlDatabase.CheckAndAddNonce").
			Int64("issued_at", nonce.IssuedAt).
			Msg("stale nonce rejected")
		return false, nil
	}

	query, args, err := d.db.queries.insertNonce(userKeyHash, nonce.Value, nonce.IssuedAt)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlDatabase.CheckAndAddNonce").Msg("error admitting nonce")
		return false, d.db.wrapError(err)
	}

	admitted, err := rowsAffected(res)
	if err != nil {
		return false, d.db.wrapError(err)
	}
	if !admitted {
		log.Debug().Str("func", "sqlDatabase.CheckAndAddNonce").Msg("nonce replay rejected")
	}

	return admitted, nil
}

func (d *sqlDatabase) ClearOldNonces(ctx context.Context) (int64, error) {
	sweepBefore := d.window.SweepBefore(d.now())

	query, args, err := d.db.queries.clearOldNonces(sweepBefore)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		d.logger.Err(err).Str("func", "sqlDatabase.ClearOldNonces").Msg("error sweeping nonce ledger")
		return 0, d.db.wrapError(err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, d.db.wrapError(err)
	}

	d.logger.Debug().
		Str("func", "sqlDatabase.ClearOldNonces").
		Int64("sweep_before_bucket", sweepBefore).
		Int64("purged", purged).
		Msg("nonce ledger swept")

	return purged, nil
}

func (d *sqlDatabase) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return d.db.wrapError(err)
	}
	return nil
}

func (d *sqlDatabase) Close() error {
	d.logger.Info().Str("dialect", d.db.dialect).Msg("closing database")
	return d.db.Close()
}

// rowsAffected reports whether a compare-and-insert wrote its row.
func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
