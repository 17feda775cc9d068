// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-keeper/migrations"
)

const (
	usersTable  = "users"
	noncesTable = "nonces"

	// Both engines skip the row on any unique violation (key hash or handle
	// for users, the (user, value) pair for nonces), which turns the insert
	// into an atomic compare-and-insert.
	onConflictDoNothing = "ON CONFLICT DO NOTHING"
)

// sqlQueries builds the statements of one dialect. Only the placeholder
// format differs: "$n" for PostgreSQL, "?" for SQLite.
type sqlQueries struct {
	sb sq.StatementBuilderType
}

func newSQLQueries(dialect string) sqlQueries {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == migrations.Postgres {
		format = sq.Dollar
	}
	return sqlQueries{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q sqlQueries) insertUser(keyHash, publicKey, handle []byte, createdAt time.Time) (string, []any, error) {
	return q.sb.
		Insert(usersTable).
		Columns("key_hash", "public_key", "handle", "created_at").
		Values(keyHash, publicKey, handle, createdAt).
		Suffix(onConflictDoNothing).
		ToSql()
}

func (q sqlQueries) haveUser(handle []byte) (string, []any, error) {
	return q.sb.
		Select("1").
		From(usersTable).
		Where(sq.Eq{"handle": handle}).
		Limit(1).
		ToSql()
}

func (q sqlQueries) getUser(keyHash []byte) (string, []any, error) {
	return q.sb.
		Select("key_hash", "public_key", "handle", "created_at").
		From(usersTable).
		Where(sq.Eq{"key_hash": keyHash}).
		ToSql()
}

func (q sqlQueries) deleteUser(handle []byte) (string, []any, error) {
	return q.sb.
		Delete(usersTable).
		Where(sq.Eq{"handle": handle}).
		Suffix("RETURNING key_hash").
		ToSql()
}

func (q sqlQueries) deleteUserNonces(keyHash []byte) (string, []any, error) {
	return q.sb.
		Delete(noncesTable).
		Where(sq.Eq{"user_key_hash": keyHash}).
		ToSql()
}

func (q sqlQueries) insertNonce(keyHash, value []byte, bucket int64) (string, []any, error) {
	return q.sb.
		Insert(noncesTable).
		Columns("user_key_hash", "nonce_value", "bucket").
		Values(keyHash, value, bucket).
		Suffix(onConflictDoNothing).
		ToSql()
}

func (q sqlQueries) clearOldNonces(sweepBefore int64) (string, []any, error) {
	return q.sb.
		Delete(noncesTable).
		Where(sq.Lt{"bucket": sweepBefore}).
		ToSql()
}
