// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
)

type userService struct {
	db       store.Database
	verifier  crypto.SignatureVerifier
	validator validators.Validator

	logger *logger.Logger
}

func NewUserService(db store.Database, verifier crypto.SignatureVerifier, logger *logger.Logger) UserService {
	return &userService{
		db:        db,
		verifier:  verifier,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

// Register binds a public key to a handle. An empty handle is assigned by
// the Database.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if the key is not a curve point or the handle is too long.
//   - store.ErrUserAlreadyExists if the key or the handle is taken.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("registration rejected: malformed request")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.verifier.ValidatePublicKey(req.PublicKey); err != nil {
		log.Debug().Err(err).Msg("registration rejected: invalid public key")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.db.AddUser(ctx, req.PublicKey, req.Handle)
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	if !created {
		return models.User{}, store.ErrUserAlreadyExists
	}

	user, err := s.db.GetUser(ctx, models.HashPublicKey(req.PublicKey))
	if err != nil {
		log.Err(err).Msg("reading back the created user failed")
		return models.User{}, fmt.Errorf("reading back the created user failed: %w", err)
	}

	log.Info().Stringer("handle", user.Handle).Msg("user registered")
	return user, nil
}

func (s *userService) Exists(ctx context.Context, handle models.Handle) (bool, error) {
	if len(handle) == 0 {
		return false, ErrInvalidDataProvided
	}

	exists, err := s.db.HaveUser(ctx, handle)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user existence check failed")
		return false, fmt.Errorf("user existence check failed: %w", err)
	}
	return exists, nil
}

// Lookup resolves a user by key hash. Absence is store.ErrUserNotFound.
func (s *userService) Lookup(ctx context.Context, keyHash models.KeyHash) (models.User, error) {
	if !keyHash.Valid() {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.db.GetUser(ctx, keyHash)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return user, nil
}

// Delete removes the user and its ledger entries. It returns ErrForbidden
// when requester is someone else and store.ErrUserNotFound for an unknown
// handle.
func (s *userService) Delete(ctx context.Context, requester, handle models.Handle) error {
	log := logger.FromContext(ctx)

	if len(handle) == 0 {
		return ErrInvalidDataProvided
	}
	if !requester.Equal(handle) {
		log.Warn().Stringer("requester", requester).Stringer("handle", handle).Msg("attempt to delete another user")
		return ErrForbidden
	}

	deleted, err := s.db.DeleteUser(ctx, handle)
	if err != nil {
		log.Err(err).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}
	if !deleted {
		return store.ErrUserNotFound
	}

	log.Info().Stringer("handle", handle).Msg("user deleted")
	return nil
}
