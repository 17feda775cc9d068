// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It resolves users through the Database, admits nonces into the ledger and
// checks Schnorr signatures with a SignatureVerifier. Successful
// authentications can be exchanged for HS256 session tokens.
type authService struct {
	// db is the record of truth for users and the nonce ledger.
	db store.Database

	// verifier checks signatures against the stored public key.
	verifier crypto.SignatureVerifier

	// validator rejects structurally unusable requests before any lookup.
	validator validators.Validator

	// window is the recency window nonces are issued and judged in.
	window models.RecencyWindow

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(db store.Database, verifier crypto.SignatureVerifier, cfg config.App, window models.RecencyWindow, logger *logger.Logger) AuthService {
	return &authService{
		db:            db,
		verifier:      verifier,
		validator:     validators.NewRequestValidator(),
		window:        window,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

func (a *authService) IssueNonce(ctx context.Context) (models.Nonce, error) {
	nonce, err := models.NewNonce(a.window, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("nonce generation failed")
		return models.Nonce{}, err
	}
	return nonce, nil
}

// Authenticate checks a per-request proof of key possession.
//
// The steps are, in order: resolve the user by key hash (or the hash of the
// raw key), admit the nonce into the ledger, require the signed message to
// embed the nonce value, verify the signature. The nonce is consumed even when
// a later step rejects the request.
//
// Returns the authenticated user or:
//   - ErrAuthenticationFailed for every rejection, whatever its cause.
//   - A wrapped store.ErrBackendUnavailable if the Database failed.
func (a *authService) Authenticate(ctx context.Context, req models.AuthRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req, validators.FieldKeyHash, validators.FieldNonce); err != nil {
		log.Debug().Err(err).Msg("authentication rejected: malformed request")
		return models.User{}, ErrAuthenticationFailed
	}
	keyHash := req.KeyHash()

	user, err := a.db.GetUser(ctx, keyHash)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Stringer("key_hash", keyHash).Msg("authentication rejected: unknown key")
			return models.User{}, ErrAuthenticationFailed
		}
		log.Err(err).Msg("user lookup failed during authentication")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if len(req.PublicKey) > 0 && !bytes.Equal(req.PublicKey, user.PublicKey) {
		log.Debug().Stringer("handle", user.Handle).Msg("authentication rejected: public key does not match key hash")
		return models.User{}, ErrAuthenticationFailed
	}

	admitted, err := a.db.CheckAndAddNonce(ctx, req.Nonce, user.PublicKeyHash)
	if err != nil {
		log.Err(err).Msg("nonce admission failed during authentication")
		return models.User{}, fmt.Errorf("nonce admission failed: %w", err)
	}
	if !admitted {
		log.Debug().Stringer("handle", user.Handle).Int64("issued_at", req.Nonce.IssuedAt).
			Msg("authentication rejected: nonce is stale or already used")
		return models.User{}, ErrAuthenticationFailed
	}

	if !bytes.Contains(req.Signature.GetMessage(), req.Nonce.Value) {
		log.Debug().Stringer("handle", user.Handle).Msg("authentication rejected: signed message does not embed the nonce")
		return models.User{}, ErrAuthenticationFailed
	}

	if err = a.verifier.Verify(user.PublicKey, req.Signature); err != nil {
		log.Debug().Err(err).Stringer("handle", user.Handle).Msg("authentication rejected: signature verification failed")
		return models.User{}, ErrAuthenticationFailed
	}

	return user, nil
}

// CreateToken issues a signed JWT whose subject is the user's handle.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Handle, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed, bad subject) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
