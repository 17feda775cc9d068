// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

type nonceService struct {
	db store.Database

	logger *logger.Logger
}

func NewNonceService(db store.Database, logger *logger.Logger) NonceService {
	return &nonceService{
		db:     db,
		logger: logger,
	}
}

func (s *nonceService) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.db.ClearOldNonces(ctx)
	if err != nil {
		s.logger.Err(err).Msg("nonce ledger sweep failed")
		return 0, fmt.Errorf("nonce ledger sweep failed: %w", err)
	}

	s.logger.Debug().Int64("purged", purged).Msg("nonce ledger swept")
	return purged, nil
}
