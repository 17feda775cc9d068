// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	NonceService   NonceService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(db store.Database, verifier crypto.SignatureVerifier, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(db, verifier, cfg.App, cfg.Nonce.Window(), logger),
		UserService:    NewUserService(db, verifier, logger),
		NonceService:   NewNonceService(db, logger),
		HealthService:  NewHealthService(db, logger),
		AppInfoService: appInfoService,
	}, nil
}
