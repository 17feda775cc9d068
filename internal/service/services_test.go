// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/mock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl)

	cfg := config.StructuredConfig{App: testAppCfg}
	services, err := NewServices(db, crypto.NewSchnorrVerifier(), cfg, testBuildInfo, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.NonceService)
	assert.NotNil(t, services.HealthService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_NoVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl)

	_, err := NewServices(db, crypto.NewSchnorrVerifier(), config.StructuredConfig{}, testBuildInfo, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
