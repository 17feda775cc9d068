// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/mock"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl)
	svc := NewHealthService(db, logger.Nop())

	db.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Check(context.Background()))

	db.EXPECT().Ping(gomock.Any()).Return(store.ErrBackendUnavailable)
	assert.ErrorIs(t, svc.Check(context.Background()), store.ErrBackendUnavailable)
}
