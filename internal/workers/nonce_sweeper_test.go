// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
)

// countingNonceService counts PurgeExpired calls and optionally fails them.
type countingNonceService struct {
	calls atomic.Int64
	err   error
}

func (c *countingNonceService) PurgeExpired(context.Context) (int64, error) {
	c.calls.Add(1)
	return 3, c.err
}

func TestNonceSweeper_SweepsOnTicker(t *testing.T) {
	svc := &countingNonceService{}
	sweeper := NewNonceSweeper(svc, 5*time.Millisecond, logger.Nop())

	sweeper.Start(context.Background())
	defer sweeper.Stop()

	assert.Eventually(t, func() bool { return svc.calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestNonceSweeper_StopHaltsSweeps(t *testing.T) {
	svc := &countingNonceService{}
	sweeper := NewNonceSweeper(svc, 2*time.Millisecond, logger.Nop())

	sweeper.Start(context.Background())
	require.Eventually(t, func() bool { return svc.calls.Load() >= 1 }, time.Second, time.Millisecond)
	sweeper.Stop()

	after := svc.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, svc.calls.Load())

	// a second Stop is a no-op
	sweeper.Stop()
}

func TestNonceSweeper_ContextCancelStops(t *testing.T) {
	svc := &countingNonceService{}
	sweeper := NewNonceSweeper(svc, 2*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Start(ctx)
	require.Eventually(t, func() bool { return svc.calls.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		sweeper.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestNonceSweeper_KeepsRunningAfterFailure(t *testing.T) {
	svc := &countingNonceService{err: errors.New("backend down")}
	sweeper := NewNonceSweeper(svc, 2*time.Millisecond, logger.Nop())

	sweeper.Start(context.Background())
	defer sweeper.Stop()

	assert.Eventually(t, func() bool { return svc.calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestNonceSweeper_RestartReplacesRunningJob(t *testing.T) {
	svc := &countingNonceService{}
	sweeper := NewNonceSweeper(svc, 2*time.Millisecond, logger.Nop())

	sweeper.Start(context.Background())
	sweeper.Start(context.Background())
	require.Eventually(t, func() bool { return svc.calls.Load() >= 1 }, time.Second, time.Millisecond)
	sweeper.Stop()

	after := svc.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, svc.calls.Load())
}

func TestNonceSweeper_DefaultInterval(t *testing.T) {
	sweeper := NewNonceSweeper(&countingNonceService{}, 0, logger.Nop()).(*nonceSweeper)
	assert.Equal(t, defaultSweepInterval, sweeper.interval)
}

func TestNewWorkers(t *testing.T) {
	svc := &countingNonceService{}
	ws := NewWorkers(&service.Services{NonceService: svc}, config.Workers{SweepInterval: 2 * time.Millisecond}, logger.Nop())
	require.Len(t, ws.workers, 1)

	ws.Run(context.Background())
	assert.Eventually(t, func() bool { return svc.calls.Load() >= 1 }, time.Second, time.Millisecond)
	ws.Stop()
}
