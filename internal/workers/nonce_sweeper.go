// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
)

// defaultSweepInterval is used when the configured interval is not positive.
const defaultSweepInterval = time.Hour

// nonceSweeper purges expired nonce ledger entries on a ticker. It runs
// independently of request handling; a failed sweep is logged and retried on
// the next tick.
type nonceSweeper struct {
	nonceService service.NonceService
	interval     time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewNonceSweeper creates a nonce ledger sweeper. The job is idle until Start is called.
func NewNonceSweeper(nonceService service.NonceService, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &nonceSweeper{
		nonceService: nonceService,
		interval:     interval,
		logger:       logger,
	}
}

// Start stops any previously running sweep, then launches a background
// goroutine that purges the ledger every interval. The goroutine exits when
// ctx is cancelled or Stop is called.
func (s *nonceSweeper) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info().Dur("interval", s.interval).Msg("nonce sweeper started")

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.sweep(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
func (s *nonceSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		s.logger.Info().Msg("nonce sweeper stopped")
	}
	s.wg.Wait()
}

func (s *nonceSweeper) sweep(ctx context.Context) {
	purged, err := s.nonceService.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("nonce sweep failed")
		}
		return
	}
	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Msg("expired nonces purged")
	}
}
