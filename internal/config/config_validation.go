// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The ledger sweep threshold is derived from the recency window itself, so it
// can never exceed it; what is checked here is that the window is well formed
// and that the sweep runs at least once per window.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendHosted:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres backend requires a DSN", ErrInvalidStorageConfigs)
		}
	case BackendEmbedded:
		if cfg.Storage.Embedded.Path == "" {
			return fmt.Errorf("%w: sqlite backend requires a file path", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Nonce.BucketSize < time.Second || cfg.Nonce.BucketSize%time.Second != 0 {
		return fmt.Errorf("%w: bucket size must be a whole number of seconds", ErrInvalidNonceConfigs)
	}
	if cfg.Nonce.WindowBuckets < 1 {
		return fmt.Errorf("%w: window must span at least one bucket", ErrInvalidNonceConfigs)
	}

	if cfg.Workers.SweepInterval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.SweepInterval > cfg.Nonce.Window().Width() {
		return fmt.Errorf("%w: sweep interval %s exceeds recency window %s",
			ErrInvalidWorkerConfigs, cfg.Workers.SweepInterval, cfg.Nonce.Window().Width())
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	return nil
}
