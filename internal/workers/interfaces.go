// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every worker together with the server.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker in the background and returns immediately; the
// worker runs until ctx is cancelled or Stop is called. Stop blocks until the
// worker has fully exited and is a no-op when the worker is not running.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) { go w.loop(ctx) }
//	func (w *MyWorker) Stop()                     {}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
