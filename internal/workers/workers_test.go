// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks Start and Stop calls.
type mockWorker struct {
	id    int
	log   *[]string
	mu    *sync.Mutex
	start int
	stop  int
}

func (m *mockWorker) Start(context.Context) {
	m.start++
	m.record("start")
}

func (m *mockWorker) Stop() {
	m.stop++
	m.record("stop")
}

func (m *mockWorker) record(event string) {
	if m.log == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.log = append(*m.log, event+string(rune('0'+m.id)))
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.start != 1 {
			t.Errorf("worker[%d]: expected start=1, got %d", i, w.start)
		}
		if w.stop != 0 {
			t.Errorf("worker[%d]: expected stop=0, got %d", i, w.stop)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_StartAndStopOrder(t *testing.T) {
	var (
		events []string
		mu     sync.Mutex
	)
	newWorker := func(id int) *mockWorker {
		return &mockWorker{id: id, log: &events, mu: &mu}
	}

	ws := &Workers{workers: []Worker{newWorker(1), newWorker(2), newWorker(3)}}
	ws.Run(context.Background())
	ws.Stop()

	expected := []string{"start1", "start2", "start3", "stop3", "stop2", "stop1"}
	if len(events) != len(expected) {
		t.Fatalf("expected %d events, got %v", len(expected), events)
	}
	for i, v := range expected {
		if events[i] != v {
			t.Errorf("expected events[%d]=%s, got %s", i, v, events[i])
		}
	}
}
