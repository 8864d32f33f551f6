// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that records its lifecycle into a shared log.
type mockWorker struct {
	id  int
	log *[]string
}

func (m *mockWorker) Start(context.Context) {
	*m.log = append(*m.log, "start", string(rune('0'+m.id)))
}

func (m *mockWorker) Stop() {
	*m.log = append(*m.log, "stop", string(rune('0'+m.id)))
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(&mockWorker{id: 1, log: &log}, &mockWorker{id: 2, log: &log})

	ws.Start(context.Background())
	ws.Stop()

	want := []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}
