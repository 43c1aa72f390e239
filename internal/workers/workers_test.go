// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tzy-lab/paperdesk/internal/mock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

// stoppableWorker additionally records Stop calls into a shared order slice.
type stoppableWorker struct {
	mockWorker
	id    int
	order *[]int
}

func (s *stoppableWorker) Stop() {
	*s.order = append(*s.order, s.id)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := New(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New()

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	order := []int{}

	ws := New(
		&stoppableWorker{id: 1, order: &order},
		&stoppableWorker{id: 2, order: &order},
		&stoppableWorker{id: 3, order: &order},
	)
	ws.Run()
	ws.Stop()

	expected := []int{3, 2, 1}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Stop_SkipsPlainWorkers(t *testing.T) {
	order := []int{}
	plain := &mockWorker{}

	ws := New(plain, &stoppableWorker{id: 2, order: &order})
	ws.Run()
	ws.Stop()

	if len(order) != 1 || order[0] != 2 {
		t.Errorf("expected only stoppable worker stopped, got %v", order)
	}
}

func TestUsageFlush_RunAndStopDelegate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	job := mock.NewMockClientUsageJob(ctrl)
	job.EXPECT().Start(ctx, time.Minute)
	job.EXPECT().Stop()

	flush := NewUsageFlush(ctx, job, time.Minute)
	ws := New(flush)
	ws.Run()
	ws.Stop()
}
