package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.ReportEvent
	done   chan struct{}
	want   int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{done: make(chan struct{}), want: want}
}

func (s *recordingService) Process(_ context.Context, ev ports.ReportEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingService) wait(t *testing.T) []ports.ReportEvent {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.ReportEvent, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := newRecordingService(10)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := int64(1); i <= 10; i++ {
		d.Enqueue(ports.ReportEvent{ProjectID: i, UserID: 3, Date: time.Now()})
	}

	events := svc.wait(t)
	seen := make(map[int64]bool)
	for _, ev := range events {
		seen[ev.ProjectID] = true
	}
	for i := int64(1); i <= 10; i++ {
		if !seen[i] {
			t.Fatalf("event for project %d never processed", i)
		}
	}
}

func TestDispatcher_PerProjectOrdering(t *testing.T) {
	const n = 20
	svc := newRecordingService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// All events for one project land on one worker and keep their order.
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		d.Enqueue(ports.ReportEvent{ProjectID: 7, UserID: 3, Date: base.AddDate(0, 0, i)})
	}

	events := svc.wait(t)
	for i := 1; i < len(events); i++ {
		if events[i].Date.Before(events[i-1].Date) {
			t.Fatalf("events processed out of order at %d: %v before %v", i, events[i].Date, events[i-1].Date)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(8, newRecordingService(0), zerolog.Nop())

	for _, id := range []int64{1, 42, 999999} {
		first := d.shardIndex(id)
		for i := 0; i < 5; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard for project %d changed: %d then %d", id, first, got)
			}
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
