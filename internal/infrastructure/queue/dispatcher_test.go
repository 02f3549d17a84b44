package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/core/ports"
)

type recordingDeliverer struct {
	mu        sync.Mutex
	delivered []ports.Notification
	failing   map[string]error
	done      chan struct{}
	want      int
}

func newRecordingDeliverer(want int) *recordingDeliverer {
	return &recordingDeliverer{
		failing: make(map[string]error),
		done:    make(chan struct{}),
		want:    want,
	}
}

func (d *recordingDeliverer) Deliver(_ context.Context, n ports.Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err, ok := d.failing[n.Message]; ok {
		return err
	}
	d.delivered = append(d.delivered, n)
	if len(d.delivered) == d.want {
		close(d.done)
	}
	return nil
}

func (d *recordingDeliverer) wait(t *testing.T) []ports.Notification {
	t.Helper()
	select {
	case <-d.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]ports.Notification(nil), d.delivered...)
}

func TestDispatcher_DeliversAll(t *testing.T) {
	deliverer := newRecordingDeliverer(3)
	d := NewDispatcher(2, deliverer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 3; i++ {
		d.Enqueue(ports.Notification{UserID: fmt.Sprintf("user-%d", i), Message: "hi", QueuedAt: time.Now()})
	}

	got := deliverer.wait(t)
	if len(got) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(got))
	}
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	const messages = 20
	deliverer := newRecordingDeliverer(messages)
	d := NewDispatcher(4, deliverer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < messages; i++ {
		d.Enqueue(ports.Notification{UserID: "same-user", Message: fmt.Sprintf("msg-%02d", i), QueuedAt: time.Now()})
	}

	got := deliverer.wait(t)
	for i, n := range got {
		if want := fmt.Sprintf("msg-%02d", i); n.Message != want {
			t.Fatalf("delivery %d out of order: got %s, want %s", i, n.Message, want)
		}
	}
}

func TestDispatcher_FailureDoesNotStopWorker(t *testing.T) {
	deliverer := newRecordingDeliverer(1)
	deliverer.failing["bad"] = errors.New("delivery failed")
	d := NewDispatcher(1, deliverer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.Notification{UserID: "u1", Message: "bad", QueuedAt: time.Now()})
	d.Enqueue(ports.Notification{UserID: "u1", Message: "good", QueuedAt: time.Now()})

	got := deliverer.wait(t)
	if len(got) != 1 || got[0].Message != "good" {
		t.Fatalf("expected only the good delivery, got %+v", got)
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingDeliverer(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
