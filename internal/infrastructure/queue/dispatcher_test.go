package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/auth-service/internal/core/domain"
)

type captureRepo struct {
	mu     sync.Mutex
	events []domain.AuthEvent
	done   chan struct{} // signalled on every insert
}

func newCaptureRepo() *captureRepo {
	return &captureRepo{done: make(chan struct{}, 64)}
}

func (r *captureRepo) Insert(_ context.Context, event *domain.AuthEvent) error {
	r.mu.Lock()
	r.events = append(r.events, *event)
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func (r *captureRepo) snapshot() []domain.AuthEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuthEvent, len(r.events))
	copy(out, r.events)
	return out
}

func waitFor(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for insert %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_PersistsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newCaptureRepo()
	d := NewDispatcher(2, repo, zerolog.Nop())
	d.Start(ctx)

	d.Record(domain.AuthEvent{Action: domain.ActionLogin, Username: "alice", Success: true})
	d.Record(domain.AuthEvent{Action: domain.ActionLogout, Username: "bob", Success: true})
	waitFor(t, repo.done, 2)

	events := repo.snapshot()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	seen := map[domain.AuthAction]bool{}
	for _, e := range events {
		seen[e.Action] = true
	}
	if !seen[domain.ActionLogin] || !seen[domain.ActionLogout] {
		t.Fatalf("missing actions: %+v", events)
	}
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newCaptureRepo()
	d := NewDispatcher(4, repo, zerolog.Nop())
	d.Start(ctx)

	actions := []domain.AuthAction{domain.ActionRegister, domain.ActionLogin, domain.ActionRefresh, domain.ActionLogout}
	for _, a := range actions {
		d.Record(domain.AuthEvent{Action: a, Username: "carol", Success: true})
	}
	waitFor(t, repo.done, len(actions))

	var got []domain.AuthAction
	for _, e := range repo.snapshot() {
		if e.Username == "carol" {
			got = append(got, e.Action)
		}
	}
	for i, a := range actions {
		if got[i] != a {
			t.Fatalf("events out of order: %v", got)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newCaptureRepo(), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
