package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amonks/ktra/internal/kv"
)

// testClock hands out strictly increasing instants.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestStore(t *testing.T) (*Store, *kv.MemoryStore, *testClock) {
	t.Helper()

	backend := kv.NewMemoryStore()
	clock := newTestClock()
	store, err := Open(context.Background(), NewGateway(backend, GatewayOptions{}), OpenOptions{Now: clock.Now})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store, backend, clock
}

func mustCreate(t *testing.T, store *Store, title string, points Points) *Task {
	t.Helper()

	created, err := store.Create(context.Background(), title, points)
	if err != nil {
		t.Fatalf("failed to create %q: %v", title, err)
	}
	return created
}

func mustSetStatus(t *testing.T, store *Store, id string, status Status) *Task {
	t.Helper()

	updated, err := store.SetStatus(context.Background(), id, status)
	if err != nil {
		t.Fatalf("failed to set %s to %s: %v", id, status, err)
	}
	return updated
}

func orderedIDs(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []Task, want ...string) {
	t.Helper()

	ids := orderedIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, ids)
		}
	}
}

// failingKV fails every Put after the first `allow` writes.
type failingKV struct {
	*kv.MemoryStore
	allow int
}

var errInjected = errors.New("injected write failure")

func (f *failingKV) Put(ctx context.Context, key, value string) error {
	if f.allow <= 0 {
		return errInjected
	}
	f.allow--
	return f.MemoryStore.Put(ctx, key, value)
}
