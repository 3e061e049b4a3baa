package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	const workers = 32
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Load(t.Context(), store, "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	store.Set(t.Context(), "k", 1)
	if _, ok := store.Get(t.Context(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(time.Minute)
	if _, ok := store.Get(t.Context(), "k"); ok {
		t.Fatalf("expected entry to expire after ttl")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted, len=%d", store.Len())
	}
}

func TestStore_LoadErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	var calls atomic.Int32
	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("db down")
	}

	if _, err := Load(t.Context(), store, "k", failing); err == nil {
		t.Fatalf("expected loader error")
	}
	got, err := Load(t.Context(), store, "k", func(context.Context) (int, error) { return 7, nil })
	if err != nil || got != 7 {
		t.Fatalf("expected reload after error, got %d (%v)", got, err)
	}
	if calls.Load() != 1 {
		t.Fatalf("unexpected failing loader calls: %d", calls.Load())
	}

	if _, err := Load(t.Context(), store, "k", func(context.Context) (string, error) { return "", nil }); err == nil {
		t.Fatalf("expected type mismatch error for cached int")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
