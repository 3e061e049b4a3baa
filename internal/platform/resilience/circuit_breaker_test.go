package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteClassifiesErrors(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 1)
	errClient := errors.New("bad request")
	errServer := errors.New("upstream 503")
	isFailure := func(err error) bool { return errors.Is(err, errServer) }

	if err := b.Execute(func() error { return errClient }, isFailure); !errors.Is(err, errClient) {
		t.Fatalf("expected client error passthrough, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected client errors to keep the breaker closed, got %s", state)
	}

	if err := b.Execute(func() error { return errServer }, isFailure); !errors.Is(err, errServer) {
		t.Fatalf("expected server error passthrough, got %v", err)
	}
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after server failure, got %s", state)
	}

	called := false
	err := b.Execute(func() error { called = true; return nil }, isFailure)
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected short-circuit while open, err=%v called=%v", err, called)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: false, FailureThreshold: 0, OpenTimeout: -time.Second, HalfOpenMaxReq: 3})
	want := CircuitBreakerConfig{Enabled: false, FailureThreshold: 5, OpenTimeout: 15 * time.Second, HalfOpenMaxReq: 3}
	if got != want {
		t.Fatalf("unexpected normalized config: %+v", got)
	}
}

func TestNewCircuitBreakerFromConfig_UsesThreshold(t *testing.T) {
	b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after one failure with threshold 1, got %s", state)
	}
}
