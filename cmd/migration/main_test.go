package main

import (
	"strings"
	"testing"

	"github.com/riskibarqy/lol-fantasy-league/db/migrations"
)

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d (%v)", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d (%v)", got, err)
	}
	for _, raw := range []string{"0", "-1", "abc"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("2"); err != nil || got != 2 {
		t.Fatalf("unexpected version: %d (%v)", got, err)
	}
	if _, err := parseVersion("-5"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if got, err := parseTarget("7"); err != nil || got != 7 {
		t.Fatalf("unexpected target: %d (%v)", got, err)
	}
	if _, err := parseTarget("x"); err == nil {
		t.Fatalf("expected error for invalid target")
	}
}

func TestNormalizeDBURL(t *testing.T) {
	raw := "postgres://u:p@localhost:5432/fantasy?sslmode=disable"

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
	if got := normalizeDBURL(raw); got != raw {
		t.Fatalf("expected url unchanged, got %s", got)
	}

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "true")
	want := "postgres://u:p@localhost:5432/fantasy?disable_prepared_binary_result=yes&sslmode=disable"
	if got := normalizeDBURL(raw); got != want {
		t.Fatalf("unexpected url:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	if ups == 0 || ups != downs {
		t.Fatalf("expected paired migrations, got %d up and %d down", ups, downs)
	}
}
