package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("create user: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for wrapped unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "23503"}) {
			t.Fatalf("expected false for foreign key violation")
		}
		if isUniqueViolation(fakeErr("boom")) {
			t.Fatalf("expected false for non-pq error")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation fantasy_leagues does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestGetQ(t *testing.T) {
	db := &sqlx.DB{}
	if got := getQ(context.Background(), db); got != queryer(db) {
		t.Fatalf("expected db without a tx in ctx")
	}

	tx := &sqlx.Tx{}
	if got := getQ(withTx(context.Background(), tx), db); got != queryer(tx) {
		t.Fatalf("expected tx carried by ctx")
	}
}

func TestFantasyTeamRowRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	team := fantasyteam.NewTeam("lg", "u1", 3)
	team.Assign(fantasyteam.RoleTop, "zeus")
	team.Assign(fantasyteam.RoleSupport, "keria")
	team.CreatedAt = now
	team.UpdatedAt = now

	row := fantasyTeamToRow(team)
	if !row.TopPlayerID.Valid || row.TopPlayerID.String != "zeus" {
		t.Fatalf("unexpected top slot: %+v", row.TopPlayerID)
	}
	if row.MidPlayerID.Valid {
		t.Fatalf("expected empty mid slot to be NULL")
	}

	got := fantasyTeamFromRow(row)
	if id, ok := got.PlayerFor(fantasyteam.RoleSupport); !ok || id != "keria" {
		t.Fatalf("unexpected support slot: %q %v", id, ok)
	}
	if _, ok := got.PlayerFor(fantasyteam.RoleMid); ok {
		t.Fatalf("expected mid slot to stay empty")
	}
	if got.Week != 3 || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestFantasyLeagueRowDraftPosition(t *testing.T) {
	league := fantasyleague.League{ID: "lg", AvailableLeagues: []string{"lck"}}
	row := fantasyLeagueToRow(league)
	if row.CurrentDraftPosition.Valid {
		t.Fatalf("expected NULL draft position before the draft")
	}
	if got := fantasyLeagueFromRow(row); got.CurrentDraftPosition != nil {
		t.Fatalf("expected nil draft position, got %d", *got.CurrentDraftPosition)
	}

	pos := 2
	league.CurrentDraftPosition = &pos
	got := fantasyLeagueFromRow(fantasyLeagueToRow(league))
	if got.CurrentDraftPosition == nil || *got.CurrentDraftPosition != 2 {
		t.Fatalf("unexpected draft position: %v", got.CurrentDraftPosition)
	}
	if len(got.AvailableLeagues) != 1 || got.AvailableLeagues[0] != "lck" {
		t.Fatalf("unexpected available leagues: %v", got.AvailableLeagues)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
