package fantasyleague

import (
	"errors"
	"testing"
)

func intPtr(v int) *int {
	return &v
}

func TestNextDraftPosition(t *testing.T) {
	tests := []struct {
		name      string
		current   *int
		teams     int
		want      int
		targetErr error
	}{
		{name: "advances within round", current: intPtr(1), teams: 4, want: 2},
		{name: "wraps after last seat", current: intPtr(4), teams: 4, want: 1},
		{name: "single team stays on seat one", current: intPtr(1), teams: 1, want: 1},
		{name: "draft not started", current: nil, teams: 4, targetErr: ErrDraftNotStarted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextDraftPosition(League{ID: "fl-1", NumberOfTeams: tc.teams, CurrentDraftPosition: tc.current})
			if tc.targetErr != nil {
				if !errors.Is(err, tc.targetErr) {
					t.Fatalf("expected %v, got %v", tc.targetErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected position %d, got %d", tc.want, got)
			}
		})
	}
}

func TestNextDraftPosition_FullRoundWrapsToOne(t *testing.T) {
	league := League{ID: "fl-1", NumberOfTeams: 4, CurrentDraftPosition: intPtr(1)}
	seen := make([]int, 0, 5)
	for range 5 {
		seen = append(seen, *league.CurrentDraftPosition)
		next, err := NextDraftPosition(league)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		league.CurrentDraftPosition = &next
	}

	want := []int{1, 2, 3, 4, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("unexpected sequence: %v", seen)
		}
	}
}

func TestNextDraftOrderPosition(t *testing.T) {
	if got := NextDraftOrderPosition(nil); got != 1 {
		t.Fatalf("expected 1 for empty order, got %d", got)
	}
	entries := []DraftOrderEntry{{UserID: "a", Position: 2}, {UserID: "b", Position: 1}}
	if got := NextDraftOrderPosition(entries); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestValidateDraftOrder(t *testing.T) {
	current := []DraftOrderEntry{
		{LeagueID: "fl-1", UserID: "owner", Position: 1},
		{LeagueID: "fl-1", UserID: "guest", Position: 2},
	}

	tests := []struct {
		name      string
		proposed  []DraftOrderEntry
		targetErr error
	}{
		{
			name:     "swap succeeds",
			proposed: []DraftOrderEntry{{UserID: "owner", Position: 2}, {UserID: "guest", Position: 1}},
		},
		{
			name:      "missing member",
			proposed:  []DraftOrderEntry{{UserID: "owner", Position: 1}},
			targetErr: ErrDraftOrder,
		},
		{
			name:      "duplicate position",
			proposed:  []DraftOrderEntry{{UserID: "owner", Position: 1}, {UserID: "guest", Position: 1}},
			targetErr: ErrDraftOrder,
		},
		{
			name:      "gap in positions",
			proposed:  []DraftOrderEntry{{UserID: "owner", Position: 1}, {UserID: "guest", Position: 3}},
			targetErr: ErrDraftOrder,
		},
		{
			name:      "unknown user",
			proposed:  []DraftOrderEntry{{UserID: "owner", Position: 1}, {UserID: "stranger", Position: 2}},
			targetErr: ErrDraftOrder,
		},
		{
			name:      "duplicate user hides an omitted member",
			proposed:  []DraftOrderEntry{{UserID: "owner", Position: 1}, {UserID: "owner", Position: 2}},
			targetErr: ErrDraftOrder,
		},
		{
			name:      "negative position",
			proposed:  []DraftOrderEntry{{UserID: "owner", Position: -1}, {UserID: "guest", Position: 2}},
			targetErr: ErrDraftOrder,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDraftOrder(current, tc.proposed)
			if tc.targetErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.targetErr != nil && !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}

func TestShiftAfterRemoval(t *testing.T) {
	snapshot := []DraftOrderEntry{
		{UserID: "a", Position: 1},
		{UserID: "b", Position: 2},
		{UserID: "c", Position: 3},
		{UserID: "d", Position: 4},
	}

	removed, shifted, err := ShiftAfterRemoval(snapshot, "b")
	if err != nil {
		t.Fatalf("shift: %v", err)
	}
	if removed.UserID != "b" || removed.Position != 2 {
		t.Fatalf("unexpected removed entry: %+v", removed)
	}
	if len(shifted) != 2 {
		t.Fatalf("expected 2 shifted entries, got %d", len(shifted))
	}
	want := map[string]int{"c": 2, "d": 3}
	for _, entry := range shifted {
		if want[entry.UserID] != entry.Position {
			t.Fatalf("unexpected shifted entry: %+v", entry)
		}
	}
	if snapshot[2].Position != 3 {
		t.Fatalf("snapshot must not be mutated, got %+v", snapshot[2])
	}

	if _, _, err := ShiftAfterRemoval(snapshot, "missing"); !errors.Is(err, ErrDraftOrder) {
		t.Fatalf("expected ErrDraftOrder for missing user, got %v", err)
	}
}
