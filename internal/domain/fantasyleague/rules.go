package fantasyleague

import (
	"fmt"
	"slices"
)

// NextDraftPosition advances the draft pointer on a 1-based ring of NumberOfTeams seats.
func NextDraftPosition(l League) (int, error) {
	if l.CurrentDraftPosition == nil {
		return 0, fmt.Errorf("%w: league=%s", ErrDraftNotStarted, l.ID)
	}

	next := *l.CurrentDraftPosition + 1
	if next > l.NumberOfTeams {
		next = 1
	}
	return next, nil
}

// NextDraftOrderPosition is the seat handed to the next member to be accepted.
func NextDraftOrderPosition(entries []DraftOrderEntry) int {
	highest := 0
	for _, entry := range entries {
		if entry.Position > highest {
			highest = entry.Position
		}
	}
	return highest + 1
}

// ValidateDraftOrder checks an owner supplied reordering against the current order.
// The proposal must seat every current member exactly once on positions 1..N.
func ValidateDraftOrder(current, proposed []DraftOrderEntry) error {
	if len(proposed) != len(current) {
		return fmt.Errorf("%w: expected %d entries, got %d", ErrDraftOrder, len(current), len(proposed))
	}

	members := make(map[string]struct{}, len(current))
	for _, entry := range current {
		members[entry.UserID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(proposed))
	positions := make([]int, 0, len(proposed))
	for _, entry := range proposed {
		if _, ok := members[entry.UserID]; !ok {
			return fmt.Errorf("%w: user %s is not part of the draft order", ErrDraftOrder, entry.UserID)
		}
		if _, dup := seen[entry.UserID]; dup {
			return fmt.Errorf("%w: user %s appears more than once", ErrDraftOrder, entry.UserID)
		}
		seen[entry.UserID] = struct{}{}
		positions = append(positions, entry.Position)
	}

	slices.Sort(positions)
	for i, position := range positions {
		if position != i+1 {
			return fmt.Errorf("%w: positions must be exactly 1..%d", ErrDraftOrder, len(current))
		}
	}

	return nil
}

// ShiftAfterRemoval finds userID in the pre-removal snapshot and returns its entry together
// with every entry seated behind it, already moved up by one seat.
func ShiftAfterRemoval(snapshot []DraftOrderEntry, userID string) (DraftOrderEntry, []DraftOrderEntry, error) {
	idx := slices.IndexFunc(snapshot, func(e DraftOrderEntry) bool { return e.UserID == userID })
	if idx < 0 {
		return DraftOrderEntry{}, nil, fmt.Errorf("%w: user %s has no draft position", ErrDraftOrder, userID)
	}
	removed := snapshot[idx]

	shifted := make([]DraftOrderEntry, 0, len(snapshot))
	for _, entry := range snapshot {
		if entry.Position > removed.Position {
			entry.Position--
			shifted = append(shifted, entry)
		}
	}

	return removed, shifted, nil
}
