package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/lol-fantasy-league/internal/platform/keylock"
)

// LeagueTransactor serializes work per league with a keyed mutex. The memory repositories have
// no rollback, so callers validate before they write.
type LeagueTransactor struct {
	locks *keylock.Locker
}

func NewLeagueTransactor() *LeagueTransactor {
	return &LeagueTransactor{locks: keylock.New()}
}

func (t *LeagueTransactor) WithinLeague(ctx context.Context, leagueID string, fn func(ctx context.Context) error) error {
	unlock, err := t.locks.Lock(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("lock fantasy league %s: %w", leagueID, err)
	}
	defer unlock()

	return fn(ctx)
}
