package proplayer

import "context"

type Repository interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	// ListSourceLeagueIDs returns every source league the player has a roster spot in.
	ListSourceLeagueIDs(ctx context.Context, playerID string) ([]string, error)
	ListBySourceLeague(ctx context.Context, sourceLeagueID string) ([]Player, error)
}
