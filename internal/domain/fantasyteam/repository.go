package fantasyteam

import "context"

type Repository interface {
	Get(ctx context.Context, leagueID, userID string, week int) (Team, bool, error)
	// GetLatest returns the roster with the highest week for the member.
	GetLatest(ctx context.Context, leagueID, userID string) (Team, bool, error)
	ListByUser(ctx context.Context, leagueID, userID string) ([]Team, error)
	ListByWeek(ctx context.Context, leagueID string, week int) ([]Team, error)
	Upsert(ctx context.Context, team Team) error
}
