package fantasyleague

import "context"

type Repository interface {
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	ListByIDs(ctx context.Context, leagueIDs []string) ([]League, error)
	ListByStatus(ctx context.Context, status Status) ([]League, error)
	Create(ctx context.Context, league League) error
	Update(ctx context.Context, league League) error
}

type MembershipRepository interface {
	Get(ctx context.Context, leagueID, userID string) (Membership, bool, error)
	Create(ctx context.Context, membership Membership) error
	UpdateStatus(ctx context.Context, leagueID, userID string, status MembershipStatus) error
	// ListByLeague returns memberships of the league, filtered to the given statuses when any are passed.
	ListByLeague(ctx context.Context, leagueID string, statuses ...MembershipStatus) ([]Membership, error)
	ListByUser(ctx context.Context, userID string, statuses ...MembershipStatus) ([]Membership, error)
}

type DraftOrderRepository interface {
	// ListByLeague returns entries ordered by position.
	ListByLeague(ctx context.Context, leagueID string) ([]DraftOrderEntry, error)
	Get(ctx context.Context, leagueID, userID string) (DraftOrderEntry, bool, error)
	Create(ctx context.Context, entry DraftOrderEntry) error
	Delete(ctx context.Context, leagueID, userID string) error
	UpdatePositions(ctx context.Context, leagueID string, entries []DraftOrderEntry) error
}

type ScoringSettingsRepository interface {
	GetByLeague(ctx context.Context, leagueID string) (ScoringSettings, bool, error)
	Upsert(ctx context.Context, settings ScoringSettings) error
}
