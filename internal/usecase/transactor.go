package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/proplayer"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
)

// LeagueTransactor runs fn as the only writer of a league. Repository calls made with the ctx
// passed to fn join the same unit of work, which commits only when fn returns nil.
type LeagueTransactor interface {
	WithinLeague(ctx context.Context, leagueID string, fn func(ctx context.Context) error) error
}

// FantasyRepositories groups the data access used by the fantasy services.
type FantasyRepositories struct {
	Leagues       fantasyleague.Repository
	Memberships   fantasyleague.MembershipRepository
	DraftOrder    fantasyleague.DraftOrderRepository
	Scoring       fantasyleague.ScoringSettingsRepository
	Teams         fantasyteam.Repository
	Players       proplayer.Repository
	SourceLeagues sourceleague.Repository
	Users         user.Repository
}

// JobQueue publishes a delayed call to one of the internal job endpoints.
type JobQueue interface {
	Enqueue(ctx context.Context, path string, payload any, delay time.Duration, deduplicationID string) error
}

type noopJobQueue struct{}

func (noopJobQueue) Enqueue(_ context.Context, _ string, _ any, _ time.Duration, _ string) error {
	return nil
}

func NewNoopJobQueue() JobQueue {
	return noopJobQueue{}
}
