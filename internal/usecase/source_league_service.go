package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/proplayer"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
)

type SourceLeagueService struct {
	leagueRepo sourceleague.Repository
	playerRepo proplayer.Repository
}

func NewSourceLeagueService(leagueRepo sourceleague.Repository, playerRepo proplayer.Repository) *SourceLeagueService {
	return &SourceLeagueService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
	}
}

func (s *SourceLeagueService) ListLeagues(ctx context.Context) ([]sourceleague.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SourceLeagueService.ListLeagues")
	defer span.End()

	items, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list source leagues: %w", err)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	return items, nil
}

func (s *SourceLeagueService) ListPlayers(ctx context.Context, sourceLeagueID string) ([]proplayer.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SourceLeagueService.ListPlayers")
	defer span.End()

	sourceLeagueID = strings.TrimSpace(sourceLeagueID)
	if sourceLeagueID == "" {
		return nil, fmt.Errorf("%w: source league id is required", ErrInvalidInput)
	}

	if _, exists, err := s.leagueRepo.GetByID(ctx, sourceLeagueID); err != nil {
		return nil, fmt.Errorf("get source league by id: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: league=%s", sourceleague.ErrNotFound, sourceLeagueID)
	}

	items, err := s.playerRepo.ListBySourceLeague(ctx, sourceLeagueID)
	if err != nil {
		return nil, fmt.Errorf("list players by source league: %w", err)
	}

	return items, nil
}
