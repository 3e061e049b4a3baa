package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/proplayer"
)

type fantasyTeamUtil struct {
	players    proplayer.Repository
	teams      fantasyteam.Repository
	draftOrder fantasyleague.DraftOrderRepository
}

func newFantasyTeamUtil(repos FantasyRepositories) fantasyTeamUtil {
	return fantasyTeamUtil{
		players:    repos.Players,
		teams:      repos.Teams,
		draftOrder: repos.DraftOrder,
	}
}

func (u fantasyTeamUtil) resolvePlayer(ctx context.Context, playerID string) (proplayer.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return proplayer.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := u.players.GetByID(ctx, playerID)
	if err != nil {
		return proplayer.Player{}, fmt.Errorf("get professional player by id: %w", err)
	}
	if !exists {
		return proplayer.Player{}, fmt.Errorf("%w: player=%s", proplayer.ErrNotFound, playerID)
	}

	return item, nil
}

func (u fantasyTeamUtil) validatePlayerFromAvailableLeague(ctx context.Context, league fantasyleague.League, playerID string) error {
	sourceLeagueIDs, err := u.players.ListSourceLeagueIDs(ctx, playerID)
	if err != nil {
		return fmt.Errorf("list player source leagues: %w", err)
	}

	for _, id := range sourceLeagueIDs {
		if slices.Contains(league.AvailableLeagues, id) {
			return nil
		}
	}

	return fmt.Errorf("%w: Player not in available league", fantasyteam.ErrDraft)
}

func (u fantasyTeamUtil) isUsersPositionToDraft(ctx context.Context, league fantasyleague.League, userID string) (bool, error) {
	entry, exists, err := u.draftOrder.Get(ctx, league.ID, userID)
	if err != nil {
		return false, fmt.Errorf("get draft order entry: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("%w: user %s has no draft position", fantasyteam.ErrDraft, userID)
	}
	if league.CurrentDraftPosition == nil {
		return false, nil
	}

	return entry.Position == *league.CurrentDraftPosition, nil
}

func (u fantasyTeamUtil) allTeamsFullyDrafted(ctx context.Context, league fantasyleague.League) (bool, error) {
	teams, err := u.teams.ListByWeek(ctx, league.ID, league.CurrentWeek)
	if err != nil {
		return false, fmt.Errorf("list teams by week: %w", err)
	}
	if len(teams) != league.NumberOfTeams {
		return false, nil
	}
	for _, team := range teams {
		if !team.IsComplete() {
			return false, nil
		}
	}

	return true, nil
}

// currentTeam returns the member's latest roster moved onto the league's current week, or an
// empty roster at the current week when the member has none yet.
func (u fantasyTeamUtil) currentTeam(ctx context.Context, league fantasyleague.League, userID string, now time.Time) (fantasyteam.Team, error) {
	latest, exists, err := u.teams.GetLatest(ctx, league.ID, userID)
	if err != nil {
		return fantasyteam.Team{}, fmt.Errorf("get latest team: %w", err)
	}
	if !exists {
		team := fantasyteam.NewTeam(league.ID, userID, league.CurrentWeek)
		team.CreatedAt = now
		return team, nil
	}
	if latest.Week < league.CurrentWeek {
		return latest.CarryForward(league.CurrentWeek, now), nil
	}

	return latest, nil
}

func (u fantasyTeamUtil) isPlayerDrafted(ctx context.Context, league fantasyleague.League, playerID string) (bool, error) {
	teams, err := u.teams.ListByWeek(ctx, league.ID, league.CurrentWeek)
	if err != nil {
		return false, fmt.Errorf("list teams by week: %w", err)
	}
	for _, team := range teams {
		if team.Contains(playerID) {
			return true, nil
		}
	}

	return false, nil
}
