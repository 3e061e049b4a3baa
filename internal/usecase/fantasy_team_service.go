package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/logging"
)

type PickupPlayerInput struct {
	UserID   string
	LeagueID string
	PlayerID string
}

type DropPlayerInput struct {
	UserID   string
	LeagueID string
	PlayerID string
}

type SwapPlayersInput struct {
	UserID         string
	LeagueID       string
	DropPlayerID   string
	PickupPlayerID string
}

type FantasyTeamService struct {
	leagueRepo fantasyleague.Repository
	teamRepo   fantasyteam.Repository
	tx         LeagueTransactor
	leagueUtil fantasyLeagueUtil
	teamUtil   fantasyTeamUtil
	logger     *logging.Logger
	now        func() time.Time
}

func NewFantasyTeamService(repos FantasyRepositories, tx LeagueTransactor, logger *logging.Logger) *FantasyTeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FantasyTeamService{
		leagueRepo: repos.Leagues,
		teamRepo:   repos.Teams,
		tx:         tx,
		leagueUtil: newFantasyLeagueUtil(repos),
		teamUtil:   newFantasyTeamUtil(repos),
		logger:     logger,
		now:        time.Now,
	}
}

func (s *FantasyTeamService) GetAllTeamWeeks(ctx context.Context, userID, leagueID string) ([]fantasyteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyTeamService.GetAllTeamWeeks")
	defer span.End()

	league, err := s.leagueUtil.validateLeague(ctx, leagueID,
		fantasyleague.StatusDraft,
		fantasyleague.StatusActive,
		fantasyleague.StatusCompleted,
	)
	if err != nil {
		return nil, err
	}
	if _, err := s.leagueUtil.requireAcceptedMembership(ctx, league.ID, userID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByUser(ctx, league.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams by user: %w", err)
	}
	slices.SortFunc(teams, func(a, b fantasyteam.Team) int { return a.Week - b.Week })

	return teams, nil
}

// ListLeagueRosters returns every roster of the week. Week 0 means the league's current week.
func (s *FantasyTeamService) ListLeagueRosters(ctx context.Context, userID, leagueID string, week int) ([]fantasyteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyTeamService.ListLeagueRosters")
	defer span.End()

	if week < 0 {
		return nil, fmt.Errorf("%w: week must not be negative", ErrInvalidInput)
	}

	league, err := s.leagueUtil.validateLeague(ctx, leagueID,
		fantasyleague.StatusDraft,
		fantasyleague.StatusActive,
		fantasyleague.StatusCompleted,
	)
	if err != nil {
		return nil, err
	}
	if _, err := s.leagueUtil.requireAcceptedMembership(ctx, league.ID, userID); err != nil {
		return nil, err
	}
	if week == 0 {
		week = league.CurrentWeek
	}

	teams, err := s.teamRepo.ListByWeek(ctx, league.ID, week)
	if err != nil {
		return nil, fmt.Errorf("list teams by week: %w", err)
	}
	slices.SortFunc(teams, func(a, b fantasyteam.Team) int { return strings.Compare(a.UserID, b.UserID) })

	return teams, nil
}

func (s *FantasyTeamService) PickupPlayer(ctx context.Context, input PickupPlayerInput) (fantasyteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyTeamService.PickupPlayer")
	defer span.End()

	var (
		saved          fantasyteam.Team
		draftCompleted bool
	)
	err := s.tx.WithinLeague(ctx, input.LeagueID, func(ctx context.Context) error {
		league, err := s.leagueUtil.validateLeague(ctx, input.LeagueID, fantasyleague.StatusDraft, fantasyleague.StatusActive)
		if err != nil {
			return err
		}

		player, err := s.teamUtil.resolvePlayer(ctx, input.PlayerID)
		if err != nil {
			return err
		}
		if err := s.teamUtil.validatePlayerFromAvailableLeague(ctx, league, player.ID); err != nil {
			return err
		}

		if _, err := s.leagueUtil.requireAcceptedMembership(ctx, league.ID, input.UserID); err != nil {
			return err
		}

		drafting := league.Status == fantasyleague.StatusDraft
		if drafting {
			onTheClock, err := s.teamUtil.isUsersPositionToDraft(ctx, league, input.UserID)
			if err != nil {
				return err
			}
			if !onTheClock {
				return fmt.Errorf("%w: It is not your turn to draft", fantasyteam.ErrDraft)
			}
		}

		now := s.now().UTC()
		team, err := s.teamUtil.currentTeam(ctx, league, input.UserID, now)
		if err != nil {
			return err
		}
		if _, filled := team.PlayerFor(player.Role); filled {
			return fmt.Errorf("%w: Role %s already filled", fantasyteam.ErrDraft, player.Role)
		}

		drafted, err := s.teamUtil.isPlayerDrafted(ctx, league, player.ID)
		if err != nil {
			return err
		}
		if drafted {
			return fmt.Errorf("%w: Player already drafted", fantasyteam.ErrDraft)
		}

		team.Assign(player.Role, player.ID)
		team.UpdatedAt = now
		if err := s.teamRepo.Upsert(ctx, team); err != nil {
			return fmt.Errorf("upsert fantasy team: %w", err)
		}
		saved = team

		if !drafting {
			return nil
		}

		advanced, err := s.leagueUtil.updateDraftPosition(league)
		if err != nil {
			return err
		}
		complete, err := s.teamUtil.allTeamsFullyDrafted(ctx, advanced)
		if err != nil {
			return err
		}
		if complete {
			advanced.Status = fantasyleague.StatusActive
			draftCompleted = true
		}
		advanced.UpdatedAt = now
		if err := s.leagueRepo.Update(ctx, advanced); err != nil {
			return fmt.Errorf("advance draft position: %w", err)
		}
		return nil
	})
	if err != nil {
		return fantasyteam.Team{}, err
	}

	s.logger.InfoContext(ctx, "fantasy player picked up",
		"league_id", saved.LeagueID,
		"user_id", saved.UserID,
		"player_id", input.PlayerID,
		"week", saved.Week,
	)
	if draftCompleted {
		s.logger.InfoContext(ctx, "fantasy league draft completed", "league_id", saved.LeagueID)
	}
	return saved, nil
}

func (s *FantasyTeamService) DropPlayer(ctx context.Context, input DropPlayerInput) (fantasyteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyTeamService.DropPlayer")
	defer span.End()

	var saved fantasyteam.Team
	err := s.tx.WithinLeague(ctx, input.LeagueID, func(ctx context.Context) error {
		league, err := s.leagueUtil.validateLeague(ctx, input.LeagueID, fantasyleague.StatusActive)
		if err != nil {
			return err
		}
		if _, err := s.leagueUtil.requireAcceptedMembership(ctx, league.ID, input.UserID); err != nil {
			return err
		}

		player, err := s.teamUtil.resolvePlayer(ctx, input.PlayerID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		team, err := s.teamUtil.currentTeam(ctx, league, input.UserID, now)
		if err != nil {
			return err
		}
		if current, _ := team.PlayerFor(player.Role); current != player.ID {
			return fmt.Errorf("%w: Player not drafted", fantasyteam.ErrDraft)
		}

		team.Clear(player.Role)
		team.UpdatedAt = now
		if err := s.teamRepo.Upsert(ctx, team); err != nil {
			return fmt.Errorf("upsert fantasy team: %w", err)
		}
		saved = team
		return nil
	})
	if err != nil {
		return fantasyteam.Team{}, err
	}

	s.logger.InfoContext(ctx, "fantasy player dropped", "league_id", saved.LeagueID, "user_id", saved.UserID, "player_id", input.PlayerID)
	return saved, nil
}

func (s *FantasyTeamService) SwapPlayers(ctx context.Context, input SwapPlayersInput) (fantasyteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyTeamService.SwapPlayers")
	defer span.End()

	var saved fantasyteam.Team
	err := s.tx.WithinLeague(ctx, input.LeagueID, func(ctx context.Context) error {
		league, err := s.leagueUtil.validateLeague(ctx, input.LeagueID, fantasyleague.StatusActive)
		if err != nil {
			return err
		}
		if _, err := s.leagueUtil.requireAcceptedMembership(ctx, league.ID, input.UserID); err != nil {
			return err
		}

		dropPlayer, err := s.teamUtil.resolvePlayer(ctx, input.DropPlayerID)
		if err != nil {
			return err
		}
		pickupPlayer, err := s.teamUtil.resolvePlayer(ctx, input.PickupPlayerID)
		if err != nil {
			return err
		}
		if dropPlayer.Role != pickupPlayer.Role {
			return fmt.Errorf("%w: Mismatching roles", fantasyteam.ErrDraft)
		}
		if err := s.teamUtil.validatePlayerFromAvailableLeague(ctx, league, pickupPlayer.ID); err != nil {
			return err
		}

		now := s.now().UTC()
		team, err := s.teamUtil.currentTeam(ctx, league, input.UserID, now)
		if err != nil {
			return err
		}
		if current, _ := team.PlayerFor(dropPlayer.Role); current != dropPlayer.ID {
			return fmt.Errorf("%w: Player not drafted", fantasyteam.ErrDraft)
		}

		drafted, err := s.teamUtil.isPlayerDrafted(ctx, league, pickupPlayer.ID)
		if err != nil {
			return err
		}
		if drafted {
			return fmt.Errorf("%w: Player already drafted", fantasyteam.ErrDraft)
		}

		team.Assign(pickupPlayer.Role, pickupPlayer.ID)
		team.UpdatedAt = now
		if err := s.teamRepo.Upsert(ctx, team); err != nil {
			return fmt.Errorf("upsert fantasy team: %w", err)
		}
		saved = team
		return nil
	})
	if err != nil {
		return fantasyteam.Team{}, err
	}

	s.logger.InfoContext(ctx, "fantasy players swapped",
		"league_id", saved.LeagueID,
		"user_id", saved.UserID,
		"drop_player_id", input.DropPlayerID,
		"pickup_player_id", input.PickupPlayerID,
	)
	return saved, nil
}
