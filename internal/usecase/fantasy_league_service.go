package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
	idgen "github.com/riskibarqy/lol-fantasy-league/internal/platform/id"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
)

const (
	maxLeagueNameLength = 64
	maxNumberOfTeams    = 20
	maxLeagueIDAttempts = 5
	initialFantasyWeek  = 1
)

type CreateFantasyLeagueInput struct {
	UserID           string
	Name             string
	NumberOfTeams    int
	AvailableLeagues []string
}

type UpdateLeagueSettingsInput struct {
	UserID           string
	LeagueID         string
	Name             string
	NumberOfTeams    int
	AvailableLeagues []string
}

type UpdateScoringSettingsInput struct {
	UserID   string
	LeagueID string
	Settings fantasyleague.ScoringSettings
}

type SendInviteInput struct {
	UserID   string
	LeagueID string
	Username string
}

type RevokeMembershipInput struct {
	UserID       string
	LeagueID     string
	TargetUserID string
}

type UpdateDraftOrderInput struct {
	UserID   string
	LeagueID string
	Entries  []fantasyleague.DraftOrderEntry
}

// DraftOrderSlot is a draft order entry joined with the member's username.
type DraftOrderSlot struct {
	UserID   string
	Username string
	Position int
}

type LeagueMember struct {
	UserID   string
	Username string
	Status   fantasyleague.MembershipStatus
}

type MyFantasyLeague struct {
	League           fantasyleague.League
	MembershipStatus fantasyleague.MembershipStatus
}

type FantasyLeagueService struct {
	leagueRepo     fantasyleague.Repository
	membershipRepo fantasyleague.MembershipRepository
	draftOrderRepo fantasyleague.DraftOrderRepository
	scoringRepo    fantasyleague.ScoringSettingsRepository
	userRepo       user.Repository
	tx             LeagueTransactor
	util           fantasyLeagueUtil
	idGen          idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewFantasyLeagueService(
	repos FantasyRepositories,
	tx LeagueTransactor,
	idGen idgen.Generator,
	logger *logging.Logger,
) *FantasyLeagueService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FantasyLeagueService{
		leagueRepo:     repos.Leagues,
		membershipRepo: repos.Memberships,
		draftOrderRepo: repos.DraftOrder,
		scoringRepo:    repos.Scoring,
		userRepo:       repos.Users,
		tx:             tx,
		util:           newFantasyLeagueUtil(repos),
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *FantasyLeagueService) CreateLeague(ctx context.Context, input CreateFantasyLeagueInput) (fantasyleague.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.CreateLeague")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	input.AvailableLeagues = normalizeIDs(input.AvailableLeagues)
	if input.UserID == "" {
		return fantasyleague.League{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := validateLeagueShape(input.Name, input.NumberOfTeams); err != nil {
		return fantasyleague.League{}, err
	}
	if err := s.util.validateAvailableLeagues(ctx, input.AvailableLeagues); err != nil {
		return fantasyleague.League{}, err
	}

	leagueID, err := s.newLeagueID(ctx)
	if err != nil {
		return fantasyleague.League{}, err
	}

	now := s.now().UTC()
	league := fantasyleague.League{
		ID:               leagueID,
		OwnerID:          input.UserID,
		Name:             input.Name,
		Status:           fantasyleague.StatusPreDraft,
		NumberOfTeams:    input.NumberOfTeams,
		AvailableLeagues: input.AvailableLeagues,
		CurrentWeek:      initialFantasyWeek,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := league.Validate(); err != nil {
		return fantasyleague.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.tx.WithinLeague(ctx, leagueID, func(ctx context.Context) error {
		if err := s.leagueRepo.Create(ctx, league); err != nil {
			return fmt.Errorf("create fantasy league: %w", err)
		}

		scoring := fantasyleague.DefaultScoringSettings(leagueID)
		scoring.UpdatedAt = now
		if err := s.scoringRepo.Upsert(ctx, scoring); err != nil {
			return fmt.Errorf("create default scoring settings: %w", err)
		}

		if err := s.membershipRepo.Create(ctx, fantasyleague.Membership{
			LeagueID:  leagueID,
			UserID:    input.UserID,
			Status:    fantasyleague.MembershipAccepted,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("create owner membership: %w", err)
		}

		_, err := s.util.createDraftOrderEntry(ctx, input.UserID, leagueID)
		return err
	})
	if err != nil {
		return fantasyleague.League{}, err
	}

	s.logger.InfoContext(ctx, "fantasy league created",
		"league_id", leagueID,
		"owner_id", input.UserID,
		"number_of_teams", input.NumberOfTeams,
	)
	return league, nil
}

func (s *FantasyLeagueService) GetLeague(ctx context.Context, userID, leagueID string) (fantasyleague.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.GetLeague")
	defer span.End()

	league, err := s.util.validateLeague(ctx, leagueID)
	if err != nil {
		return fantasyleague.League{}, err
	}
	if league.IsOwner(userID) {
		return league, nil
	}

	membership, exists, err := s.membershipRepo.Get(ctx, league.ID, userID)
	if err != nil {
		return fantasyleague.League{}, fmt.Errorf("get membership: %w", err)
	}
	if !exists || (membership.Status != fantasyleague.MembershipAccepted && membership.Status != fantasyleague.MembershipPending) {
		return fantasyleague.League{}, ErrForbidden
	}

	return league, nil
}

func (s *FantasyLeagueService) ListMyLeagues(ctx context.Context, userID string) ([]MyFantasyLeague, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.ListMyLeagues")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	memberships, err := s.membershipRepo.ListByUser(ctx, userID, fantasyleague.MembershipPending, fantasyleague.MembershipAccepted)
	if err != nil {
		return nil, fmt.Errorf("list memberships by user: %w", err)
	}
	if len(memberships) == 0 {
		return []MyFantasyLeague{}, nil
	}

	statusByLeague := make(map[string]fantasyleague.MembershipStatus, len(memberships))
	leagueIDs := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		statusByLeague[membership.LeagueID] = membership.Status
		leagueIDs = append(leagueIDs, membership.LeagueID)
	}

	leagues, err := s.leagueRepo.ListByIDs(ctx, leagueIDs)
	if err != nil {
		return nil, fmt.Errorf("list fantasy leagues by ids: %w", err)
	}

	out := make([]MyFantasyLeague, 0, len(leagues))
	for _, league := range leagues {
		if league.Status == fantasyleague.StatusDeleted {
			continue
		}
		out = append(out, MyFantasyLeague{League: league, MembershipStatus: statusByLeague[league.ID]})
	}
	slices.SortStableFunc(out, func(a, b MyFantasyLeague) int {
		return b.League.CreatedAt.Compare(a.League.CreatedAt)
	})

	return out, nil
}

func (s *FantasyLeagueService) ListMembers(ctx context.Context, userID, leagueID string) ([]LeagueMember, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.ListMembers")
	defer span.End()

	league, err := s.util.validateLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if !league.IsOwner(userID) {
		if _, err := s.util.requireAcceptedMembership(ctx, league.ID, userID); err != nil {
			return nil, ErrForbidden
		}
	}

	memberships, err := s.membershipRepo.ListByLeague(ctx, league.ID)
	if err != nil {
		return nil, fmt.Errorf("list memberships by league: %w", err)
	}

	return iter.MapErr(memberships, func(m *fantasyleague.Membership) (LeagueMember, error) {
		username, err := s.lookupUsername(ctx, m.UserID)
		if err != nil {
			return LeagueMember{}, err
		}
		return LeagueMember{UserID: m.UserID, Username: username, Status: m.Status}, nil
	})
}

func (s *FantasyLeagueService) GetSettings(ctx context.Context, userID, leagueID string) (fantasyleague.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.GetSettings")
	defer span.End()

	league, err := s.util.validateLeague(ctx, leagueID)
	if err != nil {
		return fantasyleague.Settings{}, err
	}
	if !league.IsOwner(userID) {
		return fantasyleague.Settings{}, ErrForbidden
	}

	return league.Settings(), nil
}

func (s *FantasyLeagueService) UpdateSettings(ctx context.Context, input UpdateLeagueSettingsInput) (fantasyleague.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.UpdateSettings")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.AvailableLeagues = normalizeIDs(input.AvailableLeagues)
	if err := validateLeagueShape(input.Name, input.NumberOfTeams); err != nil {
		return fantasyleague.Settings{}, err
	}

	var updated fantasyleague.League
	err := s.tx.WithinLeague(ctx, input.LeagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, input.LeagueID, fantasyleague.StatusPreDraft)
		if err != nil {
			return err
		}
		if !league.IsOwner(input.UserID) {
			return ErrForbidden
		}

		accepted, err := s.util.countMemberships(ctx, league.ID, fantasyleague.MembershipAccepted)
		if err != nil {
			return err
		}
		if input.NumberOfTeams < accepted {
			return fmt.Errorf("%w: number of teams %d is below the %d accepted members", ErrRuleViolation, input.NumberOfTeams, accepted)
		}

		newlySelected := make([]string, 0, len(input.AvailableLeagues))
		for _, id := range input.AvailableLeagues {
			if !slices.Contains(league.AvailableLeagues, id) {
				newlySelected = append(newlySelected, id)
			}
		}
		if err := s.util.validateAvailableLeagues(ctx, newlySelected); err != nil {
			return err
		}

		league.Name = input.Name
		league.NumberOfTeams = input.NumberOfTeams
		league.AvailableLeagues = input.AvailableLeagues
		league.UpdatedAt = s.now().UTC()
		if err := s.leagueRepo.Update(ctx, league); err != nil {
			return fmt.Errorf("update fantasy league settings: %w", err)
		}
		updated = league
		return nil
	})
	if err != nil {
		return fantasyleague.Settings{}, err
	}

	s.logger.InfoContext(ctx, "fantasy league settings updated", "league_id", updated.ID, "number_of_teams", updated.NumberOfTeams)
	return updated.Settings(), nil
}

func (s *FantasyLeagueService) GetScoringSettings(ctx context.Context, userID, leagueID string) (fantasyleague.ScoringSettings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.GetScoringSettings")
	defer span.End()

	league, err := s.util.validateLeague(ctx, leagueID)
	if err != nil {
		return fantasyleague.ScoringSettings{}, err
	}
	if !league.IsOwner(userID) {
		return fantasyleague.ScoringSettings{}, ErrForbidden
	}

	settings, exists, err := s.scoringRepo.GetByLeague(ctx, league.ID)
	if err != nil {
		return fantasyleague.ScoringSettings{}, fmt.Errorf("get scoring settings: %w", err)
	}
	if !exists {
		return fantasyleague.DefaultScoringSettings(league.ID), nil
	}

	return settings, nil
}

func (s *FantasyLeagueService) UpdateScoringSettings(ctx context.Context, input UpdateScoringSettingsInput) (fantasyleague.ScoringSettings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.UpdateScoringSettings")
	defer span.End()

	settings := input.Settings
	err := s.tx.WithinLeague(ctx, input.LeagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, input.LeagueID, fantasyleague.StatusPreDraft)
		if err != nil {
			return err
		}
		if !league.IsOwner(input.UserID) {
			return ErrForbidden
		}

		settings.LeagueID = league.ID
		settings.UpdatedAt = s.now().UTC()
		if err := s.scoringRepo.Upsert(ctx, settings); err != nil {
			return fmt.Errorf("upsert scoring settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return fantasyleague.ScoringSettings{}, err
	}

	return settings, nil
}

func (s *FantasyLeagueService) SendInvite(ctx context.Context, input SendInviteInput) (fantasyleague.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.SendInvite")
	defer span.End()

	username := user.NormalizeUsername(input.Username)
	if username == "" {
		return fantasyleague.Membership{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	var invited fantasyleague.Membership
	err := s.tx.WithinLeague(ctx, input.LeagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, input.LeagueID, fantasyleague.StatusPreDraft)
		if err != nil {
			return err
		}
		if !league.IsOwner(input.UserID) {
			return ErrForbidden
		}

		occupied, err := s.util.countMemberships(ctx, league.ID, fantasyleague.MembershipPending, fantasyleague.MembershipAccepted)
		if err != nil {
			return err
		}
		if occupied >= league.NumberOfTeams {
			return fmt.Errorf("%w: league is at capacity (%d teams)", ErrRuleViolation, league.NumberOfTeams)
		}

		target, exists, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("get user by username: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: username=%s", user.ErrNotFound, username)
		}

		now := s.now().UTC()
		existing, exists, err := s.membershipRepo.Get(ctx, league.ID, target.ID)
		if err != nil {
			return fmt.Errorf("get membership: %w", err)
		}
		if exists {
			switch existing.Status {
			case fantasyleague.MembershipPending, fantasyleague.MembershipAccepted:
				return fmt.Errorf("%w: user %s already has a %s membership", ErrRuleViolation, username, existing.Status)
			}
			if err := s.membershipRepo.UpdateStatus(ctx, league.ID, target.ID, fantasyleague.MembershipPending); err != nil {
				return fmt.Errorf("reset membership to pending: %w", err)
			}
			existing.Status = fantasyleague.MembershipPending
			existing.UpdatedAt = now
			invited = existing
			return nil
		}

		invited = fantasyleague.Membership{
			LeagueID:  league.ID,
			UserID:    target.ID,
			Status:    fantasyleague.MembershipPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.membershipRepo.Create(ctx, invited); err != nil {
			return fmt.Errorf("create membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return fantasyleague.Membership{}, err
	}

	s.logger.InfoContext(ctx, "fantasy league invite sent", "league_id", invited.LeagueID, "user_id", invited.UserID)
	return invited, nil
}

// Join accepts a pending invite. Joining again after acceptance is a no-op.
func (s *FantasyLeagueService) Join(ctx context.Context, userID, leagueID string) (fantasyleague.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.Join")
	defer span.End()

	var joined fantasyleague.Membership
	err := s.tx.WithinLeague(ctx, leagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, leagueID, fantasyleague.StatusPreDraft)
		if err != nil {
			return err
		}

		membership, exists, err := s.membershipRepo.Get(ctx, league.ID, userID)
		if err != nil {
			return fmt.Errorf("get membership: %w", err)
		}
		if !exists || membership.Status == fantasyleague.MembershipDeclined || membership.Status == fantasyleague.MembershipRevoked {
			return fmt.Errorf("%w: user %s has no invite to league %s", fantasyleague.ErrMembership, userID, league.ID)
		}
		if membership.Status == fantasyleague.MembershipAccepted {
			joined = membership
			return nil
		}

		accepted, err := s.util.countMemberships(ctx, league.ID, fantasyleague.MembershipAccepted)
		if err != nil {
			return err
		}
		if accepted >= league.NumberOfTeams {
			return fmt.Errorf("%w: league is full (%d teams)", ErrRuleViolation, league.NumberOfTeams)
		}

		if err := s.membershipRepo.UpdateStatus(ctx, league.ID, userID, fantasyleague.MembershipAccepted); err != nil {
			return fmt.Errorf("accept membership: %w", err)
		}
		if _, err := s.util.createDraftOrderEntry(ctx, userID, league.ID); err != nil {
			return err
		}

		membership.Status = fantasyleague.MembershipAccepted
		membership.UpdatedAt = s.now().UTC()
		joined = membership
		s.logger.InfoContext(ctx, "fantasy league joined", "league_id", league.ID, "user_id", userID)
		return nil
	})
	if err != nil {
		return fantasyleague.Membership{}, err
	}

	return joined, nil
}

func (s *FantasyLeagueService) DeclineInvite(ctx context.Context, userID, leagueID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.DeclineInvite")
	defer span.End()

	return s.tx.WithinLeague(ctx, leagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, leagueID, fantasyleague.StatusPreDraft)
		if err != nil {
			return err
		}

		membership, exists, err := s.membershipRepo.Get(ctx, league.ID, userID)
		if err != nil {
			return fmt.Errorf("get membership: %w", err)
		}
		if !exists || membership.Status != fantasyleague.MembershipPending {
			return fmt.Errorf("%w: user %s has no pending invite to league %s", fantasyleague.ErrMembership, userID, league.ID)
		}

		if err := s.membershipRepo.UpdateStatus(ctx, league.ID, userID, fantasyleague.MembershipDeclined); err != nil {
			return fmt.Errorf("decline membership: %w", err)
		}
		return nil
	})
}

func (s *FantasyLeagueService) Leave(ctx context.Context, userID, leagueID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.Leave")
	defer span.End()

	err := s.tx.WithinLeague(ctx, leagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, leagueID, fantasyleague.StatusPreDraft)
		if err != nil {
			return err
		}
		if league.IsOwner(userID) {
			return fmt.Errorf("%w: the owner cannot leave the league", ErrRuleViolation)
		}
		if _, err := s.util.requireAcceptedMembership(ctx, league.ID, userID); err != nil {
			return err
		}

		if err := s.membershipRepo.UpdateStatus(ctx, league.ID, userID, fantasyleague.MembershipDeclined); err != nil {
			return fmt.Errorf("decline membership: %w", err)
		}
		return s.util.removeFromDraftOrder(ctx, userID, league.ID)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "fantasy league left", "league_id", leagueID, "user_id", userID)
	return nil
}

func (s *FantasyLeagueService) RevokeMembership(ctx context.Context, input RevokeMembershipInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.RevokeMembership")
	defer span.End()

	target := strings.TrimSpace(input.TargetUserID)
	if target == "" {
		return fmt.Errorf("%w: target user id is required", ErrInvalidInput)
	}

	err := s.tx.WithinLeague(ctx, input.LeagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, input.LeagueID, fantasyleague.StatusPreDraft)
		if err != nil {
			return err
		}
		if !league.IsOwner(input.UserID) {
			return ErrForbidden
		}
		if target == input.UserID {
			return fmt.Errorf("%w: the owner cannot revoke their own membership", ErrRuleViolation)
		}
		if _, err := s.util.requireAcceptedMembership(ctx, league.ID, target); err != nil {
			return err
		}

		if err := s.membershipRepo.UpdateStatus(ctx, league.ID, target, fantasyleague.MembershipRevoked); err != nil {
			return fmt.Errorf("revoke membership: %w", err)
		}
		return s.util.removeFromDraftOrder(ctx, target, league.ID)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "fantasy league membership revoked", "league_id", input.LeagueID, "user_id", target)
	return nil
}

func (s *FantasyLeagueService) GetDraftOrder(ctx context.Context, userID, leagueID string) ([]DraftOrderSlot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.GetDraftOrder")
	defer span.End()

	var entries []fantasyleague.DraftOrderEntry
	err := s.tx.WithinLeague(ctx, leagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, leagueID)
		if err != nil {
			return err
		}
		if !league.IsOwner(userID) {
			return ErrForbidden
		}

		entries, err = s.draftOrderRepo.ListByLeague(ctx, league.ID)
		if err != nil {
			return fmt.Errorf("list draft order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.withUsernames(ctx, entries)
}

func (s *FantasyLeagueService) UpdateDraftOrder(ctx context.Context, input UpdateDraftOrderInput) ([]DraftOrderSlot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.UpdateDraftOrder")
	defer span.End()

	var updated []fantasyleague.DraftOrderEntry
	err := s.tx.WithinLeague(ctx, input.LeagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, input.LeagueID, fantasyleague.StatusPreDraft)
		if err != nil {
			return err
		}
		if !league.IsOwner(input.UserID) {
			return ErrForbidden
		}

		current, err := s.draftOrderRepo.ListByLeague(ctx, league.ID)
		if err != nil {
			return fmt.Errorf("list draft order: %w", err)
		}
		if err := fantasyleague.ValidateDraftOrder(current, input.Entries); err != nil {
			return err
		}

		proposed := make([]fantasyleague.DraftOrderEntry, 0, len(input.Entries))
		for _, entry := range input.Entries {
			entry.LeagueID = league.ID
			proposed = append(proposed, entry)
		}
		if err := s.draftOrderRepo.UpdatePositions(ctx, league.ID, proposed); err != nil {
			return fmt.Errorf("update draft order positions: %w", err)
		}

		slices.SortFunc(proposed, func(a, b fantasyleague.DraftOrderEntry) int { return a.Position - b.Position })
		updated = proposed
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "fantasy league draft order updated", "league_id", input.LeagueID, "entries", len(updated))
	return s.withUsernames(ctx, updated)
}

func (s *FantasyLeagueService) StartDraft(ctx context.Context, userID, leagueID string) (fantasyleague.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.StartDraft")
	defer span.End()

	var started fantasyleague.League
	err := s.tx.WithinLeague(ctx, leagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, leagueID, fantasyleague.StatusPreDraft)
		if err != nil {
			return err
		}
		if !league.IsOwner(userID) {
			return ErrForbidden
		}

		accepted, err := s.util.countMemberships(ctx, league.ID, fantasyleague.MembershipAccepted)
		if err != nil {
			return err
		}
		if accepted != league.NumberOfTeams {
			return fmt.Errorf("%w: draft needs exactly %d accepted members, league has %d", ErrRuleViolation, league.NumberOfTeams, accepted)
		}
		if len(league.AvailableLeagues) == 0 {
			return fmt.Errorf("%w: at least one available league is required to draft", ErrRuleViolation)
		}

		first := 1
		league.Status = fantasyleague.StatusDraft
		league.CurrentDraftPosition = &first
		league.UpdatedAt = s.now().UTC()
		if err := s.leagueRepo.Update(ctx, league); err != nil {
			return fmt.Errorf("start draft: %w", err)
		}
		started = league
		return nil
	})
	if err != nil {
		return fantasyleague.League{}, err
	}

	s.logger.InfoContext(ctx, "fantasy league draft started", "league_id", started.ID)
	return started, nil
}

// DeleteLeague marks the league DELETED. Only leagues that have not started drafting or have
// finished their season can be deleted.
func (s *FantasyLeagueService) DeleteLeague(ctx context.Context, userID, leagueID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyLeagueService.DeleteLeague")
	defer span.End()

	err := s.tx.WithinLeague(ctx, leagueID, func(ctx context.Context) error {
		league, err := s.util.validateLeague(ctx, leagueID, fantasyleague.StatusPreDraft, fantasyleague.StatusCompleted)
		if err != nil {
			return err
		}
		if !league.IsOwner(userID) {
			return ErrForbidden
		}

		league.Status = fantasyleague.StatusDeleted
		league.UpdatedAt = s.now().UTC()
		if err := s.leagueRepo.Update(ctx, league); err != nil {
			return fmt.Errorf("delete fantasy league: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "fantasy league deleted", "league_id", leagueID)
	return nil
}

func (s *FantasyLeagueService) newLeagueID(ctx context.Context) (string, error) {
	for range maxLeagueIDAttempts {
		id, err := s.idGen.NewID()
		if err != nil {
			return "", fmt.Errorf("generate fantasy league id: %w", err)
		}
		_, exists, err := s.leagueRepo.GetByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check fantasy league id: %w", err)
		}
		if !exists {
			return id, nil
		}
	}

	return "", fmt.Errorf("generate fantasy league id: no free id after %d attempts", maxLeagueIDAttempts)
}

func (s *FantasyLeagueService) withUsernames(ctx context.Context, entries []fantasyleague.DraftOrderEntry) ([]DraftOrderSlot, error) {
	return iter.MapErr(entries, func(entry *fantasyleague.DraftOrderEntry) (DraftOrderSlot, error) {
		username, err := s.lookupUsername(ctx, entry.UserID)
		if err != nil {
			return DraftOrderSlot{}, err
		}
		return DraftOrderSlot{UserID: entry.UserID, Username: username, Position: entry.Position}, nil
	})
}

func (s *FantasyLeagueService) lookupUsername(ctx context.Context, userID string) (string, error) {
	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return "", nil
	}
	return item.Username, nil
}

func validateLeagueShape(name string, numberOfTeams int) error {
	if name == "" {
		return fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if len(name) > maxLeagueNameLength {
		return fmt.Errorf("%w: league name must be at most %d characters", ErrInvalidInput, maxLeagueNameLength)
	}
	if numberOfTeams < 1 || numberOfTeams > maxNumberOfTeams {
		return fmt.Errorf("%w: number of teams must be between 1 and %d", ErrInvalidInput, maxNumberOfTeams)
	}
	return nil
}

func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
