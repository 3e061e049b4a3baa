package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
)

// fantasyLeagueUtil holds the league checks and draft order maintenance shared by the services.
// Every method expects to be called inside LeagueTransactor.WithinLeague when it writes.
type fantasyLeagueUtil struct {
	leagues       fantasyleague.Repository
	memberships   fantasyleague.MembershipRepository
	draftOrder    fantasyleague.DraftOrderRepository
	sourceLeagues sourceleague.Repository
}

func newFantasyLeagueUtil(repos FantasyRepositories) fantasyLeagueUtil {
	return fantasyLeagueUtil{
		leagues:       repos.Leagues,
		memberships:   repos.Memberships,
		draftOrder:    repos.DraftOrder,
		sourceLeagues: repos.SourceLeagues,
	}
}

// validateLeague loads the league and, when statuses are given, requires it to be in one of them.
func (u fantasyLeagueUtil) validateLeague(ctx context.Context, leagueID string, required ...fantasyleague.Status) (fantasyleague.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return fantasyleague.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	league, exists, err := u.leagues.GetByID(ctx, leagueID)
	if err != nil {
		return fantasyleague.League{}, fmt.Errorf("get fantasy league by id: %w", err)
	}
	if !exists {
		return fantasyleague.League{}, fmt.Errorf("%w: league=%s", fantasyleague.ErrLeagueNotFound, leagueID)
	}
	if len(required) > 0 && !league.HasStatus(required...) {
		return fantasyleague.League{}, &InvalidStateError{
			LeagueID: league.ID,
			Actual:   league.Status,
			Required: append([]fantasyleague.Status(nil), required...),
		}
	}

	return league, nil
}

// validateAvailableLeagues stops at the first unknown or non fantasy source league, in input order.
func (u fantasyLeagueUtil) validateAvailableLeagues(ctx context.Context, selectedIDs []string) error {
	for _, id := range selectedIDs {
		item, exists, err := u.sourceLeagues.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get source league by id: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: league=%s", sourceleague.ErrNotFound, id)
		}
		if !item.FantasyAvailable {
			return fmt.Errorf("%w: league=%s", fantasyleague.ErrFantasyUnavailable, id)
		}
	}

	return nil
}

func (u fantasyLeagueUtil) updateDraftPosition(league fantasyleague.League) (fantasyleague.League, error) {
	next, err := fantasyleague.NextDraftPosition(league)
	if err != nil {
		return fantasyleague.League{}, err
	}

	out := league.Clone()
	out.CurrentDraftPosition = &next
	return out, nil
}

func (u fantasyLeagueUtil) createDraftOrderEntry(ctx context.Context, userID, leagueID string) (fantasyleague.DraftOrderEntry, error) {
	if _, err := u.validateLeague(ctx, leagueID); err != nil {
		return fantasyleague.DraftOrderEntry{}, err
	}

	entries, err := u.draftOrder.ListByLeague(ctx, leagueID)
	if err != nil {
		return fantasyleague.DraftOrderEntry{}, fmt.Errorf("list draft order: %w", err)
	}

	entry := fantasyleague.DraftOrderEntry{
		LeagueID: leagueID,
		UserID:   userID,
		Position: fantasyleague.NextDraftOrderPosition(entries),
	}
	if err := u.draftOrder.Create(ctx, entry); err != nil {
		return fantasyleague.DraftOrderEntry{}, fmt.Errorf("create draft order entry: %w", err)
	}

	return entry, nil
}

// removeFromDraftOrder deletes the member's seat and closes the gap using the pre-removal snapshot.
func (u fantasyLeagueUtil) removeFromDraftOrder(ctx context.Context, userID, leagueID string) error {
	snapshot, err := u.draftOrder.ListByLeague(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("list draft order: %w", err)
	}

	removed, shifted, err := fantasyleague.ShiftAfterRemoval(snapshot, userID)
	if err != nil {
		return err
	}

	if err := u.draftOrder.Delete(ctx, leagueID, removed.UserID); err != nil {
		return fmt.Errorf("delete draft order entry: %w", err)
	}
	if len(shifted) == 0 {
		return nil
	}
	if err := u.draftOrder.UpdatePositions(ctx, leagueID, shifted); err != nil {
		return fmt.Errorf("renumber draft order: %w", err)
	}

	return nil
}

func (u fantasyLeagueUtil) requireAcceptedMembership(ctx context.Context, leagueID, userID string) (fantasyleague.Membership, error) {
	membership, exists, err := u.memberships.Get(ctx, leagueID, userID)
	if err != nil {
		return fantasyleague.Membership{}, fmt.Errorf("get membership: %w", err)
	}
	if !exists || membership.Status != fantasyleague.MembershipAccepted {
		return fantasyleague.Membership{}, fmt.Errorf("%w: user %s is not an accepted member of league %s", fantasyleague.ErrMembership, userID, leagueID)
	}

	return membership, nil
}

func (u fantasyLeagueUtil) countMemberships(ctx context.Context, leagueID string, statuses ...fantasyleague.MembershipStatus) (int, error) {
	items, err := u.memberships.ListByLeague(ctx, leagueID, statuses...)
	if err != nil {
		return 0, fmt.Errorf("list memberships: %w", err)
	}
	return fantasyleague.CountMemberships(items, statuses...), nil
}
