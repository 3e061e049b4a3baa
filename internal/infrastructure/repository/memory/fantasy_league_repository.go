package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
)

type FantasyLeagueRepository struct {
	mu    sync.RWMutex
	items map[string]fantasyleague.League
}

func NewFantasyLeagueRepository() *FantasyLeagueRepository {
	return &FantasyLeagueRepository{items: make(map[string]fantasyleague.League)}
}

func (r *FantasyLeagueRepository) GetByID(_ context.Context, leagueID string) (fantasyleague.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[leagueID]
	if !ok {
		return fantasyleague.League{}, false, nil
	}
	return item.Clone(), true, nil
}

func (r *FantasyLeagueRepository) ListByIDs(_ context.Context, leagueIDs []string) ([]fantasyleague.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasyleague.League, 0, len(leagueIDs))
	for _, id := range leagueIDs {
		if item, ok := r.items[id]; ok {
			out = append(out, item.Clone())
		}
	}
	return out, nil
}

func (r *FantasyLeagueRepository) ListByStatus(_ context.Context, status fantasyleague.Status) ([]fantasyleague.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasyleague.League, 0)
	for _, item := range r.items {
		if item.Status == status {
			out = append(out, item.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *FantasyLeagueRepository) Create(_ context.Context, league fantasyleague.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[league.ID]; ok {
		return fmt.Errorf("fantasy league already exists: %s", league.ID)
	}
	r.items[league.ID] = league.Clone()
	return nil
}

func (r *FantasyLeagueRepository) Update(_ context.Context, league fantasyleague.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[league.ID]; !ok {
		return fmt.Errorf("%w: league=%s", fantasyleague.ErrLeagueNotFound, league.ID)
	}
	r.items[league.ID] = league.Clone()
	return nil
}

type MembershipRepository struct {
	mu    sync.RWMutex
	items map[string]fantasyleague.Membership
}

func NewMembershipRepository() *MembershipRepository {
	return &MembershipRepository{items: make(map[string]fantasyleague.Membership)}
}

func (r *MembershipRepository) Get(_ context.Context, leagueID, userID string) (fantasyleague.Membership, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[memberKey(leagueID, userID)]
	return item, ok, nil
}

func (r *MembershipRepository) Create(_ context.Context, membership fantasyleague.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memberKey(membership.LeagueID, membership.UserID)
	if _, ok := r.items[key]; ok {
		return fmt.Errorf("membership already exists: league=%s user=%s", membership.LeagueID, membership.UserID)
	}
	r.items[key] = membership
	return nil
}

func (r *MembershipRepository) UpdateStatus(_ context.Context, leagueID, userID string, status fantasyleague.MembershipStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memberKey(leagueID, userID)
	item, ok := r.items[key]
	if !ok {
		return fmt.Errorf("membership not found: league=%s user=%s", leagueID, userID)
	}
	item.Status = status
	r.items[key] = item
	return nil
}

func (r *MembershipRepository) ListByLeague(_ context.Context, leagueID string, statuses ...fantasyleague.MembershipStatus) ([]fantasyleague.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasyleague.Membership, 0)
	for _, item := range r.items {
		if item.LeagueID != leagueID {
			continue
		}
		if len(statuses) > 0 && !slices.Contains(statuses, item.Status) {
			continue
		}
		out = append(out, item)
	}
	sortMemberships(out)
	return out, nil
}

func (r *MembershipRepository) ListByUser(_ context.Context, userID string, statuses ...fantasyleague.MembershipStatus) ([]fantasyleague.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasyleague.Membership, 0)
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		if len(statuses) > 0 && !slices.Contains(statuses, item.Status) {
			continue
		}
		out = append(out, item)
	}
	sortMemberships(out)
	return out, nil
}

func sortMemberships(items []fantasyleague.Membership) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		if items[i].LeagueID != items[j].LeagueID {
			return items[i].LeagueID < items[j].LeagueID
		}
		return items[i].UserID < items[j].UserID
	})
}

type DraftOrderRepository struct {
	mu    sync.RWMutex
	items map[string]fantasyleague.DraftOrderEntry
}

func NewDraftOrderRepository() *DraftOrderRepository {
	return &DraftOrderRepository{items: make(map[string]fantasyleague.DraftOrderEntry)}
}

func (r *DraftOrderRepository) ListByLeague(_ context.Context, leagueID string) ([]fantasyleague.DraftOrderEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasyleague.DraftOrderEntry, 0)
	for _, item := range r.items {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *DraftOrderRepository) Get(_ context.Context, leagueID, userID string) (fantasyleague.DraftOrderEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[memberKey(leagueID, userID)]
	return item, ok, nil
}

func (r *DraftOrderRepository) Create(_ context.Context, entry fantasyleague.DraftOrderEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memberKey(entry.LeagueID, entry.UserID)
	if _, ok := r.items[key]; ok {
		return fmt.Errorf("draft order entry already exists: league=%s user=%s", entry.LeagueID, entry.UserID)
	}
	r.items[key] = entry
	return nil
}

func (r *DraftOrderRepository) Delete(_ context.Context, leagueID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memberKey(leagueID, userID)
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("draft order entry not found: league=%s user=%s", leagueID, userID)
	}
	delete(r.items, key)
	return nil
}

// UpdatePositions applies every entry or none of them.
func (r *DraftOrderRepository) UpdatePositions(_ context.Context, leagueID string, entries []fantasyleague.DraftOrderEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		if _, ok := r.items[memberKey(leagueID, entry.UserID)]; !ok {
			return fmt.Errorf("draft order entry not found: league=%s user=%s", leagueID, entry.UserID)
		}
	}
	for _, entry := range entries {
		key := memberKey(leagueID, entry.UserID)
		item := r.items[key]
		item.Position = entry.Position
		r.items[key] = item
	}
	return nil
}

type ScoringSettingsRepository struct {
	mu    sync.RWMutex
	items map[string]fantasyleague.ScoringSettings
}

func NewScoringSettingsRepository() *ScoringSettingsRepository {
	return &ScoringSettingsRepository{items: make(map[string]fantasyleague.ScoringSettings)}
}

func (r *ScoringSettingsRepository) GetByLeague(_ context.Context, leagueID string) (fantasyleague.ScoringSettings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[leagueID]
	return item, ok, nil
}

func (r *ScoringSettingsRepository) Upsert(_ context.Context, settings fantasyleague.ScoringSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[settings.LeagueID] = settings
	return nil
}

func memberKey(leagueID, userID string) string {
	return leagueID + "::" + userID
}
