package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
)

type FantasyTeamRepository struct {
	mu    sync.RWMutex
	items map[string]fantasyteam.Team
}

func NewFantasyTeamRepository() *FantasyTeamRepository {
	return &FantasyTeamRepository{items: make(map[string]fantasyteam.Team)}
}

func (r *FantasyTeamRepository) Get(_ context.Context, leagueID, userID string, week int) (fantasyteam.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamKey(leagueID, userID, week)]
	if !ok {
		return fantasyteam.Team{}, false, nil
	}
	return item.Clone(), true, nil
}

func (r *FantasyTeamRepository) GetLatest(_ context.Context, leagueID, userID string) (fantasyteam.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest fantasyteam.Team
		found  bool
	)
	for _, item := range r.items {
		if item.LeagueID != leagueID || item.UserID != userID {
			continue
		}
		if !found || item.Week > latest.Week {
			latest = item
			found = true
		}
	}
	if !found {
		return fantasyteam.Team{}, false, nil
	}
	return latest.Clone(), true, nil
}

func (r *FantasyTeamRepository) ListByUser(_ context.Context, leagueID, userID string) ([]fantasyteam.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasyteam.Team, 0)
	for _, item := range r.items {
		if item.LeagueID == leagueID && item.UserID == userID {
			out = append(out, item.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out, nil
}

func (r *FantasyTeamRepository) ListByWeek(_ context.Context, leagueID string, week int) ([]fantasyteam.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasyteam.Team, 0)
	for _, item := range r.items {
		if item.LeagueID == leagueID && item.Week == week {
			out = append(out, item.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *FantasyTeamRepository) Upsert(_ context.Context, team fantasyteam.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := teamKey(team.LeagueID, team.UserID, team.Week)
	if existing, ok := r.items[key]; ok && !existing.CreatedAt.IsZero() {
		team.CreatedAt = existing.CreatedAt
	}
	r.items[key] = team.Clone()
	return nil
}

func teamKey(leagueID, userID string, week int) string {
	return fmt.Sprintf("%s::%s::%d", leagueID, userID, week)
}
