package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
)

type SourceLeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]sourceleague.League
	orders []string
}

func NewSourceLeagueRepository(leagues []sourceleague.League) *SourceLeagueRepository {
	items := make(map[string]sourceleague.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	return &SourceLeagueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *SourceLeagueRepository) List(_ context.Context) ([]sourceleague.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sourceleague.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *SourceLeagueRepository) GetByID(_ context.Context, leagueID string) (sourceleague.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return sourceleague.League{}, false, nil
	}

	return l, true, nil
}
