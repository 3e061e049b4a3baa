package cache

import (
	"context"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/proplayer"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
	basecache "github.com/riskibarqy/lol-fantasy-league/internal/platform/cache"
)

// lookup remembers misses as well as hits.
type lookup[T any] struct {
	value  T
	exists bool
}

// SourceLeagueRepository caches the read-only source league catalog.
type SourceLeagueRepository struct {
	next  sourceleague.Repository
	cache *basecache.Store
}

func NewSourceLeagueRepository(next sourceleague.Repository, cache *basecache.Store) *SourceLeagueRepository {
	return &SourceLeagueRepository{next: next, cache: cache}
}

func (r *SourceLeagueRepository) List(ctx context.Context) ([]sourceleague.League, error) {
	items, err := basecache.Load(ctx, r.cache, "source_league:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]sourceleague.League(nil), items...), nil
}

func (r *SourceLeagueRepository) GetByID(ctx context.Context, leagueID string) (sourceleague.League, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, "source_league:id:"+leagueID, func(ctx context.Context) (lookup[sourceleague.League], error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		return lookup[sourceleague.League]{value: item, exists: exists}, err
	})
	if err != nil {
		return sourceleague.League{}, false, err
	}
	return cached.value, cached.exists, nil
}

// ProPlayerRepository caches professional players and their roster spots.
type ProPlayerRepository struct {
	next  proplayer.Repository
	cache *basecache.Store
}

func NewProPlayerRepository(next proplayer.Repository, cache *basecache.Store) *ProPlayerRepository {
	return &ProPlayerRepository{next: next, cache: cache}
}

func (r *ProPlayerRepository) GetByID(ctx context.Context, playerID string) (proplayer.Player, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, "pro_player:id:"+playerID, func(ctx context.Context) (lookup[proplayer.Player], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		return lookup[proplayer.Player]{value: item, exists: exists}, err
	})
	if err != nil {
		return proplayer.Player{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *ProPlayerRepository) ListSourceLeagueIDs(ctx context.Context, playerID string) ([]string, error) {
	ids, err := basecache.Load(ctx, r.cache, "pro_player:leagues:"+playerID, func(ctx context.Context) ([]string, error) {
		return r.next.ListSourceLeagueIDs(ctx, playerID)
	})
	if err != nil {
		return nil, err
	}
	return append([]string(nil), ids...), nil
}

func (r *ProPlayerRepository) ListBySourceLeague(ctx context.Context, sourceLeagueID string) ([]proplayer.Player, error) {
	items, err := basecache.Load(ctx, r.cache, "pro_player:league:"+sourceLeagueID, func(ctx context.Context) ([]proplayer.Player, error) {
		return r.next.ListBySourceLeague(ctx, sourceLeagueID)
	})
	if err != nil {
		return nil, err
	}
	return append([]proplayer.Player(nil), items...), nil
}
