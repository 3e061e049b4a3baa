package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/proplayer"
)

// ProPlayerRoster places a professional player in a source league.
type ProPlayerRoster struct {
	SourceLeagueID string
	PlayerID       string
}

type ProPlayerRepository struct {
	mu              sync.RWMutex
	players         map[string]proplayer.Player
	playersByLeague map[string][]string
	leaguesByPlayer map[string][]string
}

func NewProPlayerRepository(players []proplayer.Player, rosters []ProPlayerRoster) *ProPlayerRepository {
	index := make(map[string]proplayer.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}

	playersByLeague := make(map[string][]string)
	leaguesByPlayer := make(map[string][]string)
	for _, roster := range rosters {
		if _, ok := index[roster.PlayerID]; !ok {
			continue
		}
		playersByLeague[roster.SourceLeagueID] = append(playersByLeague[roster.SourceLeagueID], roster.PlayerID)
		leaguesByPlayer[roster.PlayerID] = append(leaguesByPlayer[roster.PlayerID], roster.SourceLeagueID)
	}

	return &ProPlayerRepository{
		players:         index,
		playersByLeague: playersByLeague,
		leaguesByPlayer: leaguesByPlayer,
	}
}

func (r *ProPlayerRepository) GetByID(_ context.Context, playerID string) (proplayer.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	return p, ok, nil
}

func (r *ProPlayerRepository) ListSourceLeagueIDs(_ context.Context, playerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.leaguesByPlayer[playerID]...), nil
}

func (r *ProPlayerRepository) ListBySourceLeague(_ context.Context, sourceLeagueID string) ([]proplayer.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.playersByLeague[sourceLeagueID]
	out := make([]proplayer.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.players[id])
	}

	return out, nil
}
