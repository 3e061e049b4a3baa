package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/repository/memory"
)

func newSourceLeagueTestService() *SourceLeagueService {
	return NewSourceLeagueService(
		memory.NewSourceLeagueRepository(memory.SeedSourceLeagues()),
		memory.NewProPlayerRepository(memory.SeedProPlayers(), memory.SeedProPlayerRosters()),
	)
}

func TestSourceLeagueService_ListLeaguesSortedByName(t *testing.T) {
	items, err := newSourceLeagueTestService().ListLeagues(t.Context())
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(items) != len(memory.SeedSourceLeagues()) {
		t.Fatalf("expected %d leagues, got %d", len(memory.SeedSourceLeagues()), len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Name > items[i].Name {
			t.Fatalf("leagues not sorted by name: %q before %q", items[i-1].Name, items[i].Name)
		}
	}
}

func TestSourceLeagueService_ListPlayers(t *testing.T) {
	svc := newSourceLeagueTestService()

	players, err := svc.ListPlayers(t.Context(), " "+memory.SourceLeagueIDLCK+" ")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) == 0 {
		t.Fatalf("expected seeded LCK players")
	}

	if _, err := svc.ListPlayers(t.Context(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank id, got %v", err)
	}
	if _, err := svc.ListPlayers(t.Context(), "lvp"); !errors.Is(err, sourceleague.ErrNotFound) {
		t.Fatalf("expected source league not found, got %v", err)
	}
}
