package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/logging"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type sequenceIDGenerator struct {
	mu   sync.Mutex
	ids  []string
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next >= len(g.ids) {
		return fmt.Sprintf("generated-%03d", g.next), nil
	}
	id := g.ids[g.next]
	g.next++
	return id, nil
}

// directTransactor runs fn without any locking.
type directTransactor struct{}

func (directTransactor) WithinLeague(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fantasyTestEnv struct {
	repos   FantasyRepositories
	leagues *FantasyLeagueService
	teams   *FantasyTeamService
}

func newFantasyTestEnv(t *testing.T, usernames ...string) *fantasyTestEnv {
	t.Helper()

	users := make([]user.User, 0, len(usernames))
	for _, name := range usernames {
		users = append(users, user.User{ID: "id-" + name, Username: name, Status: user.StatusActive})
	}

	repos := FantasyRepositories{
		Leagues:       memory.NewFantasyLeagueRepository(),
		Memberships:   memory.NewMembershipRepository(),
		DraftOrder:    memory.NewDraftOrderRepository(),
		Scoring:       memory.NewScoringSettingsRepository(),
		Teams:         memory.NewFantasyTeamRepository(),
		Players:       memory.NewProPlayerRepository(memory.SeedProPlayers(), memory.SeedProPlayerRosters()),
		SourceLeagues: memory.NewSourceLeagueRepository(memory.SeedSourceLeagues()),
		Users:         memory.NewUserRepository(users...),
	}
	tx := memory.NewLeagueTransactor()

	leagues := NewFantasyLeagueService(repos, tx, &sequenceIDGenerator{ids: []string{"league-1", "league-2", "league-3"}}, logging.NewNop())
	leagues.now = func() time.Time { return testNow }
	teams := NewFantasyTeamService(repos, tx, logging.NewNop())
	teams.now = func() time.Time { return testNow }

	return &fantasyTestEnv{repos: repos, leagues: leagues, teams: teams}
}

func userID(username string) string {
	return "id-" + username
}

// createLeagueWithMembers creates a league owned by owner and has every member accept an invite.
func (e *fantasyTestEnv) createLeagueWithMembers(t *testing.T, owner string, numberOfTeams int, members ...string) fantasyleague.League {
	t.Helper()
	ctx := t.Context()

	league, err := e.leagues.CreateLeague(ctx, CreateFantasyLeagueInput{
		UserID:           userID(owner),
		Name:             "Worlds Watch Party",
		NumberOfTeams:    numberOfTeams,
		AvailableLeagues: []string{memory.SourceLeagueIDLCK, memory.SourceLeagueIDLEC},
	})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}

	for _, member := range members {
		if _, err := e.leagues.SendInvite(ctx, SendInviteInput{UserID: userID(owner), LeagueID: league.ID, Username: member}); err != nil {
			t.Fatalf("invite %s: %v", member, err)
		}
		if _, err := e.leagues.Join(ctx, userID(member), league.ID); err != nil {
			t.Fatalf("join %s: %v", member, err)
		}
	}

	return league
}

func (e *fantasyTestEnv) draftOrder(t *testing.T, leagueID string) []fantasyleague.DraftOrderEntry {
	t.Helper()

	entries, err := e.repos.DraftOrder.ListByLeague(t.Context(), leagueID)
	if err != nil {
		t.Fatalf("list draft order: %v", err)
	}
	return entries
}

func (e *fantasyTestEnv) league(t *testing.T, leagueID string) fantasyleague.League {
	t.Helper()

	league, ok, err := e.repos.Leagues.GetByID(t.Context(), leagueID)
	if err != nil || !ok {
		t.Fatalf("get league %s: ok=%v err=%v", leagueID, ok, err)
	}
	return league
}
