package usecase

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/repository/memory"
)

func positionsByUser(entries []fantasyleague.DraftOrderEntry) map[string]int {
	out := make(map[string]int, len(entries))
	for _, entry := range entries {
		out[entry.UserID] = entry.Position
	}
	return out
}

func assertDenseDraftOrder(t *testing.T, entries []fantasyleague.DraftOrderEntry) {
	t.Helper()
	for i, entry := range entries {
		if entry.Position != i+1 {
			t.Fatalf("draft order not dense: %+v", entries)
		}
	}
}

func TestFantasyLeagueService_CreateLeague(t *testing.T) {
	env := newFantasyTestEnv(t, "owner")
	ctx := t.Context()

	league, err := env.leagues.CreateLeague(ctx, CreateFantasyLeagueInput{
		UserID:           userID("owner"),
		Name:             "  Rift Rivals  ",
		NumberOfTeams:    4,
		AvailableLeagues: []string{memory.SourceLeagueIDLCK, memory.SourceLeagueIDLCK, " lec "},
	})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}

	if league.ID != "league-1" || league.Status != fantasyleague.StatusPreDraft || league.CurrentWeek != 1 {
		t.Fatalf("unexpected league: %+v", league)
	}
	if league.Name != "Rift Rivals" {
		t.Fatalf("expected trimmed name, got %q", league.Name)
	}
	if !slices.Equal(league.AvailableLeagues, []string{"lck", "lec"}) {
		t.Fatalf("expected deduplicated available leagues, got %v", league.AvailableLeagues)
	}
	if league.CurrentDraftPosition != nil {
		t.Fatalf("draft position must be unset before the draft")
	}

	membership, ok, err := env.repos.Memberships.Get(ctx, league.ID, userID("owner"))
	if err != nil || !ok || membership.Status != fantasyleague.MembershipAccepted {
		t.Fatalf("expected accepted owner membership, got %+v ok=%v err=%v", membership, ok, err)
	}

	entries := env.draftOrder(t, league.ID)
	if len(entries) != 1 || entries[0].UserID != userID("owner") || entries[0].Position != 1 {
		t.Fatalf("expected owner at draft position 1, got %+v", entries)
	}

	scoring, err := env.leagues.GetScoringSettings(ctx, userID("owner"), league.ID)
	if err != nil {
		t.Fatalf("get scoring settings: %v", err)
	}
	if scoring.Kills != 3 || scoring.Deaths != -1 || scoring.LeagueID != league.ID {
		t.Fatalf("expected default scoring, got %+v", scoring)
	}
}

func TestFantasyLeagueService_CreateLeague_RetriesTakenID(t *testing.T) {
	env := newFantasyTestEnv(t, "owner")
	ctx := t.Context()

	if err := env.repos.Leagues.Create(ctx, fantasyleague.League{ID: "taken", OwnerID: "x", Name: "x", NumberOfTeams: 1, CurrentWeek: 1}); err != nil {
		t.Fatalf("seed league: %v", err)
	}
	env.leagues.idGen = &sequenceIDGenerator{ids: []string{"taken", "free"}}

	league, err := env.leagues.CreateLeague(ctx, CreateFantasyLeagueInput{UserID: userID("owner"), Name: "x", NumberOfTeams: 2})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	if league.ID != "free" {
		t.Fatalf("expected retry to pick free id, got %s", league.ID)
	}

	env.leagues.idGen = staticIDGenerator{id: "taken"}
	if _, err := env.leagues.CreateLeague(ctx, CreateFantasyLeagueInput{UserID: userID("owner"), Name: "x", NumberOfTeams: 2}); err == nil {
		t.Fatalf("expected error when every generated id is taken")
	}
}

func TestFantasyLeagueService_CreateLeague_ValidatesAvailableLeagues(t *testing.T) {
	env := newFantasyTestEnv(t, "owner")

	tests := []struct {
		name    string
		leagues []string
		wantErr error
	}{
		{name: "unknown source league", leagues: []string{"lck", "ljl"}, wantErr: sourceleague.ErrNotFound},
		{name: "not fantasy eligible", leagues: []string{"lpl", "ljl"}, wantErr: fantasyleague.ErrFantasyUnavailable},
		{name: "invalid team count", leagues: nil, wantErr: ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			teams := 4
			if tc.wantErr == ErrInvalidInput {
				teams = 0
			}
			_, err := env.leagues.CreateLeague(t.Context(), CreateFantasyLeagueInput{
				UserID:           userID("owner"),
				Name:             "League",
				NumberOfTeams:    teams,
				AvailableLeagues: tc.leagues,
			})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestFantasyLeagueService_SendInvite(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler", "chovy", "peyz")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 3)

	if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("ruler"), LeagueID: league.ID, Username: "chovy"}); err != ErrForbidden {
		t.Fatalf("expected bare ErrForbidden for non owner, got %v", err)
	}
	if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: "nobody"}); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}

	invite, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: " Ruler "})
	if err != nil {
		t.Fatalf("invite ruler: %v", err)
	}
	if invite.Status != fantasyleague.MembershipPending || invite.UserID != userID("ruler") {
		t.Fatalf("unexpected invite: %+v", invite)
	}
	if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: "ruler"}); !errors.Is(err, ErrRuleViolation) {
		t.Fatalf("expected rule violation for duplicate invite, got %v", err)
	}

	if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: "chovy"}); err != nil {
		t.Fatalf("invite chovy: %v", err)
	}
	// owner + two pending fills three seats
	if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: "peyz"}); !errors.Is(err, ErrRuleViolation) {
		t.Fatalf("expected capacity rule violation, got %v", err)
	}
}

func TestFantasyLeagueService_ReinviteAfterDecline(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 2)

	if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: "ruler"}); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if err := env.leagues.DeclineInvite(ctx, userID("ruler"), league.ID); err != nil {
		t.Fatalf("decline: %v", err)
	}
	if _, err := env.leagues.Join(ctx, userID("ruler"), league.ID); !errors.Is(err, fantasyleague.ErrMembership) {
		t.Fatalf("expected membership error after decline, got %v", err)
	}

	invite, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: "ruler"})
	if err != nil {
		t.Fatalf("re-invite: %v", err)
	}
	if invite.Status != fantasyleague.MembershipPending {
		t.Fatalf("expected pending after re-invite, got %s", invite.Status)
	}
	if _, err := env.leagues.Join(ctx, userID("ruler"), league.ID); err != nil {
		t.Fatalf("join after re-invite: %v", err)
	}
}

func TestFantasyLeagueService_Join(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler", "chovy")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 2, "ruler")

	if _, err := env.leagues.Join(ctx, userID("chovy"), league.ID); !errors.Is(err, fantasyleague.ErrMembership) {
		t.Fatalf("expected ErrMembership without invite, got %v", err)
	}

	again, err := env.leagues.Join(ctx, userID("ruler"), league.ID)
	if err != nil {
		t.Fatalf("idempotent join: %v", err)
	}
	if again.Status != fantasyleague.MembershipAccepted {
		t.Fatalf("expected accepted, got %s", again.Status)
	}

	entries := env.draftOrder(t, league.ID)
	if len(entries) != 2 {
		t.Fatalf("idempotent join must not add a draft entry, got %+v", entries)
	}
	if positionsByUser(entries)[userID("ruler")] != 2 {
		t.Fatalf("expected ruler at position 2, got %+v", entries)
	}
}

func TestFantasyLeagueService_Join_FullLeague(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler", "chovy")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 3)

	for _, name := range []string{"ruler", "chovy"} {
		if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: name}); err != nil {
			t.Fatalf("invite %s: %v", name, err)
		}
	}

	settings, err := env.leagues.GetSettings(ctx, userID("owner"), league.ID)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	settings.NumberOfTeams = 2
	if _, err := env.leagues.UpdateSettings(ctx, UpdateLeagueSettingsInput{
		UserID:           userID("owner"),
		LeagueID:         league.ID,
		Name:             settings.Name,
		NumberOfTeams:    settings.NumberOfTeams,
		AvailableLeagues: settings.AvailableLeagues,
	}); err != nil {
		t.Fatalf("shrink league: %v", err)
	}

	if _, err := env.leagues.Join(ctx, userID("ruler"), league.ID); err != nil {
		t.Fatalf("join ruler: %v", err)
	}
	if _, err := env.leagues.Join(ctx, userID("chovy"), league.ID); !errors.Is(err, ErrRuleViolation) {
		t.Fatalf("expected full league rule violation, got %v", err)
	}
}

func TestFantasyLeagueService_Leave(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler", "chovy", "peyz")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 4, "ruler", "chovy", "peyz")

	if err := env.leagues.Leave(ctx, userID("owner"), league.ID); !errors.Is(err, ErrRuleViolation) {
		t.Fatalf("owner leaving must be a rule violation, got %v", err)
	}

	if err := env.leagues.Leave(ctx, userID("chovy"), league.ID); err != nil {
		t.Fatalf("leave: %v", err)
	}

	entries := env.draftOrder(t, league.ID)
	assertDenseDraftOrder(t, entries)
	positions := positionsByUser(entries)
	if len(entries) != 3 || positions[userID("owner")] != 1 || positions[userID("ruler")] != 2 || positions[userID("peyz")] != 3 {
		t.Fatalf("unexpected draft order after leave: %+v", entries)
	}

	membership, _, _ := env.repos.Memberships.Get(ctx, league.ID, userID("chovy"))
	if membership.Status != fantasyleague.MembershipDeclined {
		t.Fatalf("expected DECLINED, got %s", membership.Status)
	}

	if err := env.leagues.Leave(ctx, userID("chovy"), league.ID); !errors.Is(err, fantasyleague.ErrMembership) {
		t.Fatalf("leaving twice must fail with ErrMembership, got %v", err)
	}
}

func TestFantasyLeagueService_RevokeMembership(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler", "chovy")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 3, "ruler", "chovy")

	tests := []struct {
		name    string
		caller  string
		target  string
		wantErr error
	}{
		{name: "non owner", caller: "ruler", target: "chovy", wantErr: ErrForbidden},
		{name: "self", caller: "owner", target: "owner", wantErr: ErrRuleViolation},
		{name: "not a member", caller: "owner", target: "nobody", wantErr: fantasyleague.ErrMembership},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := env.leagues.RevokeMembership(ctx, RevokeMembershipInput{UserID: userID(tc.caller), LeagueID: league.ID, TargetUserID: userID(tc.target)})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if err := env.leagues.RevokeMembership(ctx, RevokeMembershipInput{UserID: userID("owner"), LeagueID: league.ID, TargetUserID: userID("ruler")}); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	entries := env.draftOrder(t, league.ID)
	assertDenseDraftOrder(t, entries)
	if positionsByUser(entries)[userID("chovy")] != 2 {
		t.Fatalf("expected chovy shifted to 2, got %+v", entries)
	}

	membership, _, _ := env.repos.Memberships.Get(ctx, league.ID, userID("ruler"))
	if membership.Status != fantasyleague.MembershipRevoked {
		t.Fatalf("expected REVOKED, got %s", membership.Status)
	}
}

func TestFantasyLeagueService_DraftOrder(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 2, "ruler")

	if _, err := env.leagues.GetDraftOrder(ctx, userID("ruler"), league.ID); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	slots, err := env.leagues.GetDraftOrder(ctx, userID("owner"), league.ID)
	if err != nil {
		t.Fatalf("get draft order: %v", err)
	}
	if len(slots) != 2 || slots[0].Username != "owner" || slots[1].Username != "ruler" {
		t.Fatalf("unexpected draft order: %+v", slots)
	}

	owner, ruler := userID("owner"), userID("ruler")
	tests := []struct {
		name    string
		entries []fantasyleague.DraftOrderEntry
		wantErr error
	}{
		{name: "missing member", entries: []fantasyleague.DraftOrderEntry{{UserID: owner, Position: 1}}, wantErr: fantasyleague.ErrDraftOrder},
		{name: "duplicate position", entries: []fantasyleague.DraftOrderEntry{{UserID: owner, Position: 1}, {UserID: ruler, Position: 1}}, wantErr: fantasyleague.ErrDraftOrder},
		{name: "gap", entries: []fantasyleague.DraftOrderEntry{{UserID: owner, Position: 1}, {UserID: ruler, Position: 3}}, wantErr: fantasyleague.ErrDraftOrder},
		{name: "duplicate user", entries: []fantasyleague.DraftOrderEntry{{UserID: owner, Position: 1}, {UserID: owner, Position: 2}}, wantErr: fantasyleague.ErrDraftOrder},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.leagues.UpdateDraftOrder(ctx, UpdateDraftOrderInput{UserID: owner, LeagueID: league.ID, Entries: tc.entries})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	swapped, err := env.leagues.UpdateDraftOrder(ctx, UpdateDraftOrderInput{
		UserID:   owner,
		LeagueID: league.ID,
		Entries:  []fantasyleague.DraftOrderEntry{{UserID: owner, Position: 2}, {UserID: ruler, Position: 1}},
	})
	if err != nil {
		t.Fatalf("swap draft order: %v", err)
	}
	if swapped[0].UserID != ruler || swapped[1].UserID != owner {
		t.Fatalf("unexpected swapped order: %+v", swapped)
	}
	positions := positionsByUser(env.draftOrder(t, league.ID))
	if positions[ruler] != 1 || positions[owner] != 2 {
		t.Fatalf("swap not persisted: %+v", positions)
	}
}

func TestFantasyLeagueService_StartDraft(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler", "chovy")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 3, "ruler")

	if _, err := env.leagues.StartDraft(ctx, userID("ruler"), league.ID); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := env.leagues.StartDraft(ctx, userID("owner"), league.ID); !errors.Is(err, ErrRuleViolation) {
		t.Fatalf("expected rule violation with 2 of 3 members, got %v", err)
	}

	if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: "chovy"}); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if _, err := env.leagues.Join(ctx, userID("chovy"), league.ID); err != nil {
		t.Fatalf("join: %v", err)
	}

	started, err := env.leagues.StartDraft(ctx, userID("owner"), league.ID)
	if err != nil {
		t.Fatalf("start draft: %v", err)
	}
	if started.Status != fantasyleague.StatusDraft || started.CurrentDraftPosition == nil || *started.CurrentDraftPosition != 1 {
		t.Fatalf("unexpected started league: %+v", started)
	}

	_, err = env.leagues.StartDraft(ctx, userID("owner"), league.ID)
	var stateErr *InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
	if stateErr.Actual != fantasyleague.StatusDraft || !slices.Equal(stateErr.Required, []fantasyleague.Status{fantasyleague.StatusPreDraft}) {
		t.Fatalf("unexpected state error: %+v", stateErr)
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("InvalidStateError must unwrap to ErrInvalidState")
	}
}

func TestFantasyLeagueService_StartDraft_RequiresAvailableLeague(t *testing.T) {
	env := newFantasyTestEnv(t, "owner")
	ctx := t.Context()

	league, err := env.leagues.CreateLeague(ctx, CreateFantasyLeagueInput{UserID: userID("owner"), Name: "Solo", NumberOfTeams: 1})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	if _, err := env.leagues.StartDraft(ctx, userID("owner"), league.ID); !errors.Is(err, ErrRuleViolation) {
		t.Fatalf("expected rule violation without available leagues, got %v", err)
	}
}

func TestFantasyLeagueService_UpdateSettings(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler", "chovy")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 3, "ruler", "chovy")

	_, err := env.leagues.UpdateSettings(ctx, UpdateLeagueSettingsInput{UserID: userID("owner"), LeagueID: league.ID, Name: "x", NumberOfTeams: 2, AvailableLeagues: []string{"lck"}})
	if !errors.Is(err, ErrRuleViolation) {
		t.Fatalf("expected rule violation below accepted count, got %v", err)
	}

	_, err = env.leagues.UpdateSettings(ctx, UpdateLeagueSettingsInput{UserID: userID("owner"), LeagueID: league.ID, Name: "x", NumberOfTeams: 3, AvailableLeagues: []string{"lck", "lpl"}})
	if !errors.Is(err, fantasyleague.ErrFantasyUnavailable) {
		t.Fatalf("expected newly selected lpl to be rejected, got %v", err)
	}

	updated, err := env.leagues.UpdateSettings(ctx, UpdateLeagueSettingsInput{UserID: userID("owner"), LeagueID: league.ID, Name: "Renamed", NumberOfTeams: 5, AvailableLeagues: []string{"msi"}})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if updated.Name != "Renamed" || updated.NumberOfTeams != 5 || !slices.Equal(updated.AvailableLeagues, []string{"msi"}) {
		t.Fatalf("unexpected settings: %+v", updated)
	}

	if _, err := env.leagues.GetSettings(ctx, userID("ruler"), league.ID); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestFantasyLeagueService_UpdateScoringSettings_ForcesLeagueID(t *testing.T) {
	env := newFantasyTestEnv(t, "owner")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 2)

	settings := fantasyleague.DefaultScoringSettings("some-other-league")
	settings.Kills = 4.5
	updated, err := env.leagues.UpdateScoringSettings(ctx, UpdateScoringSettingsInput{UserID: userID("owner"), LeagueID: league.ID, Settings: settings})
	if err != nil {
		t.Fatalf("update scoring: %v", err)
	}
	if updated.LeagueID != league.ID {
		t.Fatalf("expected league id forced to %s, got %s", league.ID, updated.LeagueID)
	}

	if _, ok, _ := env.repos.Scoring.GetByLeague(ctx, "some-other-league"); ok {
		t.Fatalf("payload league id must be ignored")
	}
	stored, _, _ := env.repos.Scoring.GetByLeague(ctx, league.ID)
	if stored.Kills != 4.5 {
		t.Fatalf("expected kills 4.5, got %v", stored.Kills)
	}
}

func TestFantasyLeagueService_DeleteAndListMyLeagues(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler")
	ctx := t.Context()
	first := env.createLeagueWithMembers(t, "owner", 2, "ruler")

	env.leagues.now = func() time.Time { return testNow.Add(time.Hour) }
	second := env.createLeagueWithMembers(t, "owner", 2)

	mine, err := env.leagues.ListMyLeagues(ctx, userID("owner"))
	if err != nil {
		t.Fatalf("list my leagues: %v", err)
	}
	if len(mine) != 2 || mine[0].League.ID != second.ID {
		t.Fatalf("expected newest league first, got %+v", mine)
	}

	if err := env.leagues.DeleteLeague(ctx, userID("ruler"), first.ID); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := env.leagues.DeleteLeague(ctx, userID("owner"), first.ID); err != nil {
		t.Fatalf("delete league: %v", err)
	}
	if got := env.league(t, first.ID).Status; got != fantasyleague.StatusDeleted {
		t.Fatalf("expected DELETED, got %s", got)
	}

	mine, err = env.leagues.ListMyLeagues(ctx, userID("ruler"))
	if err != nil {
		t.Fatalf("list my leagues: %v", err)
	}
	if len(mine) != 0 {
		t.Fatalf("deleted leagues must be hidden, got %+v", mine)
	}

	if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: first.ID, Username: "ruler"}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected invalid state on deleted league, got %v", err)
	}
}

func TestFantasyLeagueService_ListMembers(t *testing.T) {
	env := newFantasyTestEnv(t, "owner", "ruler", "chovy")
	ctx := t.Context()
	league := env.createLeagueWithMembers(t, "owner", 3, "ruler")

	if _, err := env.leagues.SendInvite(ctx, SendInviteInput{UserID: userID("owner"), LeagueID: league.ID, Username: "chovy"}); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if _, err := env.leagues.ListMembers(ctx, userID("chovy"), league.ID); err != ErrForbidden {
		t.Fatalf("pending members cannot list members, got %v", err)
	}

	members, err := env.leagues.ListMembers(ctx, userID("ruler"), league.ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("expected 3 memberships, got %+v", members)
	}
	for _, m := range members {
		if m.Username == "" {
			t.Fatalf("expected usernames to be resolved, got %+v", m)
		}
	}

	if _, err := env.leagues.GetLeague(ctx, userID("chovy"), league.ID); err != nil {
		t.Fatalf("pending member can read the league: %v", err)
	}
	if _, err := env.leagues.GetLeague(ctx, "stranger", league.ID); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
	if _, err := env.leagues.GetLeague(ctx, userID("owner"), "missing"); !errors.Is(err, fantasyleague.ErrLeagueNotFound) {
		t.Fatalf("expected ErrLeagueNotFound, got %v", err)
	}
}

func TestNewFantasyLeagueService_NilLogger(t *testing.T) {
	svc := NewFantasyLeagueService(FantasyRepositories{}, directTransactor{}, staticIDGenerator{id: "x"}, nil)
	if svc.logger == nil {
		t.Fatalf("expected default logger")
	}
}
