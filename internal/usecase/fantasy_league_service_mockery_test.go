package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
	fantasyleaguemock "github.com/riskibarqy/lol-fantasy-league/internal/mocks/domain/fantasyleague"
	fantasyteammock "github.com/riskibarqy/lol-fantasy-league/internal/mocks/domain/fantasyteam"
	usermock "github.com/riskibarqy/lol-fantasy-league/internal/mocks/domain/user"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func anyContext() any {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func TestFantasyLeagueService_StartDraft_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := fantasyleaguemock.NewRepository(t)
	repoErr := errors.New("connection reset")
	leagueRepo.
		On("GetByID", anyContext(), "league-1").
		Return(fantasyleague.League{}, false, repoErr).
		Once()

	service := NewFantasyLeagueService(FantasyRepositories{Leagues: leagueRepo}, directTransactor{}, staticIDGenerator{id: "x"}, logging.NewNop())

	_, err := service.StartDraft(context.Background(), "owner", "league-1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to be wrapped, got %v", err)
	}
}

func TestFantasyLeagueService_Leave_MissingDraftRowUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := fantasyleaguemock.NewRepository(t)
	membershipRepo := fantasyleaguemock.NewMembershipRepository(t)
	draftOrderRepo := fantasyleaguemock.NewDraftOrderRepository(t)

	league := fantasyleague.League{ID: "league-1", OwnerID: "owner", Status: fantasyleague.StatusPreDraft, NumberOfTeams: 2, CurrentWeek: 1}
	leagueRepo.
		On("GetByID", anyContext(), league.ID).
		Return(league, true, nil).
		Once()
	membershipRepo.
		On("Get", anyContext(), league.ID, "member").
		Return(fantasyleague.Membership{LeagueID: league.ID, UserID: "member", Status: fantasyleague.MembershipAccepted}, true, nil).
		Once()
	membershipRepo.
		On("UpdateStatus", anyContext(), league.ID, "member", fantasyleague.MembershipDeclined).
		Return(nil).
		Once()
	draftOrderRepo.
		On("ListByLeague", anyContext(), league.ID).
		Return([]fantasyleague.DraftOrderEntry{{LeagueID: league.ID, UserID: "owner", Position: 1}}, nil).
		Once()

	service := NewFantasyLeagueService(FantasyRepositories{
		Leagues:     leagueRepo,
		Memberships: membershipRepo,
		DraftOrder:  draftOrderRepo,
	}, directTransactor{}, staticIDGenerator{id: "x"}, logging.NewNop())

	err := service.Leave(context.Background(), "member", league.ID)
	if !errors.Is(err, fantasyleague.ErrDraftOrder) {
		t.Fatalf("expected ErrDraftOrder for a member without a draft row, got %v", err)
	}
	draftOrderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	draftOrderRepo.AssertNotCalled(t, "UpdatePositions", mock.Anything, mock.Anything, mock.Anything)
}

func TestFantasyTeamService_GetAllTeamWeeks_ListErrorUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := fantasyleaguemock.NewRepository(t)
	membershipRepo := fantasyleaguemock.NewMembershipRepository(t)
	teamRepo := fantasyteammock.NewRepository(t)

	league := fantasyleague.League{ID: "league-1", OwnerID: "owner", Status: fantasyleague.StatusActive, NumberOfTeams: 2, CurrentWeek: 4}
	leagueRepo.On("GetByID", anyContext(), league.ID).Return(league, true, nil).Once()
	membershipRepo.
		On("Get", anyContext(), league.ID, "owner").
		Return(fantasyleague.Membership{LeagueID: league.ID, UserID: "owner", Status: fantasyleague.MembershipAccepted}, true, nil).
		Once()
	repoErr := errors.New("timeout")
	teamRepo.On("ListByUser", anyContext(), league.ID, "owner").Return([]fantasyteam.Team(nil), repoErr).Once()

	service := NewFantasyTeamService(FantasyRepositories{
		Leagues:     leagueRepo,
		Memberships: membershipRepo,
		Teams:       teamRepo,
	}, directTransactor{}, logging.NewNop())

	_, err := service.GetAllTeamWeeks(context.Background(), "owner", league.ID)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestUserService_Register_DuplicateOnCreateUsingMockery(t *testing.T) {
	t.Parallel()

	userRepo := usermock.NewRepository(t)
	userRepo.On("GetByID", anyContext(), "sub-1").Return(user.User{}, false, nil).Once()
	userRepo.On("GetByUsername", anyContext(), "faker_fan").Return(user.User{}, false, nil).Once()
	userRepo.
		On("Create", anyContext(), mock.MatchedBy(func(u user.User) bool { return u.ID == "sub-1" && u.Username == "faker_fan" })).
		Return(user.ErrAlreadyExists).
		Once()

	service := NewUserService(userRepo, logging.NewNop())
	_, err := service.Register(context.Background(), RegisterUserInput{
		Principal: user.Principal{UserID: "sub-1", Email: "fan@example.com"},
		Username:  "Faker_Fan",
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
