package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/logging"
)

func TestUserService_RegisterAndGetMe(t *testing.T) {
	ctx := t.Context()
	service := NewUserService(memory.NewUserRepository(), logging.NewNop())
	service.now = func() time.Time { return testNow }

	principal := user.Principal{UserID: "sub-1", Email: " fan@example.com "}
	if _, err := service.GetMe(ctx, principal); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound before registering, got %v", err)
	}

	created, err := service.Register(ctx, RegisterUserInput{Principal: principal, Username: " Faker_Fan "})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Username != "faker_fan" || created.Email != "fan@example.com" || created.Status != user.StatusActive {
		t.Fatalf("unexpected user: %+v", created)
	}
	if !created.CreatedAt.Equal(testNow) {
		t.Fatalf("expected created at %v, got %v", testNow, created.CreatedAt)
	}

	me, err := service.GetMe(ctx, principal)
	if err != nil || me.ID != "sub-1" {
		t.Fatalf("get me: %+v %v", me, err)
	}

	tests := []struct {
		name      string
		principal user.Principal
		username  string
		wantErr   error
	}{
		{name: "profile exists", principal: principal, username: "other_name", wantErr: ErrAlreadyExists},
		{name: "username taken", principal: user.Principal{UserID: "sub-2"}, username: "FAKER_FAN", wantErr: ErrAlreadyExists},
		{name: "invalid username", principal: user.Principal{UserID: "sub-3"}, username: "no spaces!", wantErr: ErrInvalidInput},
		{name: "missing subject", principal: user.Principal{}, username: "valid_name", wantErr: ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.Register(ctx, RegisterUserInput{Principal: tc.principal, Username: tc.username}); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSourceLeagueService(t *testing.T) {
	ctx := t.Context()
	service := NewSourceLeagueService(
		memory.NewSourceLeagueRepository(memory.SeedSourceLeagues()),
		memory.NewProPlayerRepository(memory.SeedProPlayers(), memory.SeedProPlayerRosters()),
	)

	leagues, err := service.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 5 || leagues[0].Name != "LCK" {
		t.Fatalf("expected leagues sorted by name, got %+v", leagues)
	}

	players, err := service.ListPlayers(ctx, memory.SourceLeagueIDMSI)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 15 {
		t.Fatalf("expected 15 MSI players, got %d", len(players))
	}

	if _, err := service.ListPlayers(ctx, "ljl"); err == nil {
		t.Fatalf("expected error for unknown source league")
	}
}
