package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/proplayer"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
	"github.com/riskibarqy/lol-fantasy-league/internal/usecase"
)

type registerUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
}

type createFantasyLeagueRequest struct {
	Name             string   `json:"name" validate:"required,max=64"`
	NumberOfTeams    int      `json:"number_of_teams" validate:"required,min=1,max=20"`
	AvailableLeagues []string `json:"available_leagues" validate:"omitempty,dive,required"`
}

type updateLeagueSettingsRequest struct {
	Name             string   `json:"name" validate:"required,max=64"`
	NumberOfTeams    int      `json:"number_of_teams" validate:"required,min=1,max=20"`
	AvailableLeagues []string `json:"available_leagues" validate:"omitempty,dive,required"`
}

type scoringSettingsRequest struct {
	Kills                  float64 `json:"kills"`
	Deaths                 float64 `json:"deaths"`
	Assists                float64 `json:"assists"`
	CreepScore             float64 `json:"creep_score"`
	WardsPlaced            float64 `json:"wards_placed"`
	FirstBlood             float64 `json:"first_blood"`
	TripleKill             float64 `json:"triple_kill"`
	QuadraKill             float64 `json:"quadra_kill"`
	PentaKill              float64 `json:"penta_kill"`
	TenKillsOrAssistsBonus float64 `json:"ten_kills_or_assists_bonus"`
}

type sendInviteRequest struct {
	Username string `json:"username" validate:"required,max=32"`
}

type draftOrderEntryRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Position int    `json:"position" validate:"required,min=1"`
}

type updateDraftOrderRequest struct {
	Entries []draftOrderEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

type playerRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type swapPlayersRequest struct {
	DropPlayerID   string `json:"drop_player_id" validate:"required"`
	PickupPlayerID string `json:"pickup_player_id" validate:"required,nefield=DropPlayerID"`
}

type weekRolloverJobRequest struct {
	DispatchID   string `json:"dispatch_id"`
	ScheduleNext bool   `json:"schedule_next"`
}

type userDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type sourceLeagueDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Region           string `json:"region"`
	ImageURL         string `json:"image_url,omitempty"`
	FantasyAvailable bool   `json:"fantasy_available"`
}

type proPlayerDTO struct {
	ID           string `json:"id"`
	SummonerName string `json:"summoner_name"`
	Role         string `json:"role"`
	ProTeamID    string `json:"pro_team_id,omitempty"`
	ProTeamName  string `json:"pro_team_name,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

type fantasyLeagueDTO struct {
	ID                   string   `json:"id"`
	OwnerID              string   `json:"owner_id"`
	Name                 string   `json:"name"`
	Status               string   `json:"status"`
	NumberOfTeams        int      `json:"number_of_teams"`
	AvailableLeagues     []string `json:"available_leagues"`
	CurrentWeek          int      `json:"current_week"`
	CurrentDraftPosition *int     `json:"current_draft_position"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
}

type myFantasyLeagueDTO struct {
	fantasyLeagueDTO
	MembershipStatus string `json:"membership_status"`
}

type leagueSettingsDTO struct {
	Name             string   `json:"name"`
	NumberOfTeams    int      `json:"number_of_teams"`
	AvailableLeagues []string `json:"available_leagues"`
}

type scoringSettingsDTO struct {
	LeagueID               string  `json:"league_id"`
	Kills                  float64 `json:"kills"`
	Deaths                 float64 `json:"deaths"`
	Assists                float64 `json:"assists"`
	CreepScore             float64 `json:"creep_score"`
	WardsPlaced            float64 `json:"wards_placed"`
	FirstBlood             float64 `json:"first_blood"`
	TripleKill             float64 `json:"triple_kill"`
	QuadraKill             float64 `json:"quadra_kill"`
	PentaKill              float64 `json:"penta_kill"`
	TenKillsOrAssistsBonus float64 `json:"ten_kills_or_assists_bonus"`
}

type membershipDTO struct {
	LeagueID string `json:"league_id"`
	UserID   string `json:"user_id"`
	Status   string `json:"status"`
}

type leagueMemberDTO struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

type draftOrderSlotDTO struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Position int    `json:"position"`
}

type fantasyTeamDTO struct {
	LeagueID  string            `json:"league_id"`
	UserID    string            `json:"user_id"`
	Week      int               `json:"week"`
	Roster    map[string]string `json:"roster"`
	Complete  bool              `json:"complete"`
	UpdatedAt string            `json:"updated_at"`
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func userToDTO(_ context.Context, v user.User) userDTO {
	return userDTO{
		ID:        v.ID,
		Username:  v.Username,
		Email:     v.Email,
		Status:    string(v.Status),
		CreatedAt: formatTime(v.CreatedAt),
	}
}

func sourceLeagueToDTO(_ context.Context, v sourceleague.League) sourceLeagueDTO {
	return sourceLeagueDTO{
		ID:               v.ID,
		Name:             v.Name,
		Slug:             v.Slug,
		Region:           v.Region,
		ImageURL:         v.ImageURL,
		FantasyAvailable: v.FantasyAvailable,
	}
}

func proPlayerToDTO(_ context.Context, v proplayer.Player) proPlayerDTO {
	return proPlayerDTO{
		ID:           v.ID,
		SummonerName: v.SummonerName,
		Role:         string(v.Role),
		ProTeamID:    v.ProTeamID,
		ProTeamName:  v.ProTeamName,
		ImageURL:     v.ImageURL,
	}
}

func fantasyLeagueToDTO(_ context.Context, v fantasyleague.League) fantasyLeagueDTO {
	available := v.AvailableLeagues
	if available == nil {
		available = []string{}
	}
	var position *int
	if v.CurrentDraftPosition != nil {
		p := *v.CurrentDraftPosition
		position = &p
	}

	return fantasyLeagueDTO{
		ID:                   v.ID,
		OwnerID:              v.OwnerID,
		Name:                 v.Name,
		Status:               string(v.Status),
		NumberOfTeams:        v.NumberOfTeams,
		AvailableLeagues:     available,
		CurrentWeek:          v.CurrentWeek,
		CurrentDraftPosition: position,
		CreatedAt:            formatTime(v.CreatedAt),
		UpdatedAt:            formatTime(v.UpdatedAt),
	}
}

func leagueSettingsToDTO(_ context.Context, v fantasyleague.Settings) leagueSettingsDTO {
	available := v.AvailableLeagues
	if available == nil {
		available = []string{}
	}
	return leagueSettingsDTO{
		Name:             v.Name,
		NumberOfTeams:    v.NumberOfTeams,
		AvailableLeagues: available,
	}
}

func scoringSettingsToDTO(_ context.Context, v fantasyleague.ScoringSettings) scoringSettingsDTO {
	return scoringSettingsDTO{
		LeagueID:               v.LeagueID,
		Kills:                  v.Kills,
		Deaths:                 v.Deaths,
		Assists:                v.Assists,
		CreepScore:             v.CreepScore,
		WardsPlaced:            v.WardsPlaced,
		FirstBlood:             v.FirstBlood,
		TripleKill:             v.TripleKill,
		QuadraKill:             v.QuadraKill,
		PentaKill:              v.PentaKill,
		TenKillsOrAssistsBonus: v.TenKillsOrAssistsBonus,
	}
}

func (r scoringSettingsRequest) toDomain(leagueID string) fantasyleague.ScoringSettings {
	return fantasyleague.ScoringSettings{
		LeagueID:               leagueID,
		Kills:                  r.Kills,
		Deaths:                 r.Deaths,
		Assists:                r.Assists,
		CreepScore:             r.CreepScore,
		WardsPlaced:            r.WardsPlaced,
		FirstBlood:             r.FirstBlood,
		TripleKill:             r.TripleKill,
		QuadraKill:             r.QuadraKill,
		PentaKill:              r.PentaKill,
		TenKillsOrAssistsBonus: r.TenKillsOrAssistsBonus,
	}
}

func membershipToDTO(_ context.Context, v fantasyleague.Membership) membershipDTO {
	return membershipDTO{
		LeagueID: v.LeagueID,
		UserID:   v.UserID,
		Status:   string(v.Status),
	}
}

func draftOrderToDTO(_ context.Context, slots []usecase.DraftOrderSlot) []draftOrderSlotDTO {
	items := make([]draftOrderSlotDTO, 0, len(slots))
	for _, slot := range slots {
		items = append(items, draftOrderSlotDTO{
			UserID:   slot.UserID,
			Username: slot.Username,
			Position: slot.Position,
		})
	}
	return items
}

// fantasyTeamToDTO renders every role key so empty slots come out as "".
func fantasyTeamToDTO(_ context.Context, v fantasyteam.Team) fantasyTeamDTO {
	roster := make(map[string]string, len(fantasyteam.AllRoles))
	for _, role := range fantasyteam.AllRoles {
		playerID, _ := v.PlayerFor(role)
		roster[string(role)] = playerID
	}

	return fantasyTeamDTO{
		LeagueID:  v.LeagueID,
		UserID:    v.UserID,
		Week:      v.Week,
		Roster:    roster,
		Complete:  v.IsComplete(),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func fantasyTeamsToDTO(ctx context.Context, teams []fantasyteam.Team) []fantasyTeamDTO {
	items := make([]fantasyTeamDTO, 0, len(teams))
	for _, team := range teams {
		items = append(items, fantasyTeamToDTO(ctx, team))
	}
	return items
}
