package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
)

type fantasyLeagueTableModel struct {
	ID                   string         `db:"id"`
	OwnerID              string         `db:"owner_id"`
	Name                 string         `db:"name"`
	Status               string         `db:"status"`
	NumberOfTeams        int            `db:"number_of_teams"`
	AvailableLeagues     pq.StringArray `db:"available_leagues"`
	CurrentWeek          int            `db:"current_week"`
	CurrentDraftPosition sql.NullInt64  `db:"current_draft_position"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

func fantasyLeagueToRow(l fantasyleague.League) fantasyLeagueTableModel {
	return fantasyLeagueTableModel{
		ID:                   l.ID,
		OwnerID:              l.OwnerID,
		Name:                 l.Name,
		Status:               string(l.Status),
		NumberOfTeams:        l.NumberOfTeams,
		AvailableLeagues:     pq.StringArray(append([]string{}, l.AvailableLeagues...)),
		CurrentWeek:          l.CurrentWeek,
		CurrentDraftPosition: nullableInt(l.CurrentDraftPosition),
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
}

func fantasyLeagueFromRow(row fantasyLeagueTableModel) fantasyleague.League {
	return fantasyleague.League{
		ID:                   row.ID,
		OwnerID:              row.OwnerID,
		Name:                 row.Name,
		Status:               fantasyleague.Status(row.Status),
		NumberOfTeams:        row.NumberOfTeams,
		AvailableLeagues:     append([]string(nil), row.AvailableLeagues...),
		CurrentWeek:          row.CurrentWeek,
		CurrentDraftPosition: intFromNull(row.CurrentDraftPosition),
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

type membershipTableModel struct {
	LeagueID  string    `db:"league_id"`
	UserID    string    `db:"user_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func membershipFromRow(row membershipTableModel) fantasyleague.Membership {
	return fantasyleague.Membership{
		LeagueID:  row.LeagueID,
		UserID:    row.UserID,
		Status:    fantasyleague.MembershipStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type draftOrderTableModel struct {
	LeagueID string `db:"league_id"`
	UserID   string `db:"user_id"`
	Position int    `db:"position"`
}

type scoringSettingsTableModel struct {
	LeagueID               string    `db:"league_id"`
	Kills                  float64   `db:"kills"`
	Deaths                 float64   `db:"deaths"`
	Assists                float64   `db:"assists"`
	CreepScore             float64   `db:"creep_score"`
	WardsPlaced            float64   `db:"wards_placed"`
	FirstBlood             float64   `db:"first_blood"`
	TripleKill             float64   `db:"triple_kill"`
	QuadraKill             float64   `db:"quadra_kill"`
	PentaKill              float64   `db:"penta_kill"`
	TenKillsOrAssistsBonus float64   `db:"ten_kills_or_assists_bonus"`
	UpdatedAt              time.Time `db:"updated_at"`
}

func scoringSettingsToRow(s fantasyleague.ScoringSettings) scoringSettingsTableModel {
	return scoringSettingsTableModel{
		LeagueID:               s.LeagueID,
		Kills:                  s.Kills,
		Deaths:                 s.Deaths,
		Assists:                s.Assists,
		CreepScore:             s.CreepScore,
		WardsPlaced:            s.WardsPlaced,
		FirstBlood:             s.FirstBlood,
		TripleKill:             s.TripleKill,
		QuadraKill:             s.QuadraKill,
		PentaKill:              s.PentaKill,
		TenKillsOrAssistsBonus: s.TenKillsOrAssistsBonus,
		UpdatedAt:              s.UpdatedAt,
	}
}

func scoringSettingsFromRow(row scoringSettingsTableModel) fantasyleague.ScoringSettings {
	return fantasyleague.ScoringSettings{
		LeagueID:               row.LeagueID,
		Kills:                  row.Kills,
		Deaths:                 row.Deaths,
		Assists:                row.Assists,
		CreepScore:             row.CreepScore,
		WardsPlaced:            row.WardsPlaced,
		FirstBlood:             row.FirstBlood,
		TripleKill:             row.TripleKill,
		QuadraKill:             row.QuadraKill,
		PentaKill:              row.PentaKill,
		TenKillsOrAssistsBonus: row.TenKillsOrAssistsBonus,
		UpdatedAt:              row.UpdatedAt,
	}
}
