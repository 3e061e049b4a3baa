package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
)

// fantasyTeamTableModel stores the role map as one nullable column per role.
type fantasyTeamTableModel struct {
	LeagueID        string         `db:"league_id"`
	UserID          string         `db:"user_id"`
	Week            int            `db:"week"`
	TopPlayerID     sql.NullString `db:"top_player_id"`
	JunglePlayerID  sql.NullString `db:"jungle_player_id"`
	MidPlayerID     sql.NullString `db:"mid_player_id"`
	ADCPlayerID     sql.NullString `db:"adc_player_id"`
	SupportPlayerID sql.NullString `db:"support_player_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (m *fantasyTeamTableModel) slot(role fantasyteam.Role) *sql.NullString {
	switch role {
	case fantasyteam.RoleTop:
		return &m.TopPlayerID
	case fantasyteam.RoleJungle:
		return &m.JunglePlayerID
	case fantasyteam.RoleMid:
		return &m.MidPlayerID
	case fantasyteam.RoleADC:
		return &m.ADCPlayerID
	case fantasyteam.RoleSupport:
		return &m.SupportPlayerID
	default:
		return nil
	}
}

func fantasyTeamToRow(t fantasyteam.Team) fantasyTeamTableModel {
	row := fantasyTeamTableModel{
		LeagueID:  t.LeagueID,
		UserID:    t.UserID,
		Week:      t.Week,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	for _, role := range fantasyteam.AllRoles {
		if id, ok := t.PlayerFor(role); ok {
			*row.slot(role) = nullableString(id)
		}
	}
	return row
}

func fantasyTeamFromRow(row fantasyTeamTableModel) fantasyteam.Team {
	team := fantasyteam.NewTeam(row.LeagueID, row.UserID, row.Week)
	team.CreatedAt = row.CreatedAt
	team.UpdatedAt = row.UpdatedAt
	for _, role := range fantasyteam.AllRoles {
		if v := row.slot(role); v.Valid && v.String != "" {
			team.Assign(role, v.String)
		}
	}
	return team
}
