package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/proplayer"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
	qb "github.com/riskibarqy/lol-fantasy-league/internal/platform/querybuilder"
)

const (
	sourceLeaguesTable    = "source_leagues"
	proPlayersTable       = "pro_players"
	proPlayerRostersTable = "pro_player_rosters"
)

type sourceLeagueTableModel struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	Slug             string `db:"slug"`
	Region           string `db:"region"`
	ImageURL         string `db:"image_url"`
	FantasyAvailable bool   `db:"fantasy_available"`
}

type proPlayerTableModel struct {
	ID           string `db:"id"`
	SummonerName string `db:"summoner_name"`
	Role         string `db:"role"`
	ProTeamID    string `db:"pro_team_id"`
	ProTeamName  string `db:"pro_team_name"`
	ImageURL     string `db:"image_url"`
}

func proPlayerFromRow(row proPlayerTableModel) proplayer.Player {
	return proplayer.Player{
		ID:           row.ID,
		SummonerName: row.SummonerName,
		Role:         fantasyteam.Role(row.Role),
		ProTeamID:    row.ProTeamID,
		ProTeamName:  row.ProTeamName,
		ImageURL:     row.ImageURL,
	}
}

type SourceLeagueRepository struct {
	db *sqlx.DB
}

func NewSourceLeagueRepository(db *sqlx.DB) *SourceLeagueRepository {
	return &SourceLeagueRepository{db: db}
}

func (r *SourceLeagueRepository) List(ctx context.Context) ([]sourceleague.League, error) {
	query, args, err := qb.Select("*").From(sourceLeaguesTable).OrderBy("name").ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, errMsgBuildQueryPattern, "list source leagues")
	}

	var rows []sourceLeagueTableModel
	if err := getQ(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list source leagues")
	}

	out := make([]sourceleague.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, sourceleague.League(row))
	}
	return out, nil
}

func (r *SourceLeagueRepository) GetByID(ctx context.Context, leagueID string) (sourceleague.League, bool, error) {
	query, args, err := qb.Select("*").From(sourceLeaguesTable).Where(qb.Eq("id", leagueID)).ToSQL()
	if err != nil {
		return sourceleague.League{}, false, crerr.Wrapf(err, errMsgBuildQueryPattern, "get source league")
	}

	var row sourceLeagueTableModel
	if err := getQ(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sourceleague.League{}, false, nil
		}
		return sourceleague.League{}, false, crerr.Wrapf(err, "get source league %s", leagueID)
	}

	return sourceleague.League(row), true, nil
}

type ProPlayerRepository struct {
	db *sqlx.DB
}

func NewProPlayerRepository(db *sqlx.DB) *ProPlayerRepository {
	return &ProPlayerRepository{db: db}
}

func (r *ProPlayerRepository) GetByID(ctx context.Context, playerID string) (proplayer.Player, bool, error) {
	query, args, err := qb.Select("*").From(proPlayersTable).Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return proplayer.Player{}, false, crerr.Wrapf(err, errMsgBuildQueryPattern, "get pro player")
	}

	var row proPlayerTableModel
	if err := getQ(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return proplayer.Player{}, false, nil
		}
		return proplayer.Player{}, false, crerr.Wrapf(err, "get pro player %s", playerID)
	}

	return proPlayerFromRow(row), true, nil
}

func (r *ProPlayerRepository) ListSourceLeagueIDs(ctx context.Context, playerID string) ([]string, error) {
	query, args, err := qb.Select("source_league_id").From(proPlayerRostersTable).
		Where(qb.Eq("player_id", playerID)).
		OrderBy("source_league_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, errMsgBuildQueryPattern, "list pro player source leagues")
	}

	out := make([]string, 0)
	if err := getQ(ctx, r.db).SelectContext(ctx, &out, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list pro player source leagues")
	}
	return out, nil
}

func (r *ProPlayerRepository) ListBySourceLeague(ctx context.Context, sourceLeagueID string) ([]proplayer.Player, error) {
	query, args, err := qb.Select("p.*").
		From(proPlayersTable+" p JOIN "+proPlayerRostersTable+" r ON r.player_id = p.id").
		Where(qb.Eq("r.source_league_id", sourceLeagueID)).
		OrderBy("p.pro_team_name", "p.role", "p.id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, errMsgBuildQueryPattern, "list pro players by source league")
	}

	var rows []proPlayerTableModel
	if err := getQ(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list pro players by source league")
	}

	out := make([]proplayer.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, proPlayerFromRow(row))
	}
	return out, nil
}
