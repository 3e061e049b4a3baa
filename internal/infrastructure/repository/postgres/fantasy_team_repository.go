package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	qb "github.com/riskibarqy/lol-fantasy-league/internal/platform/querybuilder"
)

const fantasyTeamsTable = "fantasy_teams"

const upsertFantasyTeamSuffix = `ON CONFLICT (league_id, user_id, week)
DO UPDATE SET
    top_player_id = EXCLUDED.top_player_id,
    jungle_player_id = EXCLUDED.jungle_player_id,
    mid_player_id = EXCLUDED.mid_player_id,
    adc_player_id = EXCLUDED.adc_player_id,
    support_player_id = EXCLUDED.support_player_id,
    updated_at = EXCLUDED.updated_at`

type FantasyTeamRepository struct {
	db *sqlx.DB
}

func NewFantasyTeamRepository(db *sqlx.DB) *FantasyTeamRepository {
	return &FantasyTeamRepository{db: db}
}

func (r *FantasyTeamRepository) Get(ctx context.Context, leagueID, userID string, week int) (fantasyteam.Team, bool, error) {
	query, args, err := qb.Select("*").From(fantasyTeamsTable).
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID), qb.Eq("week", week)).
		ToSQL()
	if err != nil {
		return fantasyteam.Team{}, false, crerr.Wrapf(err, errMsgBuildQueryPattern, "get fantasy team")
	}

	return r.getOne(ctx, query, args)
}

func (r *FantasyTeamRepository) GetLatest(ctx context.Context, leagueID, userID string) (fantasyteam.Team, bool, error) {
	query, args, err := qb.Select("*").From(fantasyTeamsTable).
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		OrderBy("week DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return fantasyteam.Team{}, false, crerr.Wrapf(err, errMsgBuildQueryPattern, "get latest fantasy team")
	}

	return r.getOne(ctx, query, args)
}

func (r *FantasyTeamRepository) getOne(ctx context.Context, query string, args []any) (fantasyteam.Team, bool, error) {
	var row fantasyTeamTableModel
	if err := getQ(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasyteam.Team{}, false, nil
		}
		return fantasyteam.Team{}, false, crerr.Wrap(err, "get fantasy team")
	}

	return fantasyTeamFromRow(row), true, nil
}

func (r *FantasyTeamRepository) ListByUser(ctx context.Context, leagueID, userID string) ([]fantasyteam.Team, error) {
	query, args, err := qb.Select("*").From(fantasyTeamsTable).
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, errMsgBuildQueryPattern, "list fantasy teams by user")
	}

	return r.list(ctx, query, args)
}

func (r *FantasyTeamRepository) ListByWeek(ctx context.Context, leagueID string, week int) ([]fantasyteam.Team, error) {
	query, args, err := qb.Select("*").From(fantasyTeamsTable).
		Where(qb.Eq("league_id", leagueID), qb.Eq("week", week)).
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, errMsgBuildQueryPattern, "list fantasy teams by week")
	}

	return r.list(ctx, query, args)
}

func (r *FantasyTeamRepository) list(ctx context.Context, query string, args []any) ([]fantasyteam.Team, error) {
	var rows []fantasyTeamTableModel
	if err := getQ(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list fantasy teams")
	}

	out := make([]fantasyteam.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyTeamFromRow(row))
	}
	return out, nil
}

// Upsert keeps the original created_at of an existing week.
func (r *FantasyTeamRepository) Upsert(ctx context.Context, team fantasyteam.Team) error {
	query, args, err := qb.InsertModel(fantasyTeamsTable, fantasyTeamToRow(team), upsertFantasyTeamSuffix)
	if err != nil {
		return crerr.Wrapf(err, errMsgBuildQueryPattern, "upsert fantasy team")
	}
	if _, err := getQ(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "upsert fantasy team")
	}

	return nil
}
