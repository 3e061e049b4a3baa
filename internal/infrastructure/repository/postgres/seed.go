package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/lol-fantasy-league/internal/platform/querybuilder"
)

// BootstrapSeed loads the bundled esports catalog when source_leagues is empty.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM source_leagues`); err != nil {
		return crerr.Wrap(err, "count source leagues for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	leagues := qb.InsertInto(sourceLeaguesTable).
		Columns("id", "name", "slug", "region", "image_url", "fantasy_available").
		Suffix("ON CONFLICT (id) DO NOTHING")
	for _, l := range memory.SeedSourceLeagues() {
		leagues.Values(l.ID, l.Name, l.Slug, l.Region, l.ImageURL, l.FantasyAvailable)
	}
	if err := execSeed(ctx, tx, "source leagues", leagues); err != nil {
		return err
	}

	players := qb.InsertInto(proPlayersTable).
		Columns("id", "summoner_name", "role", "pro_team_id", "pro_team_name", "image_url").
		Suffix("ON CONFLICT (id) DO NOTHING")
	for _, p := range memory.SeedProPlayers() {
		players.Values(p.ID, p.SummonerName, string(p.Role), p.ProTeamID, p.ProTeamName, p.ImageURL)
	}
	if err := execSeed(ctx, tx, "pro players", players); err != nil {
		return err
	}

	rosters := qb.InsertInto(proPlayerRostersTable).
		Columns("source_league_id", "player_id").
		Suffix("ON CONFLICT (source_league_id, player_id) DO NOTHING")
	for _, r := range memory.SeedProPlayerRosters() {
		rosters.Values(r.SourceLeagueID, r.PlayerID)
	}
	if err := execSeed(ctx, tx, "pro player rosters", rosters); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}
	return nil
}

func execSeed(ctx context.Context, tx *sqlx.Tx, name string, b *qb.InsertBuilder) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return crerr.Wrapf(err, "build seed %s query", name)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "seed %s", name)
	}
	return nil
}
