package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

const leagueLockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

// LeagueTransactor runs each call in one transaction holding a transaction-scoped advisory lock
// on the league id. Repositories built on the same *sqlx.DB join it through the ctx.
type LeagueTransactor struct {
	db *sqlx.DB
}

func NewLeagueTransactor(db *sqlx.DB) *LeagueTransactor {
	return &LeagueTransactor{db: db}
}

func (t *LeagueTransactor) WithinLeague(ctx context.Context, leagueID string, fn func(ctx context.Context) error) error {
	if tx, ok := txFromContext(ctx); ok {
		// Advisory xact locks are reentrant, so a nested call only takes the extra key.
		if _, err := tx.ExecContext(ctx, leagueLockQuery, leagueID); err != nil {
			return crerr.Wrapf(err, "lock fantasy league %s", leagueID)
		}
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin fantasy league tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, leagueLockQuery, leagueID); err != nil {
		return crerr.Wrapf(err, "lock fantasy league %s", leagueID)
	}
	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit fantasy league tx")
	}

	return nil
}
