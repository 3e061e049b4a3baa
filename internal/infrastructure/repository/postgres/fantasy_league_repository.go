package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	qb "github.com/riskibarqy/lol-fantasy-league/internal/platform/querybuilder"
)

const (
	fantasyLeaguesTable     = "fantasy_leagues"
	membershipsTable        = "fantasy_league_memberships"
	draftOrderTable         = "fantasy_draft_order"
	scoringSettingsTable    = "fantasy_scoring_settings"
	errMsgBuildQueryPattern = "build %s query"
)

const updateDraftPositionsQuery = `
UPDATE fantasy_draft_order AS d
SET position = v.position
FROM unnest($2::text[], $3::int[]) AS v(user_id, position)
WHERE d.league_id = $1 AND d.user_id = v.user_id`

type FantasyLeagueRepository struct {
	db *sqlx.DB
}

func NewFantasyLeagueRepository(db *sqlx.DB) *FantasyLeagueRepository {
	return &FantasyLeagueRepository{db: db}
}

func (r *FantasyLeagueRepository) GetByID(ctx context.Context, leagueID string) (fantasyleague.League, bool, error) {
	query, args, err := qb.Select("*").From(fantasyLeaguesTable).
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return fantasyleague.League{}, false, crerr.Wrapf(err, errMsgBuildQueryPattern, "get fantasy league")
	}

	var row fantasyLeagueTableModel
	if err := getQ(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasyleague.League{}, false, nil
		}
		return fantasyleague.League{}, false, crerr.Wrapf(err, "get fantasy league %s", leagueID)
	}

	return fantasyLeagueFromRow(row), true, nil
}

func (r *FantasyLeagueRepository) ListByIDs(ctx context.Context, leagueIDs []string) ([]fantasyleague.League, error) {
	if len(leagueIDs) == 0 {
		return []fantasyleague.League{}, nil
	}

	query, args, err := qb.Select("*").From(fantasyLeaguesTable).
		Where(qb.Any("id", pq.Array(leagueIDs))).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, errMsgBuildQueryPattern, "list fantasy leagues by ids")
	}

	return r.selectLeagues(ctx, query, args)
}

func (r *FantasyLeagueRepository) ListByStatus(ctx context.Context, status fantasyleague.Status) ([]fantasyleague.League, error) {
	query, args, err := qb.Select("*").From(fantasyLeaguesTable).
		Where(qb.Eq("status", string(status))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, errMsgBuildQueryPattern, "list fantasy leagues by status")
	}

	return r.selectLeagues(ctx, query, args)
}

func (r *FantasyLeagueRepository) selectLeagues(ctx context.Context, query string, args []any) ([]fantasyleague.League, error) {
	var rows []fantasyLeagueTableModel
	if err := getQ(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list fantasy leagues")
	}

	out := make([]fantasyleague.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyLeagueFromRow(row))
	}
	return out, nil
}

func (r *FantasyLeagueRepository) Create(ctx context.Context, league fantasyleague.League) error {
	query, args, err := qb.InsertModel(fantasyLeaguesTable, fantasyLeagueToRow(league), "")
	if err != nil {
		return crerr.Wrapf(err, errMsgBuildQueryPattern, "create fantasy league")
	}
	if _, err := getQ(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("fantasy league already exists: %s", league.ID)
		}
		return crerr.Wrap(err, "create fantasy league")
	}

	return nil
}

func (r *FantasyLeagueRepository) Update(ctx context.Context, league fantasyleague.League) error {
	row := fantasyLeagueToRow(league)
	query, args, err := qb.Update(fantasyLeaguesTable).
		Set("name", row.Name).
		Set("status", row.Status).
		Set("number_of_teams", row.NumberOfTeams).
		Set("available_leagues", row.AvailableLeagues).
		Set("current_week", row.CurrentWeek).
		Set("current_draft_position", row.CurrentDraftPosition).
		Set("updated_at", row.UpdatedAt).
		Where(qb.Eq("id", row.ID)).
		ToSQL()
	if err != nil {
		return crerr.Wrapf(err, errMsgBuildQueryPattern, "update fantasy league")
	}

	result, err := getQ(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrap(err, "update fantasy league")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "rows affected update fantasy league")
	}
	if affected == 0 {
		return fmt.Errorf("%w: league=%s", fantasyleague.ErrLeagueNotFound, league.ID)
	}

	return nil
}

type MembershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Get(ctx context.Context, leagueID, userID string) (fantasyleague.Membership, bool, error) {
	query, args, err := qb.Select("*").From(membershipsTable).
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return fantasyleague.Membership{}, false, crerr.Wrapf(err, errMsgBuildQueryPattern, "get membership")
	}

	var row membershipTableModel
	if err := getQ(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasyleague.Membership{}, false, nil
		}
		return fantasyleague.Membership{}, false, crerr.Wrap(err, "get membership")
	}

	return membershipFromRow(row), true, nil
}

func (r *MembershipRepository) Create(ctx context.Context, membership fantasyleague.Membership) error {
	model := membershipTableModel{
		LeagueID:  membership.LeagueID,
		UserID:    membership.UserID,
		Status:    string(membership.Status),
		CreatedAt: membership.CreatedAt,
		UpdatedAt: membership.UpdatedAt,
	}
	query, args, err := qb.InsertModel(membershipsTable, model, "")
	if err != nil {
		return crerr.Wrapf(err, errMsgBuildQueryPattern, "create membership")
	}
	if _, err := getQ(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("membership already exists: league=%s user=%s", membership.LeagueID, membership.UserID)
		}
		return crerr.Wrap(err, "create membership")
	}

	return nil
}

func (r *MembershipRepository) UpdateStatus(ctx context.Context, leagueID, userID string, status fantasyleague.MembershipStatus) error {
	query, args, err := qb.Update(membershipsTable).
		Set("status", string(status)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return crerr.Wrapf(err, errMsgBuildQueryPattern, "update membership status")
	}

	result, err := getQ(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrap(err, "update membership status")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "rows affected update membership status")
	}
	if affected == 0 {
		return fmt.Errorf("membership not found: league=%s user=%s", leagueID, userID)
	}

	return nil
}

func (r *MembershipRepository) ListByLeague(ctx context.Context, leagueID string, statuses ...fantasyleague.MembershipStatus) ([]fantasyleague.Membership, error) {
	return r.list(ctx, qb.Eq("league_id", leagueID), statuses)
}

func (r *MembershipRepository) ListByUser(ctx context.Context, userID string, statuses ...fantasyleague.MembershipStatus) ([]fantasyleague.Membership, error) {
	return r.list(ctx, qb.Eq("user_id", userID), statuses)
}

func (r *MembershipRepository) list(ctx context.Context, scope qb.Condition, statuses []fantasyleague.MembershipStatus) ([]fantasyleague.Membership, error) {
	conditions := []qb.Condition{scope}
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		conditions = append(conditions, qb.InStrings("status", values))
	}

	query, args, err := qb.Select("*").From(membershipsTable).
		Where(conditions...).
		OrderBy("created_at", "league_id", "user_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, errMsgBuildQueryPattern, "list memberships")
	}

	var rows []membershipTableModel
	if err := getQ(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list memberships")
	}

	out := make([]fantasyleague.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, membershipFromRow(row))
	}
	return out, nil
}

type DraftOrderRepository struct {
	db *sqlx.DB
}

func NewDraftOrderRepository(db *sqlx.DB) *DraftOrderRepository {
	return &DraftOrderRepository{db: db}
}

func (r *DraftOrderRepository) ListByLeague(ctx context.Context, leagueID string) ([]fantasyleague.DraftOrderEntry, error) {
	query, args, err := qb.Select("league_id", "user_id", "position").From(draftOrderTable).
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, errMsgBuildQueryPattern, "list draft order")
	}

	var rows []draftOrderTableModel
	if err := getQ(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list draft order")
	}

	out := make([]fantasyleague.DraftOrderEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyleague.DraftOrderEntry(row))
	}
	return out, nil
}

func (r *DraftOrderRepository) Get(ctx context.Context, leagueID, userID string) (fantasyleague.DraftOrderEntry, bool, error) {
	query, args, err := qb.Select("league_id", "user_id", "position").From(draftOrderTable).
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return fantasyleague.DraftOrderEntry{}, false, crerr.Wrapf(err, errMsgBuildQueryPattern, "get draft order entry")
	}

	var row draftOrderTableModel
	if err := getQ(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasyleague.DraftOrderEntry{}, false, nil
		}
		return fantasyleague.DraftOrderEntry{}, false, crerr.Wrap(err, "get draft order entry")
	}

	return fantasyleague.DraftOrderEntry(row), true, nil
}

func (r *DraftOrderRepository) Create(ctx context.Context, entry fantasyleague.DraftOrderEntry) error {
	query, args, err := qb.InsertModel(draftOrderTable, draftOrderTableModel(entry), "")
	if err != nil {
		return crerr.Wrapf(err, errMsgBuildQueryPattern, "create draft order entry")
	}
	if _, err := getQ(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("draft order entry already exists: league=%s user=%s", entry.LeagueID, entry.UserID)
		}
		return crerr.Wrap(err, "create draft order entry")
	}

	return nil
}

func (r *DraftOrderRepository) Delete(ctx context.Context, leagueID, userID string) error {
	query, args, err := qb.DeleteFrom(draftOrderTable).
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return crerr.Wrapf(err, errMsgBuildQueryPattern, "delete draft order entry")
	}

	result, err := getQ(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrap(err, "delete draft order entry")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "rows affected delete draft order entry")
	}
	if affected == 0 {
		return fmt.Errorf("draft order entry not found: league=%s user=%s", leagueID, userID)
	}

	return nil
}

// UpdatePositions rewrites all given positions in one statement. The (league_id, position)
// unique constraint is deferrable, so a permutation never collides midway.
func (r *DraftOrderRepository) UpdatePositions(ctx context.Context, leagueID string, entries []fantasyleague.DraftOrderEntry) error {
	if len(entries) == 0 {
		return nil
	}

	userIDs := make([]string, 0, len(entries))
	positions := make([]int64, 0, len(entries))
	for _, entry := range entries {
		userIDs = append(userIDs, entry.UserID)
		positions = append(positions, int64(entry.Position))
	}

	result, err := getQ(ctx, r.db).ExecContext(ctx, updateDraftPositionsQuery, leagueID, pq.Array(userIDs), pq.Array(positions))
	if err != nil {
		return crerr.Wrap(err, "update draft positions")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "rows affected update draft positions")
	}
	if affected != int64(len(entries)) {
		return fmt.Errorf("draft order entries not found: league=%s updated=%d expected=%d", leagueID, affected, len(entries))
	}

	return nil
}

type ScoringSettingsRepository struct {
	db *sqlx.DB
}

func NewScoringSettingsRepository(db *sqlx.DB) *ScoringSettingsRepository {
	return &ScoringSettingsRepository{db: db}
}

func (r *ScoringSettingsRepository) GetByLeague(ctx context.Context, leagueID string) (fantasyleague.ScoringSettings, bool, error) {
	query, args, err := qb.Select("*").From(scoringSettingsTable).
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return fantasyleague.ScoringSettings{}, false, crerr.Wrapf(err, errMsgBuildQueryPattern, "get scoring settings")
	}

	var row scoringSettingsTableModel
	if err := getQ(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasyleague.ScoringSettings{}, false, nil
		}
		return fantasyleague.ScoringSettings{}, false, crerr.Wrap(err, "get scoring settings")
	}

	return scoringSettingsFromRow(row), true, nil
}

func (r *ScoringSettingsRepository) Upsert(ctx context.Context, settings fantasyleague.ScoringSettings) error {
	query, args, err := qb.UpsertModel(scoringSettingsTable, scoringSettingsToRow(settings), "league_id")
	if err != nil {
		return crerr.Wrapf(err, errMsgBuildQueryPattern, "upsert scoring settings")
	}
	if _, err := getQ(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "upsert scoring settings")
	}

	return nil
}
