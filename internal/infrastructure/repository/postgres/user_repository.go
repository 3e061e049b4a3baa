package postgres

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
	qb "github.com/riskibarqy/lol-fantasy-league/internal/platform/querybuilder"
)

const usersTable = "users"

type userTableModel struct {
	ID          string         `db:"id"`
	Username    string         `db:"username"`
	Email       string         `db:"email"`
	Status      string         `db:"status"`
	Permissions pq.StringArray `db:"permissions"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getBy(ctx, qb.Eq("id", userID))
}

// GetByUsername matches the normalized username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	return r.getBy(ctx, qb.Eq("username", user.NormalizeUsername(username)))
}

func (r *UserRepository) getBy(ctx context.Context, cond qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select("*").From(usersTable).Where(cond).ToSQL()
	if err != nil {
		return user.User{}, false, crerr.Wrapf(err, errMsgBuildQueryPattern, "get user")
	}

	var row userTableModel
	if err := getQ(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, crerr.Wrap(err, "get user")
	}

	return user.User{
		ID:          row.ID,
		Username:    row.Username,
		Email:       row.Email,
		Status:      user.Status(row.Status),
		Permissions: append([]string(nil), row.Permissions...),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, true, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	model := userTableModel{
		ID:          item.ID,
		Username:    user.NormalizeUsername(item.Username),
		Email:       item.Email,
		Status:      string(item.Status),
		Permissions: pq.StringArray(append([]string{}, item.Permissions...)),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	query, args, err := qb.InsertModel(usersTable, model, "")
	if err != nil {
		return crerr.Wrapf(err, errMsgBuildQueryPattern, "create user")
	}
	if _, err := getQ(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: id=%s username=%s", user.ErrAlreadyExists, item.ID, model.Username)
		}
		return crerr.Wrap(err, "create user")
	}

	return nil
}
