package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	Create(ctx context.Context, user User) error
}
