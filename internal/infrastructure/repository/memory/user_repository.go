package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
)

type UserRepository struct {
	mu         sync.RWMutex
	items      map[string]user.User
	byUsername map[string]string
}

func NewUserRepository(users ...user.User) *UserRepository {
	r := &UserRepository{
		items:      make(map[string]user.User, len(users)),
		byUsername: make(map[string]string, len(users)),
	}
	for _, item := range users {
		r.items[item.ID] = cloneUser(item)
		r.byUsername[item.Username] = item.ID
	}
	return r
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}
	return cloneUser(item), true, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[user.NormalizeUsername(username)]
	if !ok {
		return user.User{}, false, nil
	}
	return cloneUser(r.items[id]), true, nil
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("%w: id=%s", user.ErrAlreadyExists, item.ID)
	}
	if _, ok := r.byUsername[item.Username]; ok {
		return fmt.Errorf("%w: username=%s", user.ErrAlreadyExists, item.Username)
	}

	r.items[item.ID] = cloneUser(item)
	r.byUsername[item.Username] = item.ID
	return nil
}

func cloneUser(item user.User) user.User {
	item.Permissions = append([]string(nil), item.Permissions...)
	return item
}
