package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/user"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/logging"
)

type RegisterUserInput struct {
	Principal user.Principal
	Username  string
}

type UserService struct {
	userRepo user.Repository
	logger   *logging.Logger
	now      func() time.Time
}

func NewUserService(userRepo user.Repository, logger *logging.Logger) *UserService {
	if logger == nil {
		logger = logging.Default()
	}

	return &UserService{
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates the fantasy profile of an authenticated account-service subject.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Register")
	defer span.End()

	userID := strings.TrimSpace(input.Principal.UserID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	item := user.User{
		ID:        userID,
		Username:  user.NormalizeUsername(input.Username),
		Email:     strings.TrimSpace(input.Principal.Email),
		Status:    user.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: profile already registered", ErrAlreadyExists)
	}
	if _, exists, err := s.userRepo.GetByUsername(ctx, item.Username); err != nil {
		return user.User{}, fmt.Errorf("get user by username: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: username %s is taken", ErrAlreadyExists, item.Username)
	}

	if err := s.userRepo.Create(ctx, item); err != nil {
		if errors.Is(err, user.ErrAlreadyExists) {
			return user.User{}, fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", item.ID, "username", item.Username)
	return item, nil
}

func (s *UserService) GetMe(ctx context.Context, principal user.Principal) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.GetMe")
	defer span.End()

	userID := strings.TrimSpace(principal.UserID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", user.ErrNotFound, userID)
	}

	return item, nil
}
