package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

type Status string

const (
	StatusActive              Status = "ACTIVE"
	StatusPendingVerification Status = "PENDING_VERIFICATION"
	StatusDeleted             Status = "DELETED"
)

// Principal is the authenticated caller resolved by the account service.
type Principal struct {
	UserID string
	Email  string
}

// User is the fantasy profile of an account-service subject.
type User struct {
	ID          string
	Username    string
	Email       string
	Status      Status
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

// NormalizeUsername lowercases and trims a username so lookups are case-insensitive.
func NormalizeUsername(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if !usernamePattern.MatchString(u.Username) {
		return fmt.Errorf("username must be 3-32 characters of a-z, 0-9 or _")
	}
	switch u.Status {
	case StatusActive, StatusPendingVerification, StatusDeleted:
	default:
		return fmt.Errorf("invalid user status: %s", u.Status)
	}

	return nil
}
