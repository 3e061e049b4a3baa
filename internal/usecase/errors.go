package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidState          = errors.New("invalid state")
	ErrRuleViolation         = errors.New("rule violation")
	ErrAlreadyExists         = errors.New("already exists")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// InvalidStateError reports a league that exists but is in the wrong lifecycle stage.
type InvalidStateError struct {
	LeagueID string
	Actual   fantasyleague.Status
	Required []fantasyleague.Status
}

func (e *InvalidStateError) Error() string {
	required := make([]string, 0, len(e.Required))
	for _, status := range e.Required {
		required = append(required, string(status))
	}
	return fmt.Sprintf("league %s is %s, required one of [%s]", e.LeagueID, e.Actual, strings.Join(required, ", "))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
