package fantasyleague

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	ErrLeagueNotFound     = errors.New("fantasy league not found")
	ErrFantasyUnavailable = errors.New("league is not available for fantasy")
	ErrDraftOrder         = errors.New("invalid draft order")
	ErrMembership         = errors.New("fantasy membership violation")
	ErrDraftNotStarted    = errors.New("draft position is not set")
)

type Status string

const (
	StatusPreDraft  Status = "PRE_DRAFT"
	StatusDraft     Status = "DRAFT"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusDeleted   Status = "DELETED"
)

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "PENDING"
	MembershipAccepted MembershipStatus = "ACCEPTED"
	MembershipDeclined MembershipStatus = "DECLINED"
	MembershipRevoked  MembershipStatus = "REVOKED"
)

// League is the aggregate root of a fantasy league.
type League struct {
	ID                   string
	OwnerID              string
	Name                 string
	Status               Status
	NumberOfTeams        int
	AvailableLeagues     []string
	CurrentWeek          int
	CurrentDraftPosition *int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (l League) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("league id is required")
	}
	if strings.TrimSpace(l.OwnerID) == "" {
		return fmt.Errorf("league owner id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if l.NumberOfTeams < 1 {
		return fmt.Errorf("number of teams must be at least 1")
	}
	if l.CurrentWeek < 1 {
		return fmt.Errorf("current week must be at least 1")
	}

	return nil
}

func (l League) HasStatus(statuses ...Status) bool {
	return slices.Contains(statuses, l.Status)
}

func (l League) IsOwner(userID string) bool {
	return l.OwnerID == userID
}

func (l League) Clone() League {
	out := l
	out.AvailableLeagues = append([]string(nil), l.AvailableLeagues...)
	if l.CurrentDraftPosition != nil {
		pos := *l.CurrentDraftPosition
		out.CurrentDraftPosition = &pos
	}
	return out
}

// Settings is the owner-editable part of a league.
type Settings struct {
	Name             string
	NumberOfTeams    int
	AvailableLeagues []string
}

func (l League) Settings() Settings {
	return Settings{
		Name:             l.Name,
		NumberOfTeams:    l.NumberOfTeams,
		AvailableLeagues: append([]string(nil), l.AvailableLeagues...),
	}
}

// Membership links a user to a league.
type Membership struct {
	LeagueID  string
	UserID    string
	Status    MembershipStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func CountMemberships(items []Membership, statuses ...MembershipStatus) int {
	count := 0
	for _, item := range items {
		if slices.Contains(statuses, item.Status) {
			count++
		}
	}
	return count
}

// DraftOrderEntry places a member at a 1-based position in the draft.
type DraftOrderEntry struct {
	LeagueID string
	UserID   string
	Position int
}

// ScoringSettings holds per-league point weights.
type ScoringSettings struct {
	LeagueID               string
	Kills                  float64
	Deaths                 float64
	Assists                float64
	CreepScore             float64
	WardsPlaced            float64
	FirstBlood             float64
	TripleKill             float64
	QuadraKill             float64
	PentaKill              float64
	TenKillsOrAssistsBonus float64
	UpdatedAt              time.Time
}

func DefaultScoringSettings(leagueID string) ScoringSettings {
	return ScoringSettings{
		LeagueID:               leagueID,
		Kills:                  3,
		Deaths:                 -1,
		Assists:                2,
		CreepScore:             0.2,
		WardsPlaced:            0.1,
		FirstBlood:             2,
		TripleKill:             2,
		QuadraKill:             5,
		PentaKill:              10,
		TenKillsOrAssistsBonus: 2,
	}
}
