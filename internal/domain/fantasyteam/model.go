package fantasyteam

import (
	"errors"
	"fmt"
	"time"
)

// ErrDraft is returned for every roster or drafting rule violation.
var ErrDraft = errors.New("fantasy draft violation")

// Role is a lane position on a League of Legends roster.
type Role string

const (
	RoleTop     Role = "TOP"
	RoleJungle  Role = "JUNGLE"
	RoleMid     Role = "MID"
	RoleADC     Role = "ADC"
	RoleSupport Role = "SUPPORT"
)

// AllRoles lists roster slots in display order.
var AllRoles = []Role{RoleTop, RoleJungle, RoleMid, RoleADC, RoleSupport}

func ParseRole(v string) (Role, error) {
	role := Role(v)
	if !role.Valid() {
		return "", fmt.Errorf("invalid role: %s", v)
	}
	return role, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleTop, RoleJungle, RoleMid, RoleADC, RoleSupport:
		return true
	default:
		return false
	}
}

// Team is a weekly roster of one league member. Slots holds at most one player per role.
type Team struct {
	LeagueID  string
	UserID    string
	Week      int
	Slots     map[Role]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTeam(leagueID, userID string, week int) Team {
	return Team{
		LeagueID: leagueID,
		UserID:   userID,
		Week:     week,
		Slots:    make(map[Role]string, len(AllRoles)),
	}
}

// PlayerFor returns the player id in the role slot.
func (t Team) PlayerFor(role Role) (string, bool) {
	id, ok := t.Slots[role]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func (t *Team) Assign(role Role, playerID string) {
	if t.Slots == nil {
		t.Slots = make(map[Role]string, len(AllRoles))
	}
	t.Slots[role] = playerID
}

func (t *Team) Clear(role Role) {
	delete(t.Slots, role)
}

func (t Team) Contains(playerID string) bool {
	for _, id := range t.Slots {
		if id == playerID {
			return true
		}
	}
	return false
}

// IsComplete reports whether every role slot holds a player.
func (t Team) IsComplete() bool {
	for _, role := range AllRoles {
		if _, ok := t.PlayerFor(role); !ok {
			return false
		}
	}
	return true
}

func (t Team) Clone() Team {
	out := t
	out.Slots = make(map[Role]string, len(t.Slots))
	for role, id := range t.Slots {
		out.Slots[role] = id
	}
	return out
}

// CarryForward copies the roster into a later week.
func (t Team) CarryForward(week int, now time.Time) Team {
	out := t.Clone()
	out.Week = week
	out.CreatedAt = now
	out.UpdatedAt = now
	return out
}
