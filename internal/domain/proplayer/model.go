package proplayer

import (
	"errors"

	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
)

var ErrNotFound = errors.New("professional player not found")

// Player is a professional player as published by the esports data feed.
type Player struct {
	ID           string
	SummonerName string
	Role         fantasyteam.Role
	ProTeamID    string
	ProTeamName  string
	ImageURL     string
}
