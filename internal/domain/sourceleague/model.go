package sourceleague

import "errors"

var ErrNotFound = errors.New("source league not found")

// League is a professional esports league whose players can be drafted.
type League struct {
	ID               string
	Name             string
	Slug             string
	Region           string
	ImageURL         string
	FantasyAvailable bool
}
