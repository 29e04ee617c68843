package player

import (
	"fmt"
	"time"
)

type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// MaxNumber is the highest allowed jersey number.
const MaxNumber = 99

// Player is a registered futsal player. TeamID is empty for free agents.
// Country and City are the player's own geography, used for player-scoped
// leaderboards independently of the team's location.
type Player struct {
	ID        string
	Name      string
	Position  Position
	TeamID    string
	Number    *int
	Country   string
	City      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("unknown position %q", p.Position)
	}
	if p.Number != nil && (*p.Number < 0 || *p.Number > MaxNumber) {
		return fmt.Errorf("jersey number %d out of range 0-%d", *p.Number, MaxNumber)
	}

	return nil
}
