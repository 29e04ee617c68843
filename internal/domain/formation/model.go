package formation

import (
	"fmt"
	"time"
)

// DefaultName is the name of the implicit formation a team has before
// anything is saved for it.
const DefaultName = "Default"

// Placement pins one player to a spot on the pitch, with X and Y as
// percentage coordinates in [0,100].
type Placement struct {
	PlayerID string
	X        float64
	Y        float64
}

// Formation is a team's saved pitch layout. At most one formation exists
// per team; saving again replaces it in place.
type Formation struct {
	ID        string
	TeamID    string
	Name      string
	Positions []Placement
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Default is the implicit empty formation for a team with nothing saved.
func Default(teamID string) Formation {
	return Formation{
		TeamID:    teamID,
		Name:      DefaultName,
		Positions: []Placement{},
	}
}

func (f Formation) Validate() error {
	if f.TeamID == "" {
		return fmt.Errorf("formation team id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("formation name is required")
	}
	for i, p := range f.Positions {
		if p.PlayerID == "" {
			return fmt.Errorf("position %d: player id is required", i)
		}
		if p.X < 0 || p.X > 100 {
			return fmt.Errorf("position %d: x coordinate %v out of range 0-100", i, p.X)
		}
		if p.Y < 0 || p.Y > 100 {
			return fmt.Errorf("position %d: y coordinate %v out of range 0-100", i, p.Y)
		}
	}

	return nil
}
