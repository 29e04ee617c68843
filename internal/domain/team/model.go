package team

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicate is returned by repositories when a team with the same
// (name, country, city) tuple already exists.
var ErrDuplicate = errors.New("team already exists")

// Team is a futsal club registered in the system.
type Team struct {
	ID        string
	Name      string
	Country   string
	City      string
	Coach     string
	LogoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Country == "" {
		return fmt.Errorf("team country is required")
	}
	if t.City == "" {
		return fmt.Errorf("team city is required")
	}

	return nil
}
