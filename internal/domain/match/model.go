package match

import (
	"fmt"
	"time"
)

type EventType string

const (
	EventGoal         EventType = "goal"
	EventAssist       EventType = "assist"
	EventYellow       EventType = "yellow"
	EventRed          EventType = "red"
	EventOwnGoal      EventType = "own_goal"
	EventSubstitution EventType = "substitution"
)

var AllEventTypes = map[EventType]struct{}{
	EventGoal:         {},
	EventAssist:       {},
	EventYellow:       {},
	EventRed:          {},
	EventOwnGoal:      {},
	EventSubstitution: {},
}

// MaxMinute is the last minute mark of a futsal match (2x20 plus stoppage).
const MaxMinute = 60

// Event is a single recorded in-match occurrence. Events live embedded in
// a match's ordered log; insertion order is the chronological order as
// recorded, not necessarily sorted by minute.
type Event struct {
	Timestamp         time.Time
	Type              EventType
	TeamID            string
	PlayerID          string
	SecondaryPlayerID string
	Minute            *int
	Notes             string
}

func (e Event) Validate() error {
	if _, ok := AllEventTypes[e.Type]; !ok {
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.Minute != nil && (*e.Minute < 0 || *e.Minute > MaxMinute) {
		return fmt.Errorf("minute %d out of range 0-%d", *e.Minute, MaxMinute)
	}

	return nil
}

// Match is one futsal fixture between two teams. Score counters always
// equal the effective goal credit of the event log; WinnerTeamID stays
// empty until the match ends and remains empty after a draw.
type Match struct {
	ID           string
	HomeTeamID   string
	AwayTeamID   string
	StartedAt    time.Time
	EndedAt      *time.Time
	Events       []Event
	HomeScore    int
	AwayScore    int
	WinnerTeamID string
}

func (m Match) Ended() bool {
	return m.EndedAt != nil
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeamID == "" {
		return fmt.Errorf("home team id is required")
	}
	if m.AwayTeamID == "" {
		return fmt.Errorf("away team id is required")
	}

	return nil
}
