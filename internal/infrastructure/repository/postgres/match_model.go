package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/futsalhq/leaderboard/internal/domain/match"
)

type matchTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	HomeTeamID   string     `db:"home_team_public_id"`
	AwayTeamID   string     `db:"away_team_public_id"`
	StartedAt    time.Time  `db:"started_at"`
	EndedAt      *time.Time `db:"ended_at"`
	Events       []byte     `db:"events"`
	HomeScore    int        `db:"home_score"`
	AwayScore    int        `db:"away_score"`
	WinnerTeamID string     `db:"winner_team_public_id"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// eventDocument is the stored shape of one event inside the match's
// JSONB log.
type eventDocument struct {
	Timestamp         time.Time `json:"ts"`
	Type              string    `json:"type"`
	TeamID            string    `json:"team_id,omitempty"`
	PlayerID          string    `json:"player_id,omitempty"`
	SecondaryPlayerID string    `json:"secondary_player_id,omitempty"`
	Minute            *int      `json:"minute,omitempty"`
	Notes             string    `json:"notes,omitempty"`
}

func encodeEvents(events []match.Event) ([]byte, error) {
	docs := make([]eventDocument, 0, len(events))
	for _, ev := range events {
		docs = append(docs, eventDocument{
			Timestamp:         ev.Timestamp,
			Type:              string(ev.Type),
			TeamID:            ev.TeamID,
			PlayerID:          ev.PlayerID,
			SecondaryPlayerID: ev.SecondaryPlayerID,
			Minute:            ev.Minute,
			Notes:             ev.Notes,
		})
	}

	raw, err := sonic.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("encode match events: %w", err)
	}

	return raw, nil
}

func decodeEvents(raw []byte) ([]match.Event, error) {
	if len(raw) == 0 {
		return []match.Event{}, nil
	}

	var docs []eventDocument
	if err := sonic.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode match events: %w", err)
	}

	out := make([]match.Event, 0, len(docs))
	for _, doc := range docs {
		out = append(out, match.Event{
			Timestamp:         doc.Timestamp,
			Type:              match.EventType(doc.Type),
			TeamID:            doc.TeamID,
			PlayerID:          doc.PlayerID,
			SecondaryPlayerID: doc.SecondaryPlayerID,
			Minute:            doc.Minute,
			Notes:             doc.Notes,
		})
	}

	return out, nil
}

func (m matchTableModel) toDomain() (match.Match, error) {
	events, err := decodeEvents(m.Events)
	if err != nil {
		return match.Match{}, err
	}

	return match.Match{
		ID:           m.PublicID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		StartedAt:    m.StartedAt,
		EndedAt:      m.EndedAt,
		Events:       events,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		WinnerTeamID: m.WinnerTeamID,
	}, nil
}
