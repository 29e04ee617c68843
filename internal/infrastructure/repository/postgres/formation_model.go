package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/futsalhq/leaderboard/internal/domain/formation"
)

type formationTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	TeamID    string    `db:"team_public_id"`
	Name      string    `db:"name"`
	Positions []byte    `db:"positions"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type placementDocument struct {
	PlayerID string  `json:"player_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

func encodePlacements(positions []formation.Placement) ([]byte, error) {
	docs := make([]placementDocument, 0, len(positions))
	for _, p := range positions {
		docs = append(docs, placementDocument{PlayerID: p.PlayerID, X: p.X, Y: p.Y})
	}

	raw, err := sonic.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("encode formation positions: %w", err)
	}

	return raw, nil
}

func (m formationTableModel) toDomain() (formation.Formation, error) {
	positions := []formation.Placement{}
	if len(m.Positions) > 0 {
		var docs []placementDocument
		if err := sonic.Unmarshal(m.Positions, &docs); err != nil {
			return formation.Formation{}, fmt.Errorf("decode formation positions: %w", err)
		}
		for _, doc := range docs {
			positions = append(positions, formation.Placement{PlayerID: doc.PlayerID, X: doc.X, Y: doc.Y})
		}
	}

	return formation.Formation{
		ID:        m.PublicID,
		TeamID:    m.TeamID,
		Name:      m.Name,
		Positions: positions,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
