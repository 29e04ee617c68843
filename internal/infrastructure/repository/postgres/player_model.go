package postgres

import (
	"database/sql"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/player"
)

type playerTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	Position  string         `db:"position"`
	TeamID    sql.NullString `db:"team_public_id"`
	Number    sql.NullInt64  `db:"number"`
	Country   string         `db:"country"`
	City      string         `db:"city"`
	AvatarURL string         `db:"avatar_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	out := player.Player{
		ID:        m.PublicID,
		Name:      m.Name,
		Position:  player.Position(m.Position),
		Country:   m.Country,
		City:      m.City,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.TeamID.Valid {
		out.TeamID = m.TeamID.String
	}
	if m.Number.Valid {
		n := int(m.Number.Int64)
		out.Number = &n
	}
	return out
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullIntFromPtr(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
