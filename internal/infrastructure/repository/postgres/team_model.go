package postgres

import (
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/team"
)

type teamTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	Country   string    `db:"country"`
	City      string    `db:"city"`
	Coach     string    `db:"coach"`
	LogoURL   string    `db:"logo_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.PublicID,
		Name:      m.Name,
		Country:   m.Country,
		City:      m.City,
		Coach:     m.Coach,
		LogoURL:   m.LogoURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
