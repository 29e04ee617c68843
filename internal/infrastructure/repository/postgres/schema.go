package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements bootstrap the tables on startup. Statements are
// idempotent so repeated boots against the same database are safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id BIGSERIAL PRIMARY KEY,
		public_id CHAR(32) NOT NULL UNIQUE,
		name TEXT NOT NULL,
		country TEXT NOT NULL,
		city TEXT NOT NULL,
		coach TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS teams_name_location_idx
		ON teams (name, country, city)`,
	`CREATE INDEX IF NOT EXISTS teams_location_idx
		ON teams (country, city)`,

	`CREATE TABLE IF NOT EXISTS players (
		id BIGSERIAL PRIMARY KEY,
		public_id CHAR(32) NOT NULL UNIQUE,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		team_public_id CHAR(32),
		number INT,
		country TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		avatar_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS players_team_idx
		ON players (team_public_id)`,
	`CREATE INDEX IF NOT EXISTS players_location_idx
		ON players (country, city)`,

	`CREATE TABLE IF NOT EXISTS matches (
		id BIGSERIAL PRIMARY KEY,
		public_id CHAR(32) NOT NULL UNIQUE,
		home_team_public_id CHAR(32) NOT NULL,
		away_team_public_id CHAR(32) NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		ended_at TIMESTAMPTZ,
		events JSONB NOT NULL DEFAULT '[]'::jsonb,
		home_score INT NOT NULL DEFAULT 0,
		away_score INT NOT NULL DEFAULT 0,
		winner_team_public_id CHAR(32) NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS matches_home_team_idx
		ON matches (home_team_public_id)`,
	`CREATE INDEX IF NOT EXISTS matches_away_team_idx
		ON matches (away_team_public_id)`,

	`CREATE TABLE IF NOT EXISTS formations (
		id BIGSERIAL PRIMARY KEY,
		public_id CHAR(32) NOT NULL UNIQUE,
		team_public_id CHAR(32) NOT NULL UNIQUE,
		name TEXT NOT NULL,
		positions JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}

func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return classify(fmt.Errorf("apply schema statement: %w", err))
		}
	}

	return nil
}
