package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/futsalhq/leaderboard/internal/domain/formation"
	qb "github.com/futsalhq/leaderboard/internal/platform/querybuilder"
)

type FormationRepository struct {
	db *sqlx.DB
}

func NewFormationRepository(db *sqlx.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) GetByTeam(ctx context.Context, teamID string) (formation.Formation, bool, error) {
	query, args, err := qb.Select("*").From("formations").
		Where(qb.Eq("team_public_id", teamID)).
		ToSQL()
	if err != nil {
		return formation.Formation{}, false, fmt.Errorf("build get formation query: %w", err)
	}

	var row formationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return formation.Formation{}, false, nil
		}
		return formation.Formation{}, false, classify(fmt.Errorf("get formation by team: %w", err))
	}

	item, err := row.toDomain()
	if err != nil {
		return formation.Formation{}, false, err
	}

	return item, true, nil
}

// Upsert relies on the unique team constraint: a conflicting save keeps
// the original identity and creation time and replaces the rest.
func (r *FormationRepository) Upsert(ctx context.Context, f formation.Formation) (formation.Formation, error) {
	positions, err := encodePlacements(f.Positions)
	if err != nil {
		return formation.Formation{}, err
	}

	query, args, err := qb.InsertInto("formations").
		Columns("public_id", "team_public_id", "name", "positions", "created_at", "updated_at").
		Values(f.ID, f.TeamID, f.Name, positions, f.CreatedAt, f.UpdatedAt).
		Suffix(`ON CONFLICT (team_public_id) DO UPDATE
			SET name = EXCLUDED.name,
			    positions = EXCLUDED.positions,
			    updated_at = EXCLUDED.updated_at`).
		ToSQL()
	if err != nil {
		return formation.Formation{}, fmt.Errorf("build upsert formation query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return formation.Formation{}, classify(fmt.Errorf("upsert formation: %w", err))
	}

	stored, exists, err := r.GetByTeam(ctx, f.TeamID)
	if err != nil {
		return formation.Formation{}, err
	}
	if !exists {
		return formation.Formation{}, fmt.Errorf("formation vanished after upsert: team=%s", f.TeamID)
	}

	return stored, nil
}
