package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/futsalhq/leaderboard/internal/domain/player"
	qb "github.com/futsalhq/leaderboard/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertInto("players").
		Columns("public_id", "name", "position", "team_public_id", "number", "country", "city", "avatar_url", "created_at", "updated_at").
		Values(p.ID, p.Name, string(p.Position), nullString(p.TeamID), nullIntFromPtr(p.Number), p.Country, p.City, p.AvatarURL, p.CreatedAt, p.UpdatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return classify(fmt.Errorf("insert player: %w", err))
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("public_id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, classify(fmt.Errorf("get player by id: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) List(ctx context.Context, f player.Filter) ([]player.Player, error) {
	builder := qb.Select("*").From("players").OrderBy("name", "id")
	if f.TeamID != "" {
		builder = builder.Where(qb.Eq("team_public_id", f.TeamID))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classify(fmt.Errorf("select players: %w", err))
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) ListIDsByLocation(ctx context.Context, country, city string) ([]string, error) {
	builder := qb.Select("public_id").From("players").OrderBy("id")
	conditions := locationConditions(country, city)
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player ids query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, classify(fmt.Errorf("select player ids by location: %w", err))
	}

	return ids, nil
}
