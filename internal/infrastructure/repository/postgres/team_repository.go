package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/futsalhq/leaderboard/internal/domain/team"
	qb "github.com/futsalhq/leaderboard/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertInto("teams").
		Columns("public_id", "name", "country", "city", "coach", "logo_url", "created_at", "updated_at").
		Values(t.ID, t.Name, t.Country, t.City, t.Coach, t.LogoURL, t.CreatedAt, t.UpdatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return team.ErrDuplicate
		}
		return classify(fmt.Errorf("insert team: %w", err))
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("public_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, classify(fmt.Errorf("get team by id: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) List(ctx context.Context, f team.Filter) ([]team.Team, error) {
	builder := qb.Select("*").From("teams").OrderBy("name", "id")
	conditions := locationConditions(f.Country, f.City)
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classify(fmt.Errorf("select teams: %w", err))
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) FindByNameAndLocation(ctx context.Context, name, country, city string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("name", name),
			qb.Eq("country", country),
			qb.Eq("city", city),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build find team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, classify(fmt.Errorf("find team by name and location: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) ListIDsByLocation(ctx context.Context, country, city string) ([]string, error) {
	builder := qb.Select("public_id").From("teams").OrderBy("id")
	conditions := locationConditions(country, city)
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team ids query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, classify(fmt.Errorf("select team ids by location: %w", err))
	}

	return ids, nil
}

func locationConditions(country, city string) []qb.Condition {
	var conditions []qb.Condition
	if country != "" {
		conditions = append(conditions, qb.Eq("country", country))
	}
	if city != "" {
		conditions = append(conditions, qb.Eq("city", city))
	}
	return conditions
}
