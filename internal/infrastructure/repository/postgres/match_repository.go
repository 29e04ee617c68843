package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/futsalhq/leaderboard/internal/domain/match"
	qb "github.com/futsalhq/leaderboard/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	events, err := encodeEvents(m.Events)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("matches").
		Columns("public_id", "home_team_public_id", "away_team_public_id", "started_at", "ended_at", "events", "home_score", "away_score", "winner_team_public_id", "updated_at").
		Values(m.ID, m.HomeTeamID, m.AwayTeamID, m.StartedAt, m.EndedAt, events, m.HomeScore, m.AwayScore, m.WinnerTeamID, m.StartedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return classify(fmt.Errorf("insert match: %w", err))
	}

	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("public_id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, classify(fmt.Errorf("get match by id: %w", err))
	}

	item, err := row.toDomain()
	if err != nil {
		return match.Match{}, false, err
	}

	return item, true, nil
}

// AppendEvent concatenates the event onto the JSONB log and bumps both
// counters in one UPDATE, so concurrent appends interleave without
// losing either the event or its score effect.
func (r *MatchRepository) AppendEvent(ctx context.Context, matchID string, ev match.Event, homeDelta, awayDelta int) (match.Match, bool, error) {
	eventDoc, err := encodeEvents([]match.Event{ev})
	if err != nil {
		return match.Match{}, false, err
	}

	query, args, err := qb.Update("matches").
		SetExpr("events", "events || ?::jsonb", eventDoc).
		SetExpr("home_score", "home_score + ?", homeDelta).
		SetExpr("away_score", "away_score + ?", awayDelta).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("public_id", matchID)).
		Suffix("RETURNING public_id").
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build append event query: %w", err)
	}

	var publicID string
	if err := r.db.GetContext(ctx, &publicID, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, classify(fmt.Errorf("append match event: %w", err))
	}

	return r.GetByID(ctx, matchID)
}

func (r *MatchRepository) End(ctx context.Context, matchID string, endedAt time.Time, winnerTeamID string) (match.Match, bool, error) {
	query, args, err := qb.Update("matches").
		Set("ended_at", endedAt).
		Set("winner_team_public_id", winnerTeamID).
		Set("updated_at", endedAt).
		Where(qb.Eq("public_id", matchID)).
		Suffix("RETURNING public_id").
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build end match query: %w", err)
	}

	var publicID string
	if err := r.db.GetContext(ctx, &publicID, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, classify(fmt.Errorf("end match: %w", err))
	}

	return r.GetByID(ctx, matchID)
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Expr(
			"(home_team_public_id = ANY(?) OR away_team_public_id = ANY(?))",
			pq.Array(teamIDs), pq.Array(teamIDs),
		)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by teams query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classify(fmt.Errorf("select matches: %w", err))
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}
