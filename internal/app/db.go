package app

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/futsalhq/leaderboard/internal/config"
)

const (
	dbMaxOpenConns    = 16
	dbMaxIdleConns    = 8
	dbConnMaxLifetime = 30 * time.Minute

	maxTracedQueryLength = 512
)

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.ConnectContext(ctx, "postgres", dsn, opts...)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	return db, nil
}

// normalizeDBURL forces disable_prepared_binary_result on URL-style DSNs
// unless the caller already set it. The events JSONB column round-trips
// through text results only.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// dbNameFromURL extracts the database name from a postgres:// URL or a
// key=value DSN, for the span attributes. Empty when undeterminable.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		value, found := strings.CutPrefix(token, "dbname=")
		if !found {
			continue
		}
		if name := strings.Trim(strings.TrimSpace(value), `"'`); name != "" {
			return name
		}
	}

	return ""
}

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
