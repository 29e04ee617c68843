package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"

	"github.com/futsalhq/leaderboard/internal/usecase"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// classify marks connection-class failures so callers can tell a broken
// database apart from a bad query. Class 08 covers connection exceptions.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, driver.ErrBadConn) {
		return crerr.Mark(err, usecase.ErrDependencyUnavailable)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return crerr.Mark(err, usecase.ErrDependencyUnavailable)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && strings.HasPrefix(string(pqErr.Code), "08") {
		return crerr.Mark(err, usecase.ErrDependencyUnavailable)
	}

	return err
}
