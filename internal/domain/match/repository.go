package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases.
//
// AppendEvent must apply the event append and both score increments as a
// single atomic storage operation: a reader never observes an appended
// event without its score effect, and concurrent appends on the same
// match never lose an update.
type Repository interface {
	Create(ctx context.Context, m Match) error
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	AppendEvent(ctx context.Context, matchID string, ev Event, homeDelta, awayDelta int) (Match, bool, error)
	// End sets the end timestamp and winner. Winner may be empty for a draw.
	End(ctx context.Context, matchID string, endedAt time.Time, winnerTeamID string) (Match, bool, error)
	// ListAll returns every match in creation order for aggregation.
	ListAll(ctx context.Context) ([]Match, error)
	// ListByTeams returns matches where at least one side is in teamIDs,
	// in creation order.
	ListByTeams(ctx context.Context, teamIDs []string) ([]Match, error)
}
