package memory

import (
	"context"
	"sync"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]match.Match
	orders []string
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		items: make(map[string]match.Match),
	}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[m.ID] = cloneMatch(m)
	r.orders = append(r.orders, m.ID)

	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

// AppendEvent holds the write lock for the full read-modify-write so the
// event append and both score increments land together.
func (r *MatchRepository) AppendEvent(_ context.Context, matchID string, ev match.Event, homeDelta, awayDelta int) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	m = cloneMatch(m)
	m.Events = append(m.Events, ev)
	m.HomeScore += homeDelta
	m.AwayScore += awayDelta
	r.items[matchID] = m

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) End(_ context.Context, matchID string, endedAt time.Time, winnerTeamID string) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	m = cloneMatch(m)
	m.EndedAt = &endedAt
	m.WinnerTeamID = winnerTeamID
	r.items[matchID] = m

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, cloneMatch(r.items[id]))
	}

	return out, nil
}

func (r *MatchRepository) ListByTeams(_ context.Context, teamIDs []string) ([]match.Match, error) {
	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.orders))
	for _, id := range r.orders {
		m := r.items[id]
		if _, home := wanted[m.HomeTeamID]; !home {
			if _, away := wanted[m.AwayTeamID]; !away {
				continue
			}
		}
		out = append(out, cloneMatch(m))
	}

	return out, nil
}

func cloneMatch(m match.Match) match.Match {
	if m.EndedAt != nil {
		t := *m.EndedAt
		m.EndedAt = &t
	}
	events := make([]match.Event, len(m.Events))
	copy(events, m.Events)
	for i := range events {
		if events[i].Minute != nil {
			n := *events[i].Minute
			events[i].Minute = &n
		}
	}
	m.Events = events
	return m
}
