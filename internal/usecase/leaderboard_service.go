package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/futsalhq/leaderboard/internal/domain/leaderboard"
	"github.com/futsalhq/leaderboard/internal/domain/match"
	"github.com/futsalhq/leaderboard/internal/domain/player"
	"github.com/futsalhq/leaderboard/internal/domain/team"
	basecache "github.com/futsalhq/leaderboard/internal/platform/cache"
)

const defaultEnrichmentWorkers = 4

type TeamLeaderboardQuery struct {
	Scope   leaderboard.Scope
	Country string
	City    string
	Stat    leaderboard.TeamStat
	Limit   int
}

type PlayerLeaderboardQuery struct {
	Scope   leaderboard.Scope
	Country string
	City    string
	Stat    leaderboard.PlayerStat
	Limit   int
}

// TeamEntry is one ranked leaderboard row with the team attached.
type TeamEntry struct {
	Team   team.Team
	Goals  int
	Wins   int
	Draws  int
	Points int
}

// PlayerEntry is one ranked leaderboard row with the player attached.
// TeamName is the player's current team, looked up at read time; a free
// agent keeps it empty.
type PlayerEntry struct {
	Player   player.Player
	TeamName string
	Count    int
}

type LeaderboardService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	cache      *basecache.Store
	workers    int
}

// NewLeaderboardService builds the read side over the match corpus.
// cache may be nil to disable result caching.
func NewLeaderboardService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	cache *basecache.Store,
	workers int,
) *LeaderboardService {
	if workers <= 0 {
		workers = defaultEnrichmentWorkers
	}
	return &LeaderboardService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		cache:      cache,
		workers:    workers,
	}
}

func (s *LeaderboardService) TeamLeaderboard(ctx context.Context, q TeamLeaderboardQuery) ([]TeamEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.TeamLeaderboard")
	defer span.End()

	q.Country = strings.TrimSpace(q.Country)
	q.City = strings.TrimSpace(q.City)
	if err := validateScope(q.Scope, q.Country, q.City); err != nil {
		return nil, err
	}
	if _, ok := leaderboard.AllTeamStats[q.Stat]; !ok {
		return nil, fmt.Errorf("%w: unknown team statistic %q", ErrInvalidInput, q.Stat)
	}
	q.Limit = leaderboard.ClampLimit(q.Limit)

	if s.cache == nil {
		return s.computeTeamLeaderboard(ctx, q)
	}

	key := strings.Join([]string{
		"lb:teams", string(q.Scope), q.Country, q.City, string(q.Stat), strconv.Itoa(q.Limit),
	}, ":")
	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		entries, err := s.computeTeamLeaderboard(ctx, q)
		if err != nil {
			return nil, err
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	entries, _ := v.([]TeamEntry)
	return append([]TeamEntry(nil), entries...), nil
}

func (s *LeaderboardService) computeTeamLeaderboard(ctx context.Context, q TeamLeaderboardQuery) ([]TeamEntry, error) {
	matches, err := s.scopedMatches(ctx, q.Scope, q.Country, q.City)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		return []TeamEntry{}, nil
	}

	// Opponents outside the scope stay on the board: a scoped team's
	// results only make sense with both sides counted.
	rows := leaderboard.AccumulateTeams(matches)
	leaderboard.SortTeamRows(rows, q.Stat)
	rows = leaderboard.TruncateTeamRows(rows, q.Limit)

	// A row whose team cannot be resolved is dropped, not surfaced as a
	// request failure.
	entries := make([]*TeamEntry, len(rows))
	err = s.runEnrichment(len(rows), func(i int) {
		item, exists, lookupErr := s.teamRepo.GetByID(ctx, rows[i].TeamID)
		if lookupErr != nil || !exists {
			return
		}
		entries[i] = &TeamEntry{
			Team:   item,
			Goals:  rows[i].Goals,
			Wins:   rows[i].Wins,
			Draws:  rows[i].Draws,
			Points: rows[i].Points,
		}
	})
	if err != nil {
		return nil, err
	}

	return compactTeamEntries(entries), nil
}

func (s *LeaderboardService) PlayerLeaderboard(ctx context.Context, q PlayerLeaderboardQuery) ([]PlayerEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.PlayerLeaderboard")
	defer span.End()

	q.Country = strings.TrimSpace(q.Country)
	q.City = strings.TrimSpace(q.City)
	if err := validateScope(q.Scope, q.Country, q.City); err != nil {
		return nil, err
	}
	if _, ok := leaderboard.AllPlayerStats[q.Stat]; !ok {
		return nil, fmt.Errorf("%w: unknown player statistic %q", ErrInvalidInput, q.Stat)
	}
	q.Limit = leaderboard.ClampLimit(q.Limit)

	if s.cache == nil {
		return s.computePlayerLeaderboard(ctx, q)
	}

	key := strings.Join([]string{
		"lb:players", string(q.Scope), q.Country, q.City, string(q.Stat), strconv.Itoa(q.Limit),
	}, ":")
	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		entries, err := s.computePlayerLeaderboard(ctx, q)
		if err != nil {
			return nil, err
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	entries, _ := v.([]PlayerEntry)
	return append([]PlayerEntry(nil), entries...), nil
}

func (s *LeaderboardService) computePlayerLeaderboard(ctx context.Context, q PlayerLeaderboardQuery) ([]PlayerEntry, error) {
	var allowed map[string]struct{}
	if q.Scope != leaderboard.ScopeGlobal {
		country, city := playerScopeLocation(q.Scope, q.Country, q.City)
		playerIDs, err := s.playerRepo.ListIDsByLocation(ctx, country, city)
		if err != nil {
			return nil, fmt.Errorf("list players by location: %w", err)
		}
		if len(playerIDs) == 0 {
			return []PlayerEntry{}, nil
		}
		allowed = make(map[string]struct{}, len(playerIDs))
		for _, playerID := range playerIDs {
			allowed[playerID] = struct{}{}
		}
	}

	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	rows := leaderboard.CountPlayerStat(matches, q.Stat)
	rows = leaderboard.FilterPlayerRows(rows, allowed)
	leaderboard.SortPlayerRows(rows)
	rows = leaderboard.TruncatePlayerRows(rows, q.Limit)

	entries := make([]*PlayerEntry, len(rows))
	err = s.runEnrichment(len(rows), func(i int) {
		item, exists, lookupErr := s.playerRepo.GetByID(ctx, rows[i].PlayerID)
		if lookupErr != nil || !exists {
			return
		}
		entry := &PlayerEntry{Player: item, Count: rows[i].Count}
		if item.TeamID != "" {
			current, ok, teamErr := s.teamRepo.GetByID(ctx, item.TeamID)
			if teamErr == nil && ok {
				entry.TeamName = current.Name
			}
		}
		entries[i] = entry
	})
	if err != nil {
		return nil, err
	}

	return compactPlayerEntries(entries), nil
}

// scopedMatches resolves the candidate match set for a scope. A nil
// slice with nil error means the scope resolved to no teams at all.
func (s *LeaderboardService) scopedMatches(ctx context.Context, scope leaderboard.Scope, country, city string) ([]match.Match, error) {
	if scope == leaderboard.ScopeGlobal {
		matches, err := s.matchRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		if matches == nil {
			matches = []match.Match{}
		}
		return matches, nil
	}

	// City scope keeps an accompanying country filter so same-named
	// cities in different countries stay apart.
	scopeCountry, scopeCity := country, ""
	if scope == leaderboard.ScopeCity {
		scopeCity = city
	}
	teamIDs, err := s.teamRepo.ListIDsByLocation(ctx, scopeCountry, scopeCity)
	if err != nil {
		return nil, fmt.Errorf("list teams by location: %w", err)
	}
	if len(teamIDs) == 0 {
		return nil, nil
	}

	matches, err := s.matchRepo.ListByTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list matches by teams: %w", err)
	}
	if matches == nil {
		matches = []match.Match{}
	}

	return matches, nil
}

// runEnrichment fans fn(i) for i in [0,n) across the worker pool and
// waits for all of them.
func (s *LeaderboardService) runEnrichment(n int, fn func(i int)) error {
	if n == 0 {
		return nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			fn(i)
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit enrichment task: %w", err)
		}
	}
	workers.Wait()

	return nil
}

func validateScope(scope leaderboard.Scope, country, city string) error {
	if _, ok := leaderboard.AllScopes[scope]; !ok {
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, scope)
	}
	if scope == leaderboard.ScopeCountry && country == "" {
		return fmt.Errorf("%w: country is required for country scope", ErrInvalidInput)
	}
	if scope == leaderboard.ScopeCity && city == "" {
		return fmt.Errorf("%w: city is required for city scope", ErrInvalidInput)
	}

	return nil
}

// playerScopeLocation picks the single location field a player scope
// filters on. Player city scope matches by city name alone.
func playerScopeLocation(scope leaderboard.Scope, country, city string) (string, string) {
	switch scope {
	case leaderboard.ScopeCountry:
		return country, ""
	case leaderboard.ScopeCity:
		return "", city
	default:
		return "", ""
	}
}

// Ranked rows whose entity no longer resolves are dropped rather than
// surfaced as holes.
func compactTeamEntries(entries []*TeamEntry) []TeamEntry {
	out := make([]TeamEntry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

func compactPlayerEntries(entries []*PlayerEntry) []PlayerEntry {
	out := make([]PlayerEntry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}
