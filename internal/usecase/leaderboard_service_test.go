package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/leaderboard"
	"github.com/futsalhq/leaderboard/internal/domain/match"
	"github.com/futsalhq/leaderboard/internal/domain/player"
	"github.com/futsalhq/leaderboard/internal/infrastructure/repository/memory"
	basecache "github.com/futsalhq/leaderboard/internal/platform/cache"
	idgen "github.com/futsalhq/leaderboard/internal/platform/id"
)

type leaderboardFixture struct {
	svc      *LeaderboardService
	matchSvc *MatchService

	jakarta string
	bandung string
	kuala   string

	striker string
	winger  string
	keeper  string
}

// newLeaderboardFixture registers three teams, three players and two
// finished matches:
//
//	Jakarta 2-1 Bandung (striker 2 goals, one assisted by winger)
//	Kuala   0-0 Jakarta
func newLeaderboardFixture(t *testing.T, cache *basecache.Store) leaderboardFixture {
	t.Helper()

	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()
	matchRepo := memory.NewMatchRepository()

	teamSvc := NewTeamService(teamRepo, idgen.NewRandomGenerator())
	playerSvc := NewPlayerService(playerRepo, idgen.NewRandomGenerator())
	matchSvc := NewMatchService(matchRepo, teamRepo, idgen.NewRandomGenerator())

	fx := leaderboardFixture{
		svc:      NewLeaderboardService(teamRepo, playerRepo, matchRepo, cache, 2),
		matchSvc: matchSvc,
	}

	mustTeam := func(name, country, city string) string {
		created, err := teamSvc.CreateTeam(t.Context(), CreateTeamInput{Name: name, Country: country, City: city})
		if err != nil {
			t.Fatalf("seed team %s: %v", name, err)
		}
		return created.ID
	}
	fx.jakarta = mustTeam("Jakarta FC", "Indonesia", "Jakarta")
	fx.bandung = mustTeam("Bandung FC", "Indonesia", "Bandung")
	fx.kuala = mustTeam("Kuala FC", "Malaysia", "Kuala Lumpur")

	mustPlayer := func(name, country, city, teamID string) string {
		created, err := playerSvc.CreatePlayer(t.Context(), CreatePlayerInput{
			Name:     name,
			Position: player.PositionForward,
			TeamID:   teamID,
			Country:  country,
			City:     city,
		})
		if err != nil {
			t.Fatalf("seed player %s: %v", name, err)
		}
		return created.ID
	}
	fx.striker = mustPlayer("Striker", "Indonesia", "Jakarta", fx.jakarta)
	fx.winger = mustPlayer("Winger", "Indonesia", "Bandung", fx.bandung)
	fx.keeper = mustPlayer("Keeper", "Malaysia", "Kuala Lumpur", fx.kuala)

	m1, err := matchSvc.StartMatch(t.Context(), StartMatchInput{HomeTeamID: fx.jakarta, AwayTeamID: fx.bandung})
	if err != nil {
		t.Fatalf("start match 1: %v", err)
	}
	events := []AddEventInput{
		{Type: match.EventGoal, TeamID: fx.jakarta, PlayerID: fx.striker, SecondaryPlayerID: fx.winger},
		{Type: match.EventGoal, TeamID: fx.jakarta, PlayerID: fx.striker},
		{Type: match.EventGoal, TeamID: fx.bandung, PlayerID: fx.winger},
		{Type: match.EventYellow, TeamID: fx.bandung, PlayerID: fx.winger},
	}
	for _, ev := range events {
		if _, err := matchSvc.AddEvent(t.Context(), m1.ID, ev); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}
	if _, err := matchSvc.EndMatch(t.Context(), m1.ID); err != nil {
		t.Fatalf("end match 1: %v", err)
	}

	m2, err := matchSvc.StartMatch(t.Context(), StartMatchInput{HomeTeamID: fx.kuala, AwayTeamID: fx.jakarta})
	if err != nil {
		t.Fatalf("start match 2: %v", err)
	}
	if _, err := matchSvc.EndMatch(t.Context(), m2.ID); err != nil {
		t.Fatalf("end match 2: %v", err)
	}

	return fx
}

func TestLeaderboardService_TeamLeaderboard_Global(t *testing.T) {
	fx := newLeaderboardFixture(t, nil)

	entries, err := fx.svc.TeamLeaderboard(t.Context(), TeamLeaderboardQuery{
		Scope: leaderboard.ScopeGlobal,
		Stat:  leaderboard.TeamStatPoints,
	})
	if err != nil {
		t.Fatalf("team leaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Jakarta: win + draw = 4 points. Kuala and Bandung follow.
	if entries[0].Team.ID != fx.jakarta || entries[0].Points != 4 {
		t.Fatalf("top entry = %+v, want jakarta with 4 points", entries[0])
	}
	if entries[0].Goals != 2 || entries[0].Wins != 1 || entries[0].Draws != 1 {
		t.Fatalf("jakarta stats = %+v", entries[0])
	}
}

func TestLeaderboardService_TeamLeaderboard_CountryScopeKeepsOpponents(t *testing.T) {
	fx := newLeaderboardFixture(t, nil)

	entries, err := fx.svc.TeamLeaderboard(t.Context(), TeamLeaderboardQuery{
		Scope:   leaderboard.ScopeCountry,
		Country: "Malaysia",
		Stat:    leaderboard.TeamStatPoints,
	})
	if err != nil {
		t.Fatalf("team leaderboard failed: %v", err)
	}

	// Kuala's only match drags Jakarta onto the board; Bandung has no
	// match against a Malaysian side and stays off it.
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	for _, e := range entries {
		if e.Team.ID == fx.bandung {
			t.Fatalf("bandung should not appear: %+v", entries)
		}
	}
}

func TestLeaderboardService_TeamLeaderboard_EmptyScope(t *testing.T) {
	fx := newLeaderboardFixture(t, nil)

	entries, err := fx.svc.TeamLeaderboard(t.Context(), TeamLeaderboardQuery{
		Scope:   leaderboard.ScopeCountry,
		Country: "Brazil",
		Stat:    leaderboard.TeamStatGoals,
	})
	if err != nil {
		t.Fatalf("team leaderboard failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty board, got %+v", entries)
	}
}

func TestLeaderboardService_TeamLeaderboard_Validation(t *testing.T) {
	fx := newLeaderboardFixture(t, nil)

	cases := []TeamLeaderboardQuery{
		{Scope: "planet", Stat: leaderboard.TeamStatGoals},
		{Scope: leaderboard.ScopeGlobal, Stat: "weight"},
		{Scope: leaderboard.ScopeCountry, Stat: leaderboard.TeamStatGoals},
		{Scope: leaderboard.ScopeCity, Stat: leaderboard.TeamStatGoals},
	}
	for _, q := range cases {
		if _, err := fx.svc.TeamLeaderboard(t.Context(), q); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("query %+v: expected ErrInvalidInput, got %v", q, err)
		}
	}
}

func TestLeaderboardService_PlayerLeaderboard_GoalsAndAssists(t *testing.T) {
	fx := newLeaderboardFixture(t, nil)

	goals, err := fx.svc.PlayerLeaderboard(t.Context(), PlayerLeaderboardQuery{
		Scope: leaderboard.ScopeGlobal,
		Stat:  leaderboard.PlayerStatGoals,
	})
	if err != nil {
		t.Fatalf("player leaderboard failed: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 scorers, got %+v", goals)
	}
	if goals[0].Player.ID != fx.striker || goals[0].Count != 2 {
		t.Fatalf("top scorer = %+v, want striker with 2", goals[0])
	}

	// The assisted goal credits the winger once.
	assists, err := fx.svc.PlayerLeaderboard(t.Context(), PlayerLeaderboardQuery{
		Scope: leaderboard.ScopeGlobal,
		Stat:  leaderboard.PlayerStatAssists,
	})
	if err != nil {
		t.Fatalf("player leaderboard failed: %v", err)
	}
	if len(assists) != 1 || assists[0].Player.ID != fx.winger || assists[0].Count != 1 {
		t.Fatalf("assists = %+v, want winger with 1", assists)
	}
}

func TestLeaderboardService_PlayerLeaderboard_CityScope(t *testing.T) {
	fx := newLeaderboardFixture(t, nil)

	entries, err := fx.svc.PlayerLeaderboard(t.Context(), PlayerLeaderboardQuery{
		Scope: leaderboard.ScopeCity,
		City:  "Bandung",
		Stat:  leaderboard.PlayerStatGoals,
	})
	if err != nil {
		t.Fatalf("player leaderboard failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Player.ID != fx.winger {
		t.Fatalf("expected only winger, got %+v", entries)
	}
}

func TestLeaderboardService_PlayerLeaderboard_EmptyScope(t *testing.T) {
	fx := newLeaderboardFixture(t, nil)

	entries, err := fx.svc.PlayerLeaderboard(t.Context(), PlayerLeaderboardQuery{
		Scope:   leaderboard.ScopeCountry,
		Country: "Brazil",
		Stat:    leaderboard.PlayerStatGoals,
	})
	if err != nil {
		t.Fatalf("player leaderboard failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty board, got %+v", entries)
	}
}

func TestLeaderboardService_CachedResultServedUntilTTL(t *testing.T) {
	cache := basecache.NewStore(time.Minute)
	fx := newLeaderboardFixture(t, cache)

	q := TeamLeaderboardQuery{Scope: leaderboard.ScopeGlobal, Stat: leaderboard.TeamStatGoals}
	first, err := fx.svc.TeamLeaderboard(t.Context(), q)
	if err != nil {
		t.Fatalf("first query failed: %v", err)
	}

	// New results land in storage but the cached board stays as served.
	m, err := fx.matchSvc.StartMatch(t.Context(), StartMatchInput{HomeTeamID: fx.jakarta, AwayTeamID: fx.bandung})
	if err != nil {
		t.Fatalf("start match: %v", err)
	}
	if _, err := fx.matchSvc.AddEvent(t.Context(), m.ID, AddEventInput{Type: match.EventGoal, TeamID: fx.bandung}); err != nil {
		t.Fatalf("add goal: %v", err)
	}

	second, err := fx.svc.TeamLeaderboard(t.Context(), q)
	if err != nil {
		t.Fatalf("second query failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("cached board changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Goals != second[i].Goals {
			t.Fatalf("cached board changed: %+v vs %+v", first[i], second[i])
		}
	}
}

func TestLeaderboardService_LimitTruncates(t *testing.T) {
	fx := newLeaderboardFixture(t, nil)

	entries, err := fx.svc.TeamLeaderboard(t.Context(), TeamLeaderboardQuery{
		Scope: leaderboard.ScopeGlobal,
		Stat:  leaderboard.TeamStatPoints,
		Limit: 1,
	})
	if err != nil {
		t.Fatalf("team leaderboard failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestLeaderboardService_PlayerLeaderboard_CarriesTeamName(t *testing.T) {
	fx := newLeaderboardFixture(t, nil)

	entries, err := fx.svc.PlayerLeaderboard(t.Context(), PlayerLeaderboardQuery{
		Scope: leaderboard.ScopeGlobal,
		Stat:  leaderboard.PlayerStatGoals,
	})
	if err != nil {
		t.Fatalf("player leaderboard failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 scorers, got %+v", entries)
	}

	// The current team name rides on every row, resolved at read time.
	if entries[0].Player.ID != fx.striker || entries[0].TeamName != "Jakarta FC" {
		t.Fatalf("top entry = %+v, want striker with team name Jakarta FC", entries[0])
	}
	if entries[1].TeamName != "Bandung FC" {
		t.Fatalf("second entry = %+v, want team name Bandung FC", entries[1])
	}
}

func TestLeaderboardService_PlayerLeaderboard_FreeAgentHasNoTeamName(t *testing.T) {
	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()
	matchRepo := memory.NewMatchRepository()

	teamSvc := NewTeamService(teamRepo, idgen.NewRandomGenerator())
	playerSvc := NewPlayerService(playerRepo, idgen.NewRandomGenerator())
	matchSvc := NewMatchService(matchRepo, teamRepo, idgen.NewRandomGenerator())
	svc := NewLeaderboardService(teamRepo, playerRepo, matchRepo, nil, 2)

	home, err := teamSvc.CreateTeam(t.Context(), CreateTeamInput{Name: "Home FC", Country: "Indonesia", City: "Jakarta"})
	if err != nil {
		t.Fatalf("seed home team: %v", err)
	}
	away, err := teamSvc.CreateTeam(t.Context(), CreateTeamInput{Name: "Away FC", Country: "Indonesia", City: "Bandung"})
	if err != nil {
		t.Fatalf("seed away team: %v", err)
	}
	agent, err := playerSvc.CreatePlayer(t.Context(), CreatePlayerInput{
		Name:     "Free Agent",
		Position: player.PositionForward,
		Country:  "Indonesia",
		City:     "Jakarta",
	})
	if err != nil {
		t.Fatalf("seed free agent: %v", err)
	}

	m, err := matchSvc.StartMatch(t.Context(), StartMatchInput{HomeTeamID: home.ID, AwayTeamID: away.ID})
	if err != nil {
		t.Fatalf("start match: %v", err)
	}
	if _, err := matchSvc.AddEvent(t.Context(), m.ID, AddEventInput{
		Type:     match.EventGoal,
		TeamID:   home.ID,
		PlayerID: agent.ID,
	}); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	entries, err := svc.PlayerLeaderboard(t.Context(), PlayerLeaderboardQuery{
		Scope: leaderboard.ScopeGlobal,
		Stat:  leaderboard.PlayerStatGoals,
	})
	if err != nil {
		t.Fatalf("player leaderboard failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 scorer, got %+v", entries)
	}
	if entries[0].Player.ID != agent.ID || entries[0].TeamName != "" {
		t.Fatalf("entry = %+v, want free agent with empty team name", entries[0])
	}
}

func TestLeaderboardService_TeamLeaderboard_CityScopeHonorsCountry(t *testing.T) {
	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()
	matchRepo := memory.NewMatchRepository()

	teamSvc := NewTeamService(teamRepo, idgen.NewRandomGenerator())
	matchSvc := NewMatchService(matchRepo, teamRepo, idgen.NewRandomGenerator())
	svc := NewLeaderboardService(teamRepo, playerRepo, matchRepo, nil, 2)

	mustTeam := func(name, country, city string) string {
		created, err := teamSvc.CreateTeam(t.Context(), CreateTeamInput{Name: name, Country: country, City: city})
		if err != nil {
			t.Fatalf("seed team %s: %v", name, err)
		}
		return created.ID
	}

	// Same city name on both sides of a border.
	riverID := mustTeam("River ID", "Indonesia", "Riverside")
	inlandID := mustTeam("Inland ID", "Indonesia", "Highlands")
	riverMY := mustTeam("River MY", "Malaysia", "Riverside")
	inlandMY := mustTeam("Inland MY", "Malaysia", "Highlands")

	for _, pair := range [][2]string{{riverID, inlandID}, {riverMY, inlandMY}} {
		if _, err := matchSvc.StartMatch(t.Context(), StartMatchInput{HomeTeamID: pair[0], AwayTeamID: pair[1]}); err != nil {
			t.Fatalf("start match: %v", err)
		}
	}

	entries, err := svc.TeamLeaderboard(t.Context(), TeamLeaderboardQuery{
		Scope:   leaderboard.ScopeCity,
		Country: "Indonesia",
		City:    "Riverside",
		Stat:    leaderboard.TeamStatPoints,
	})
	if err != nil {
		t.Fatalf("team leaderboard failed: %v", err)
	}

	// Only the Indonesian Riverside side is in scope; its opponent rides
	// along, the Malaysian Riverside match stays off the board.
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	for _, e := range entries {
		if e.Team.ID == riverMY || e.Team.ID == inlandMY {
			t.Fatalf("malaysian side should not appear: %+v", entries)
		}
	}
}
