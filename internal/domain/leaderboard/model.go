package leaderboard

// Scope is the geographic restriction applied to a leaderboard query.
type Scope string

const (
	ScopeGlobal  Scope = "global"
	ScopeCountry Scope = "country"
	ScopeCity    Scope = "city"
)

var AllScopes = map[Scope]struct{}{
	ScopeGlobal:  {},
	ScopeCountry: {},
	ScopeCity:    {},
}

type TeamStat string

const (
	TeamStatGoals  TeamStat = "goals"
	TeamStatWins   TeamStat = "wins"
	TeamStatPoints TeamStat = "points"
)

var AllTeamStats = map[TeamStat]struct{}{
	TeamStatGoals:  {},
	TeamStatWins:   {},
	TeamStatPoints: {},
}

type PlayerStat string

const (
	PlayerStatGoals   PlayerStat = "goals"
	PlayerStatAssists PlayerStat = "assists"
	PlayerStatYellow  PlayerStat = "yellow"
	PlayerStatRed     PlayerStat = "red"
)

var AllPlayerStats = map[PlayerStat]struct{}{
	PlayerStatGoals:   {},
	PlayerStatAssists: {},
	PlayerStatYellow:  {},
	PlayerStatRed:     {},
}

const (
	// DefaultLimit applies when a query asks for no particular row count.
	DefaultLimit = 20
	// MaxLimit caps how many rows a single query may request.
	MaxLimit = 100
)

// ClampLimit normalizes a requested row count into [1, MaxLimit],
// substituting DefaultLimit for zero or negative requests.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// TeamRow is one aggregated team entry before enrichment. Points follow
// standard 3-1-0 scoring.
type TeamRow struct {
	TeamID string
	Goals  int
	Wins   int
	Draws  int
	Points int
}

// PlayerRow is one aggregated player entry before enrichment.
type PlayerRow struct {
	PlayerID string
	Count    int
}
