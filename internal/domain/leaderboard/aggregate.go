package leaderboard

import (
	"sort"

	"github.com/futsalhq/leaderboard/internal/domain/match"
)

// The aggregation is a sequence of pure stages over the match corpus:
// flatten -> map -> group -> fold -> sort -> truncate. Each stage works
// on plain values so it can be tested without storage.

// AccumulateTeams folds every match into two per-side rows and groups
// them by team, summing goals, wins and draws across home and away
// appearances. Rows come back in first-seen order; both sides of every
// candidate match contribute, including opponents outside a geographic
// scope set.
func AccumulateTeams(matches []match.Match) []TeamRow {
	index := make(map[string]int)
	rows := make([]TeamRow, 0, len(matches)*2)

	fold := func(teamID string, goalsFor, goalsAgainst int) {
		i, seen := index[teamID]
		if !seen {
			i = len(rows)
			index[teamID] = i
			rows = append(rows, TeamRow{TeamID: teamID})
		}
		rows[i].Goals += goalsFor
		if goalsFor > goalsAgainst {
			rows[i].Wins++
		} else if goalsFor == goalsAgainst {
			rows[i].Draws++
		}
	}

	for _, m := range matches {
		fold(m.HomeTeamID, m.HomeScore, m.AwayScore)
		fold(m.AwayTeamID, m.AwayScore, m.HomeScore)
	}

	for i := range rows {
		rows[i].Points = rows[i].Wins*3 + rows[i].Draws
	}

	return rows
}

// SortTeamRows orders rows descending by the requested statistic. Ties
// break by ascending team ID so results are deterministic regardless of
// storage iteration order.
func SortTeamRows(rows []TeamRow, stat TeamStat) {
	value := func(r TeamRow) int {
		switch stat {
		case TeamStatWins:
			return r.Wins
		case TeamStatPoints:
			return r.Points
		default:
			return r.Goals
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		vi, vj := value(rows[i]), value(rows[j])
		if vi != vj {
			return vi > vj
		}
		return rows[i].TeamID < rows[j].TeamID
	})
}

// CreditedPlayer resolves which player a single event counts for under
// the requested statistic. The assist statistic carries the
// dual-attribution rule: a goal event credits its secondary player (the
// assister) while an assist event credits its primary player, so an
// assist recorded either way counts exactly once. An empty credited
// identity means the event counts for nobody.
func CreditedPlayer(ev match.Event, stat PlayerStat) (string, bool) {
	switch stat {
	case PlayerStatGoals:
		if ev.Type == match.EventGoal {
			return ev.PlayerID, ev.PlayerID != ""
		}
	case PlayerStatAssists:
		switch ev.Type {
		case match.EventGoal:
			return ev.SecondaryPlayerID, ev.SecondaryPlayerID != ""
		case match.EventAssist:
			return ev.PlayerID, ev.PlayerID != ""
		}
	case PlayerStatYellow:
		if ev.Type == match.EventYellow {
			return ev.PlayerID, ev.PlayerID != ""
		}
	case PlayerStatRed:
		if ev.Type == match.EventRed {
			return ev.PlayerID, ev.PlayerID != ""
		}
	}

	return "", false
}

// CountPlayerStat flattens every match's event log, selects events
// relevant to the statistic and groups occurrence counts by credited
// player, in first-seen order.
func CountPlayerStat(matches []match.Match, stat PlayerStat) []PlayerRow {
	index := make(map[string]int)
	rows := make([]PlayerRow, 0)

	for _, m := range matches {
		for _, ev := range m.Events {
			playerID, ok := CreditedPlayer(ev, stat)
			if !ok {
				continue
			}
			i, seen := index[playerID]
			if !seen {
				i = len(rows)
				index[playerID] = i
				rows = append(rows, PlayerRow{PlayerID: playerID})
			}
			rows[i].Count++
		}
	}

	return rows
}

// FilterPlayerRows keeps rows whose player is in the allowed set. A nil
// set means no restriction.
func FilterPlayerRows(rows []PlayerRow, allowed map[string]struct{}) []PlayerRow {
	if allowed == nil {
		return rows
	}

	out := make([]PlayerRow, 0, len(rows))
	for _, r := range rows {
		if _, ok := allowed[r.PlayerID]; ok {
			out = append(out, r)
		}
	}

	return out
}

// SortPlayerRows orders rows descending by count with ascending player
// ID as the deterministic tiebreak.
func SortPlayerRows(rows []PlayerRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
}

// TruncateTeamRows and TruncatePlayerRows cut sorted rows to the clamped
// limit.
func TruncateTeamRows(rows []TeamRow, limit int) []TeamRow {
	limit = ClampLimit(limit)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func TruncatePlayerRows(rows []PlayerRow, limit int) []PlayerRow {
	limit = ClampLimit(limit)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
