package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/futsalhq/leaderboard/internal/domain/match"
)

const (
	teamA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	teamB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	teamC = "cccccccccccccccccccccccccccccccc"
)

const (
	playerP = "11111111111111111111111111111111"
	playerQ = "22222222222222222222222222222222"
	playerR = "33333333333333333333333333333333"
)

func TestAccumulateTeamsBothSides(t *testing.T) {
	matches := []match.Match{
		{HomeTeamID: teamA, AwayTeamID: teamB, HomeScore: 3, AwayScore: 1},
		{HomeTeamID: teamB, AwayTeamID: teamA, HomeScore: 2, AwayScore: 2},
		{HomeTeamID: teamC, AwayTeamID: teamA, HomeScore: 0, AwayScore: 1},
	}

	rows := AccumulateTeams(matches)
	require.Len(t, rows, 3)

	byID := make(map[string]TeamRow, len(rows))
	for _, r := range rows {
		byID[r.TeamID] = r
	}

	require.Equal(t, TeamRow{TeamID: teamA, Goals: 6, Wins: 2, Draws: 1, Points: 7}, byID[teamA])
	require.Equal(t, TeamRow{TeamID: teamB, Goals: 3, Wins: 0, Draws: 1, Points: 1}, byID[teamB])
	require.Equal(t, TeamRow{TeamID: teamC, Goals: 0, Wins: 0, Draws: 0, Points: 0}, byID[teamC])
}

func TestAccumulateTeamsKeepsOpponents(t *testing.T) {
	// A scoped candidate set still carries both sides of every match.
	kept := []match.Match{
		{HomeTeamID: teamA, AwayTeamID: teamB, HomeScore: 1},
	}

	rows := AccumulateTeams(kept)
	require.Len(t, rows, 2)
}

func TestSortTeamRowsTiebreak(t *testing.T) {
	rows := []TeamRow{
		{TeamID: teamC, Goals: 5},
		{TeamID: teamB, Goals: 7},
		{TeamID: teamA, Goals: 5},
	}

	SortTeamRows(rows, TeamStatGoals)

	require.Equal(t, teamB, rows[0].TeamID)
	require.Equal(t, teamA, rows[1].TeamID)
	require.Equal(t, teamC, rows[2].TeamID)
}

func TestSortTeamRowsByPoints(t *testing.T) {
	rows := []TeamRow{
		{TeamID: teamA, Goals: 9, Wins: 1, Points: 3},
		{TeamID: teamB, Goals: 2, Wins: 2, Points: 6},
	}

	SortTeamRows(rows, TeamStatPoints)
	require.Equal(t, teamB, rows[0].TeamID)

	SortTeamRows(rows, TeamStatGoals)
	require.Equal(t, teamA, rows[0].TeamID)
}

func TestCreditedPlayerAssistDualAttribution(t *testing.T) {
	goalWithAssist := match.Event{Type: match.EventGoal, PlayerID: playerR, SecondaryPlayerID: playerP}
	standaloneAssist := match.Event{Type: match.EventAssist, PlayerID: playerQ}

	id, ok := CreditedPlayer(goalWithAssist, PlayerStatAssists)
	require.True(t, ok)
	require.Equal(t, playerP, id)

	id, ok = CreditedPlayer(standaloneAssist, PlayerStatAssists)
	require.True(t, ok)
	require.Equal(t, playerQ, id)

	// A goal without a secondary player is not an assist for anyone.
	_, ok = CreditedPlayer(match.Event{Type: match.EventGoal, PlayerID: playerR}, PlayerStatAssists)
	require.False(t, ok)
}

func TestCountPlayerStatAssists(t *testing.T) {
	matches := []match.Match{
		{
			HomeTeamID: teamA,
			AwayTeamID: teamB,
			Events: []match.Event{
				{Type: match.EventGoal, PlayerID: playerR, SecondaryPlayerID: playerP},
				{Type: match.EventAssist, PlayerID: playerQ},
				{Type: match.EventGoal, PlayerID: playerR},
			},
		},
	}

	rows := CountPlayerStat(matches, PlayerStatAssists)
	require.Equal(t, []PlayerRow{
		{PlayerID: playerP, Count: 1},
		{PlayerID: playerQ, Count: 1},
	}, rows)
}

func TestCountPlayerStatGoalsSkipsEmptyIdentity(t *testing.T) {
	matches := []match.Match{
		{
			Events: []match.Event{
				{Type: match.EventGoal, PlayerID: playerR},
				{Type: match.EventGoal},
				{Type: match.EventGoal, PlayerID: playerR},
				{Type: match.EventYellow, PlayerID: playerR},
			},
		},
	}

	rows := CountPlayerStat(matches, PlayerStatGoals)
	require.Equal(t, []PlayerRow{{PlayerID: playerR, Count: 2}}, rows)

	rows = CountPlayerStat(matches, PlayerStatYellow)
	require.Equal(t, []PlayerRow{{PlayerID: playerR, Count: 1}}, rows)
}

func TestFilterPlayerRows(t *testing.T) {
	rows := []PlayerRow{
		{PlayerID: playerP, Count: 3},
		{PlayerID: playerQ, Count: 2},
	}

	filtered := FilterPlayerRows(rows, map[string]struct{}{playerQ: {}})
	require.Equal(t, []PlayerRow{{PlayerID: playerQ, Count: 2}}, filtered)

	require.Empty(t, FilterPlayerRows(rows, map[string]struct{}{}))
	require.Len(t, FilterPlayerRows(rows, nil), 2)
}

func TestSortPlayerRowsTiebreak(t *testing.T) {
	rows := []PlayerRow{
		{PlayerID: playerR, Count: 2},
		{PlayerID: playerP, Count: 2},
		{PlayerID: playerQ, Count: 5},
	}

	SortPlayerRows(rows)

	require.Equal(t, playerQ, rows[0].PlayerID)
	require.Equal(t, playerP, rows[1].PlayerID)
	require.Equal(t, playerR, rows[2].PlayerID)
}

func TestTruncate(t *testing.T) {
	team := make([]TeamRow, 150)
	require.Len(t, TruncateTeamRows(team, 0), DefaultLimit)
	require.Len(t, TruncateTeamRows(team, 5), 5)
	require.Len(t, TruncateTeamRows(team, 1000), MaxLimit)

	players := make([]PlayerRow, 30)
	require.Len(t, TruncatePlayerRows(players, 25), 25)
	require.Len(t, TruncatePlayerRows(players, 50), 30)
}
