package match

// ScoreDelta maps an event to the score change it causes. A goal credits
// the event's team, an own goal credits the opposing side, and an event
// whose team is absent or matches neither side changes nothing — it is
// still recorded in the log.
func ScoreDelta(eventType EventType, eventTeamID, homeTeamID, awayTeamID string) (homeDelta, awayDelta int) {
	if eventTeamID == "" {
		return 0, 0
	}

	switch eventType {
	case EventGoal:
		if eventTeamID == homeTeamID {
			return 1, 0
		}
		if eventTeamID == awayTeamID {
			return 0, 1
		}
	case EventOwnGoal:
		if eventTeamID == homeTeamID {
			return 0, 1
		}
		if eventTeamID == awayTeamID {
			return 1, 0
		}
	}

	return 0, 0
}

// Outcome resolves the winner from final counters. A draw yields an empty
// team ID, never an error.
func Outcome(homeScore, awayScore int, homeTeamID, awayTeamID string) string {
	switch {
	case homeScore > awayScore:
		return homeTeamID
	case awayScore > homeScore:
		return awayTeamID
	default:
		return ""
	}
}
