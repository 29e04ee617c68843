package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/futsalhq/leaderboard/internal/domain/leaderboard"
	"github.com/futsalhq/leaderboard/internal/usecase"
)

type teamLeaderboardEntryDTO struct {
	Rank   int     `json:"rank"`
	Team   teamDTO `json:"team"`
	Goals  int     `json:"goals"`
	Wins   int     `json:"wins"`
	Draws  int     `json:"draws"`
	Points int     `json:"points"`
}

type playerLeaderboardEntryDTO struct {
	Rank     int       `json:"rank"`
	Player   playerDTO `json:"player"`
	TeamName string    `json:"team_name"`
	Count    int       `json:"count"`
}

func (h *Handler) TeamLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamLeaderboard")
	defer span.End()

	query := r.URL.Query()
	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	scope := query.Get("scope")
	if scope == "" {
		scope = string(leaderboard.ScopeGlobal)
	}
	stat := query.Get("stat")
	if stat == "" {
		stat = string(leaderboard.TeamStatGoals)
	}

	entries, err := h.leaderboardService.TeamLeaderboard(ctx, usecase.TeamLeaderboardQuery{
		Scope:   leaderboard.Scope(scope),
		Country: query.Get("country"),
		City:    query.Get("city"),
		Stat:    leaderboard.TeamStat(stat),
		Limit:   limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "team leaderboard failed", "scope", scope, "stat", stat, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamLeaderboardEntryDTO, 0, len(entries))
	for i, e := range entries {
		out = append(out, teamLeaderboardEntryDTO{
			Rank:   i + 1,
			Team:   teamToDTO(e.Team),
			Goals:  e.Goals,
			Wins:   e.Wins,
			Draws:  e.Draws,
			Points: e.Points,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) PlayerLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerLeaderboard")
	defer span.End()

	query := r.URL.Query()
	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	scope := query.Get("scope")
	if scope == "" {
		scope = string(leaderboard.ScopeGlobal)
	}
	stat := query.Get("stat")
	if stat == "" {
		stat = string(leaderboard.PlayerStatGoals)
	}

	entries, err := h.leaderboardService.PlayerLeaderboard(ctx, usecase.PlayerLeaderboardQuery{
		Scope:   leaderboard.Scope(scope),
		Country: query.Get("country"),
		City:    query.Get("city"),
		Stat:    leaderboard.PlayerStat(stat),
		Limit:   limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "player leaderboard failed", "scope", scope, "stat", stat, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerLeaderboardEntryDTO, 0, len(entries))
	for i, e := range entries {
		out = append(out, playerLeaderboardEntryDTO{
			Rank:     i + 1,
			Player:   playerToDTO(e.Player),
			TeamName: e.TeamName,
			Count:    e.Count,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
	}

	return limit, nil
}
