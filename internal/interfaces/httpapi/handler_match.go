package httpapi

import (
	"net/http"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/match"
	"github.com/futsalhq/leaderboard/internal/usecase"
)

type startMatchRequest struct {
	HomeTeamID string `json:"home_team_id" validate:"required,len=32,hexadecimal"`
	AwayTeamID string `json:"away_team_id" validate:"required,len=32,hexadecimal"`
}

type addEventRequest struct {
	Type              string `json:"type" validate:"required,oneof=goal assist yellow red own_goal substitution"`
	TeamID            string `json:"team_id" validate:"omitempty,len=32,hexadecimal"`
	PlayerID          string `json:"player_id" validate:"omitempty,len=32,hexadecimal"`
	SecondaryPlayerID string `json:"secondary_player_id" validate:"omitempty,len=32,hexadecimal"`
	Minute            *int   `json:"minute" validate:"omitempty,min=0,max=60"`
	Notes             string `json:"notes" validate:"max=500"`
}

type eventDTO struct {
	Timestamp         time.Time `json:"ts"`
	Type              string    `json:"type"`
	TeamID            string    `json:"team_id,omitempty"`
	PlayerID          string    `json:"player_id,omitempty"`
	SecondaryPlayerID string    `json:"secondary_player_id,omitempty"`
	Minute            *int      `json:"minute,omitempty"`
	Notes             string    `json:"notes,omitempty"`
}

type matchDTO struct {
	ID           string     `json:"id"`
	HomeTeamID   string     `json:"home_team_id"`
	AwayTeamID   string     `json:"away_team_id"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	Events       []eventDTO `json:"events"`
	HomeScore    int        `json:"home_score"`
	AwayScore    int        `json:"away_score"`
	WinnerTeamID string     `json:"winner_team_id,omitempty"`
}

func matchToDTO(m match.Match) matchDTO {
	events := make([]eventDTO, 0, len(m.Events))
	for _, ev := range m.Events {
		events = append(events, eventDTO{
			Timestamp:         ev.Timestamp,
			Type:              string(ev.Type),
			TeamID:            ev.TeamID,
			PlayerID:          ev.PlayerID,
			SecondaryPlayerID: ev.SecondaryPlayerID,
			Minute:            ev.Minute,
			Notes:             ev.Notes,
		})
	}

	return matchDTO{
		ID:           m.ID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		StartedAt:    m.StartedAt,
		EndedAt:      m.EndedAt,
		Events:       events,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		WinnerTeamID: m.WinnerTeamID,
	}
}

func (h *Handler) StartMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartMatch")
	defer span.End()

	var req startMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	started, err := h.matchService.StartMatch(ctx, usecase.StartMatchInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "start match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(started))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) AddMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatchEvent")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req addEventRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.AddEvent(ctx, matchID, usecase.AddEventInput{
		Type:              match.EventType(req.Type),
		TeamID:            req.TeamID,
		PlayerID:          req.PlayerID,
		SecondaryPlayerID: req.SecondaryPlayerID,
		Minute:            req.Minute,
		Notes:             req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add match event failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) EndMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EndMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	ended, err := h.matchService.EndMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "end match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ended))
}
