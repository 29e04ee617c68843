package httpapi

import (
	"net/http"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/player"
	"github.com/futsalhq/leaderboard/internal/usecase"
)

type createPlayerRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Position  string `json:"position" validate:"required,oneof=GK DEF MID FWD"`
	TeamID    string `json:"team_id" validate:"omitempty,len=32,hexadecimal"`
	Number    *int   `json:"number" validate:"omitempty,min=0,max=99"`
	Country   string `json:"country" validate:"max=80"`
	City      string `json:"city" validate:"max=80"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

type playerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	TeamID    string    `json:"team_id,omitempty"`
	Number    *int      `json:"number,omitempty"`
	Country   string    `json:"country,omitempty"`
	City      string    `json:"city,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:        p.ID,
		Name:      p.Name,
		Position:  string(p.Position),
		TeamID:    p.TeamID,
		Number:    p.Number,
		Country:   p.Country,
		City:      p.City,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		Name:      req.Name,
		Position:  player.Position(req.Position),
		TeamID:    req.TeamID,
		Number:    req.Number,
		Country:   req.Country,
		City:      req.City,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.playerService.ListPlayers(ctx, player.Filter{
		TeamID: r.URL.Query().Get("team_id"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
