package httpapi

import (
	"net/http"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/team"
	"github.com/futsalhq/leaderboard/internal/usecase"
)

type createTeamRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Country string `json:"country" validate:"required,max=80"`
	City    string `json:"city" validate:"required,max=80"`
	Coach   string `json:"coach" validate:"max=120"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

type teamDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Coach     string    `json:"coach,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		Country:   t.Country,
		City:      t.City,
		Coach:     t.Coach,
		LogoURL:   t.LogoURL,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		Name:    req.Name,
		Country: req.Country,
		City:    req.City,
		Coach:   req.Coach,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	query := r.URL.Query()
	items, err := h.teamService.ListTeams(ctx, team.Filter{
		Country: query.Get("country"),
		City:    query.Get("city"),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
