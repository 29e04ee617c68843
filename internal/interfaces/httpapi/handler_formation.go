package httpapi

import (
	"net/http"
	"time"

	"github.com/futsalhq/leaderboard/internal/domain/formation"
	"github.com/futsalhq/leaderboard/internal/usecase"
)

type placementPayload struct {
	PlayerID string  `json:"player_id" validate:"required,len=32,hexadecimal"`
	X        float64 `json:"x" validate:"min=0,max=100"`
	Y        float64 `json:"y" validate:"min=0,max=100"`
}

type saveFormationRequest struct {
	TeamID    string             `json:"team_id" validate:"required,len=32,hexadecimal"`
	Name      string             `json:"name" validate:"max=120"`
	Positions []placementPayload `json:"positions" validate:"dive"`
}

type formationDTO struct {
	ID        string             `json:"id,omitempty"`
	TeamID    string             `json:"team_id"`
	Name      string             `json:"name"`
	Positions []placementPayload `json:"positions"`
	CreatedAt *time.Time         `json:"created_at,omitempty"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty"`
}

func formationToDTO(f formation.Formation) formationDTO {
	positions := make([]placementPayload, 0, len(f.Positions))
	for _, p := range f.Positions {
		positions = append(positions, placementPayload{PlayerID: p.PlayerID, X: p.X, Y: p.Y})
	}

	out := formationDTO{
		ID:        f.ID,
		TeamID:    f.TeamID,
		Name:      f.Name,
		Positions: positions,
	}
	if !f.CreatedAt.IsZero() {
		created := f.CreatedAt
		out.CreatedAt = &created
	}
	if !f.UpdatedAt.IsZero() {
		updated := f.UpdatedAt
		out.UpdatedAt = &updated
	}

	return out
}

func (h *Handler) SaveFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveFormation")
	defer span.End()

	var req saveFormationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	positions := make([]formation.Placement, 0, len(req.Positions))
	for _, p := range req.Positions {
		positions = append(positions, formation.Placement{PlayerID: p.PlayerID, X: p.X, Y: p.Y})
	}

	saved, err := h.formationService.SaveFormation(ctx, usecase.SaveFormationInput{
		TeamID:    req.TeamID,
		Name:      req.Name,
		Positions: positions,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save formation failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationToDTO(saved))
}

func (h *Handler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFormation")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.formationService.GetFormation(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get formation failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationToDTO(item))
}
