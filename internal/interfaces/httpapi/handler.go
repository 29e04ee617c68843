package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/futsalhq/leaderboard/internal/platform/logging"
	"github.com/futsalhq/leaderboard/internal/usecase"
)

type Handler struct {
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	leaderboardService *usecase.LeaderboardService
	formationService   *usecase.FormationService
	storageDriver      string
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	leaderboardService *usecase.LeaderboardService,
	formationService *usecase.FormationService,
	storageDriver string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:        teamService,
		playerService:      playerService,
		matchService:       matchService,
		leaderboardService: leaderboardService,
		formationService:   formationService,
		storageDriver:      storageDriver,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"status":  "ok",
		"storage": h.storageDriver,
	})
}

// decodeRequest parses the body strictly: unknown fields are rejected so
// typos in payloads surface as errors instead of silently dropped data.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, target any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, target)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
