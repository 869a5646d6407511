package httpapi

import (
	"net/http"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/logging"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	teamStatsService   *usecase.TeamStatsService
	playerStatsService *usecase.PlayerStatsService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamStatsService *usecase.TeamStatsService,
	playerStatsService *usecase.PlayerStatsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamStatsService:   teamStatsService,
		playerStatsService: playerStatsService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
