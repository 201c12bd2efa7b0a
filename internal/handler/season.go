package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bradleyplater/HockeyTrackerV2/internal/service"
)

// SeasonHandler обрабатывает эндпоинты сезонов
type SeasonHandler struct {
	seasonService *service.SeasonService
	logger        *zap.Logger
}

// NewSeasonHandler создает новый SeasonHandler
func NewSeasonHandler(seasonService *service.SeasonService, logger *zap.Logger) *SeasonHandler {
	return &SeasonHandler{
		seasonService: seasonService,
		logger:        logger,
	}
}

// ListSeasons обрабатывает GET /seasons
func (h *SeasonHandler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.seasonService.ListSeasons(r.Context())
	if err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, seasons)
}
