package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bradleyplater/HockeyTrackerV2/internal/service"
	"github.com/bradleyplater/HockeyTrackerV2/internal/validation"
)

// PlayerHandler обрабатывает эндпоинты игроков
type PlayerHandler struct {
	playerService *service.PlayerService
	validator     *validation.Validator
	logger        *zap.Logger
}

// NewPlayerHandler создает новый PlayerHandler
func NewPlayerHandler(playerService *service.PlayerService, validator *validation.Validator, logger *zap.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		validator:     validator,
		logger:        logger,
	}
}

// PlayerDetailsRequest представляет тело запроса на создание и изменение игрока
type PlayerDetailsRequest struct {
	FirstName string `json:"firstName" validate:"required,personname"`
	Surname   string `json:"surname" validate:"required,personname"`
}

// CreatePlayer обрабатывает POST /player
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerDetailsRequest
	if !h.bind(w, r, &req) {
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), req.FirstName, req.Surname)
	if err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, player)
}

// ListPlayers обрабатывает GET /player
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers(r.Context())
	if err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, players)
}

// GetPlayer обрабатывает GET /player/{playerId}
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), playerID)
	if err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, player)
}

// DeletePlayer обрабатывает DELETE /player/{playerId}
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	if err := h.playerService.DeletePlayer(r.Context(), playerID); err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdatePlayerDetails обрабатывает PATCH /player/{playerId}/details
func (h *PlayerHandler) UpdatePlayerDetails(w http.ResponseWriter, r *http.Request) {
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	var req PlayerDetailsRequest
	if !h.bind(w, r, &req) {
		return
	}

	if err := h.playerService.UpdatePlayerDetails(r.Context(), playerID, req.FirstName, req.Surname); err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PlayerHandler) playerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	playerID := chi.URLParam(r, "playerId")
	if err := h.validator.Var(r.Context(), "playerId", playerID, "required,playerid"); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
		return "", false
	}
	return playerID, true
}

func (h *PlayerHandler) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	return bindRequest(w, r, h.validator, dst)
}

// bindRequest разбирает и валидирует тело запроса, при ошибке отвечает 400
func bindRequest(w http.ResponseWriter, r *http.Request, v *validation.Validator, dst any) bool {
	if err := decodeBody(r.Body, dst); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return false
	}

	if err := v.Struct(r.Context(), dst); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
		return false
	}

	return true
}
