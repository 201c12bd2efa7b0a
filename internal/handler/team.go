package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bradleyplater/HockeyTrackerV2/internal/service"
	"github.com/bradleyplater/HockeyTrackerV2/internal/validation"
)

// TeamHandler обрабатывает эндпоинты команд и их составов
type TeamHandler struct {
	teamService   *service.TeamService
	rosterService *service.RosterService
	validator     *validation.Validator
	logger        *zap.Logger
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(
	teamService *service.TeamService,
	rosterService *service.RosterService,
	validator *validation.Validator,
	logger *zap.Logger,
) *TeamHandler {
	return &TeamHandler{
		teamService:   teamService,
		rosterService: rosterService,
		validator:     validator,
		logger:        logger,
	}
}

// CreateTeamRequest представляет тело запроса на создание команды
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,teamname"`
}

// AddPlayerRequest представляет тело запроса на добавление игрока в состав
type AddPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required,playerid"`
	Number   *int   `json:"number" validate:"required,gte=0,lte=99"`
}

// RemovePlayerRequest представляет тело запроса на удаление игрока из состава
type RemovePlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required,playerid"`
}

// CreateTeam обрабатывает POST /team
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if !bindRequest(w, r, h.validator, &req) {
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), req.Name)
	if err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, team)
}

// ListTeams обрабатывает GET /team
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, teams)
}

// GetTeam обрабатывает GET /team/{teamId}
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, team)
}

// AddPlayer обрабатывает PATCH /team/addplayer/{teamId}
func (h *TeamHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}

	var req AddPlayerRequest
	if !bindRequest(w, r, h.validator, &req) {
		return
	}

	team, err := h.rosterService.AddPlayerToTeam(r.Context(), teamID, req.PlayerID, *req.Number)
	if err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, team)
}

// RemovePlayer обрабатывает PATCH /team/removeplayer/{teamId}
func (h *TeamHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}

	var req RemovePlayerRequest
	if !bindRequest(w, r, h.validator, &req) {
		return
	}

	if err := h.rosterService.RemovePlayerFromTeam(r.Context(), teamID, req.PlayerID); err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) teamID(w http.ResponseWriter, r *http.Request) (string, bool) {
	teamID := chi.URLParam(r, "teamId")
	if err := h.validator.Var(r.Context(), "teamId", teamID, "required,teamid"); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
		return "", false
	}
	return teamID, true
}
