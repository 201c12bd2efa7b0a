package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bradleyplater/HockeyTrackerV2/internal/middleware"
	"github.com/bradleyplater/HockeyTrackerV2/internal/service"
)

// AuthHandler обрабатывает эндпоинты аутентификации
type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// TokenResponse представляет тело ответа с токеном сессии
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken обрабатывает POST /auth/token, ключ передается в заголовке x-api-key
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get(middleware.APIKeyHeader)
	if key == "" {
		RespondWithError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing api key")
		return
	}

	token, err := h.authService.IssueToken(r.Context(), key)
	if err != nil {
		HandleError(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Liveness обрабатывает GET /liveness
func Liveness(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
