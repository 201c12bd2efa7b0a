package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки.
// Partial выставляется, когда изменение состава записано только на стороне команды.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Partial bool   `json:"partial,omitempty"`
}

// codeBadRequest используется для ошибок разбора и валидации тела запроса
const codeBadRequest = "BAD_REQUEST"

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	code := domain.MapErrorToCode(err)
	status := statusForCode(code)

	detail := ErrorDetail{
		Code:    string(code),
		Message: err.Error(),
		Partial: errors.Is(err, domain.ErrPartiallyApplied),
	}

	if status >= http.StatusInternalServerError {
		if logger != nil {
			logger.Error("request failed",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("code", detail.Code),
				zap.Bool("partial", detail.Partial),
				zap.Error(err),
			)
		}
		detail.Message = serverErrorMessage(code)
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: detail})
}

// serverErrorMessage возвращает текст 5xx ответа; полная цепочка ошибки остается только в логе
func serverErrorMessage(code domain.ErrorCode) string {
	switch code {
	case domain.CodePlayerNotAdded:
		return domain.ErrPlayerNotAdded.Error()
	case domain.CodeTeamNotAdded:
		return domain.ErrTeamNotAdded.Error()
	case domain.CodePlayerLinkNotRemoved:
		return domain.ErrPlayerLinkNotRemoved.Error()
	case domain.CodeTeamLinkNotRemoved:
		return domain.ErrTeamLinkNotRemoved.Error()
	case domain.CodeTeamNotCreated:
		return domain.ErrTeamNotCreated.Error()
	case domain.CodePlayerNotCreated:
		return domain.ErrPlayerNotCreated.Error()
	default:
		return "internal server error"
	}
}

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeTeamNotFound, domain.CodePlayerNotFound:
		return http.StatusNotFound
	case domain.CodePlayerAlreadyOnTeam, domain.CodePlayerNumberInUse, domain.CodePlayerNotOnTeam:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
