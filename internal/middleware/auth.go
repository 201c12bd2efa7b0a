package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/service"
)

// APIKeyHeader заголовок, в котором клиент передает API ключ
const APIKeyHeader = "x-api-key"

// ContextKey это кастомный тип для ключей контекста
type ContextKey string

// KeyIDKey ключ контекста для ID API ключа, которым прошел запрос
const KeyIDKey ContextKey = "key_id"

// Authenticator проверяет API ключи и токены сессий
type Authenticator interface {
	ValidateAPIKey(ctx context.Context, key string) (*domain.APIKey, error)
	ValidateToken(token string) (*service.Claims, error)
}

// AuthMiddleware создает middleware, пропускающий запросы с валидным x-api-key или Bearer токеном
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// API ключ проверяется первым
			if key := r.Header.Get(APIKeyHeader); key != "" {
				stored, err := auth.ValidateAPIKey(r.Context(), key)
				if errors.Is(err, domain.ErrUnauthorized) {
					unauthorized(w, "invalid api key")
					return
				}
				if err != nil {
					// Хранилище ключей недоступно: это не отказ в доступе
					writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
					return
				}
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), KeyIDKey, stored.ID)))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "missing api key or authorization header")
				return
			}

			// Проверяем формат Bearer
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "invalid authorization header format")
				return
			}

			claims, err := auth.ValidateToken(parts[1])
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), KeyIDKey, claims.KeyID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":{"code":"` + code + `","message":"` + message + `"}}`))
}

// GetKeyIDFromContext извлекает ID API ключа из контекста
func GetKeyIDFromContext(ctx context.Context) string {
	keyID, ok := ctx.Value(KeyIDKey).(string)
	if !ok {
		return ""
	}
	return keyID
}
