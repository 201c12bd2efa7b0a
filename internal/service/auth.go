package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/platform/id"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

// Claims represents JWT claims
type Claims struct {
	KeyID string `json:"key_id"`
	jwt.RegisteredClaims
}

// AuthService handles API key checks and JWT operations
type AuthService struct {
	keyRepo   repository.APIKeyRepository
	ids       id.Generator
	clock     clockwork.Clock
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(
	keyRepo repository.APIKeyRepository,
	ids id.Generator,
	clock clockwork.Clock,
	jwtSecret string,
	jwtExpiry time.Duration,
) *AuthService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &AuthService{
		keyRepo:   keyRepo,
		ids:       ids,
		clock:     clock,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// ValidateAPIKey checks the key against every stored hash and returns the matching record
func (s *AuthService) ValidateAPIKey(ctx context.Context, key string) (*domain.APIKey, error) {
	if key == "" {
		return nil, domain.ErrUnauthorized
	}

	keys, err := s.keyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, stored := range keys {
		if bcrypt.CompareHashAndPassword([]byte(stored.Hash), []byte(key)) == nil {
			return stored, nil
		}
	}

	return nil, domain.ErrUnauthorized
}

// EnsureAPIKey seeds a hash for key when no keys are stored yet
func (s *AuthService) EnsureAPIKey(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}

	keys, err := s.keyRepo.List(ctx)
	if err != nil {
		return false, err
	}
	if len(keys) > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash api key: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		keyID, err := s.ids.NewID(id.APIKeyPrefix)
		if err != nil {
			return false, err
		}

		err = s.keyRepo.Create(ctx, &domain.APIKey{ID: keyID, Hash: string(hash)})
		if errors.Is(err, repository.ErrDuplicateID) {
			lastErr = err
			continue
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}

	return false, lastErr
}

// IssueToken exchanges a valid API key for a signed session token
func (s *AuthService) IssueToken(ctx context.Context, key string) (string, error) {
	stored, err := s.ValidateAPIKey(ctx, key)
	if err != nil {
		return "", err
	}

	now := s.clock.Now()
	claims := &Claims{
		KeyID: stored.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
