package service

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	repositorymock "github.com/bradleyplater/HockeyTrackerV2/internal/mocks/repository"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository/document"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository/memory"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T, clock clockwork.Clock) *AuthService {
	t.Helper()

	svc := NewAuthService(
		document.NewAPIKeyRepository(memory.NewStore()),
		&sequenceGenerator{ids: []string{"KEY000001"}},
		clock,
		testSecret,
		time.Hour,
	)
	seeded, err := svc.EnsureAPIKey(context.Background(), "league-key")
	require.NoError(t, err)
	require.True(t, seeded)

	return svc
}

func TestAuthService_ValidateAPIKey(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t, clockwork.NewFakeClock())

	key, err := svc.ValidateAPIKey(ctx, "league-key")
	require.NoError(t, err)
	assert.Equal(t, "KEY000001", key.ID)
	assert.NotEqual(t, "league-key", key.Hash)

	_, err = svc.ValidateAPIKey(ctx, "wrong-key")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.ValidateAPIKey(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_EnsureAPIKeySkipsWhenKeysExist(t *testing.T) {
	ctx := context.Background()
	keyRepo := repositorymock.NewAPIKeyRepository(t)
	svc := NewAuthService(keyRepo, &sequenceGenerator{}, nil, testSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("existing"), bcrypt.MinCost)
	require.NoError(t, err)
	keyRepo.On("List", ctx).Return([]*domain.APIKey{{ID: "KEY000001", Hash: string(hash)}}, nil).Once()

	seeded, err := svc.EnsureAPIKey(ctx, "league-key")
	require.NoError(t, err)
	assert.False(t, seeded)
	keyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_IssueAndValidateToken(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 10, 19, 30, 0, 0, time.UTC))
	svc := newAuthFixture(t, clock)

	token, err := svc.IssueToken(ctx, "league-key")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "KEY000001", claims.KeyID)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, clock.Now().Add(time.Hour).Unix(), claims.ExpiresAt.Unix())

	clock.Advance(2 * time.Hour)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_IssueTokenRejectsUnknownKey(t *testing.T) {
	svc := newAuthFixture(t, clockwork.NewFakeClock())

	_, err := svc.IssueToken(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
