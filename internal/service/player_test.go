package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	repositorymock "github.com/bradleyplater/HockeyTrackerV2/internal/mocks/repository"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

// sequenceGenerator hands out ids in order
type sequenceGenerator struct {
	ids []string
}

func (g *sequenceGenerator) NewID(string) (string, error) {
	next := g.ids[0]
	g.ids = g.ids[1:]
	return next, nil
}

func TestPlayerService_CreatePlayer(t *testing.T) {
	ctx := context.Background()
	playerRepo := repositorymock.NewPlayerRepository(t)
	svc := NewPlayerService(playerRepo, &sequenceGenerator{ids: []string{"PLR123456"}})

	want := &domain.Player{ID: "PLR123456", FirstName: "Bradley", Surname: "Plater", Teams: []domain.PlayerTeam{}}
	playerRepo.On("Create", ctx, want).Return(want, nil).Once()

	got, err := svc.CreatePlayer(ctx, "Bradley", "Plater")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPlayerService_CreatePlayer_RetriesTakenID(t *testing.T) {
	ctx := context.Background()
	playerRepo := repositorymock.NewPlayerRepository(t)
	svc := NewPlayerService(playerRepo, &sequenceGenerator{ids: []string{"PLR000001", "PLR000002"}})

	playerRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Player) bool { return p.ID == "PLR000001" })).
		Return(nil, repository.ErrDuplicateID).
		Once()
	playerRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Player) bool { return p.ID == "PLR000002" })).
		Return(&domain.Player{ID: "PLR000002"}, nil).
		Once()

	got, err := svc.CreatePlayer(ctx, "Bradley", "Plater")
	require.NoError(t, err)
	assert.Equal(t, "PLR000002", got.ID)
}

func TestPlayerService_CreatePlayer_GivesUpAfterRetries(t *testing.T) {
	ctx := context.Background()
	playerRepo := repositorymock.NewPlayerRepository(t)
	svc := NewPlayerService(playerRepo, &sequenceGenerator{ids: []string{"PLR000001", "PLR000001", "PLR000001"}})

	playerRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicateID).Times(maxIDAttempts)

	_, err := svc.CreatePlayer(ctx, "Bradley", "Plater")
	assert.ErrorIs(t, err, domain.ErrPlayerNotCreated)
	assert.ErrorIs(t, err, repository.ErrDuplicateID)
}

func TestPlayerService_Passthrough(t *testing.T) {
	ctx := context.Background()
	playerRepo := repositorymock.NewPlayerRepository(t)
	svc := NewPlayerService(playerRepo, &sequenceGenerator{})

	playerRepo.On("GetByID", ctx, "PLR000000").Return(nil, domain.ErrPlayerNotFound).Once()
	playerRepo.On("List", ctx).Return([]*domain.Player{{ID: "PLR123456"}}, nil).Once()
	playerRepo.On("Delete", ctx, "PLR123456").Return(nil).Once()
	playerRepo.On("UpdateDetails", ctx, "PLR123456", "Brad", "Plater").Return(nil).Once()

	_, err := svc.GetPlayer(ctx, "PLR000000")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	players, err := svc.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 1)

	require.NoError(t, svc.DeletePlayer(ctx, "PLR123456"))
	require.NoError(t, svc.UpdatePlayerDetails(ctx, "PLR123456", "Brad", "Plater"))
}
