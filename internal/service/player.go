package service

import (
	"context"
	"errors"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/platform/id"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

// PlayerService handles business logic for players
type PlayerService struct {
	playerRepo repository.PlayerRepository
	ids        id.Generator
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(playerRepo repository.PlayerRepository, ids id.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		ids:        ids,
	}
}

// CreatePlayer creates a new player who is not on any team yet
func (s *PlayerService) CreatePlayer(ctx context.Context, firstName, surname string) (*domain.Player, error) {
	var lastErr error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		playerID, err := s.ids.NewID(id.PlayerPrefix)
		if err != nil {
			return nil, err
		}

		player, err := s.playerRepo.Create(ctx, &domain.Player{
			ID:        playerID,
			FirstName: firstName,
			Surname:   surname,
			Teams:     []domain.PlayerTeam{},
		})
		if errors.Is(err, repository.ErrDuplicateID) {
			lastErr = err
			continue
		}
		return player, err
	}

	return nil, errors.Join(domain.ErrPlayerNotCreated, lastErr)
}

// GetPlayer retrieves a player by ID
func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return s.playerRepo.GetByID(ctx, playerID)
}

// ListPlayers returns every player
func (s *PlayerService) ListPlayers(ctx context.Context) ([]*domain.Player, error) {
	return s.playerRepo.List(ctx)
}

// DeletePlayer removes the player record; team rosters are left as they are
func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	return s.playerRepo.Delete(ctx, playerID)
}

// UpdatePlayerDetails changes the player's names
func (s *PlayerService) UpdatePlayerDetails(ctx context.Context, playerID, firstName, surname string) error {
	return s.playerRepo.UpdateDetails(ctx, playerID, firstName, surname)
}
