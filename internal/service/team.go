package service

import (
	"context"
	"errors"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/platform/id"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

// maxIDAttempts bounds retries when a freshly generated id is already taken
const maxIDAttempts = 3

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo repository.TeamRepository
	ids      id.Generator
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, ids id.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		ids:      ids,
	}
}

// CreateTeam creates a new team with an empty roster
func (s *TeamService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	var lastErr error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		teamID, err := s.ids.NewID(id.TeamPrefix)
		if err != nil {
			return nil, err
		}

		team, err := s.teamRepo.Create(ctx, &domain.Team{
			ID:      teamID,
			Name:    name,
			Players: []domain.TeamPlayer{},
		})
		if errors.Is(err, repository.ErrDuplicateID) {
			lastErr = err
			continue
		}
		return team, err
	}

	return nil, errors.Join(domain.ErrTeamNotCreated, lastErr)
}

// GetTeam retrieves a team with its roster
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, teamID)
}

// ListTeams returns every team
func (s *TeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx)
}
