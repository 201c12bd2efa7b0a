package service

import (
	"context"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

// SeasonService exposes the read-only season list
type SeasonService struct {
	seasonRepo repository.SeasonRepository
}

// NewSeasonService creates a new SeasonService
func NewSeasonService(seasonRepo repository.SeasonRepository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

// ListSeasons returns every season
func (s *SeasonService) ListSeasons(ctx context.Context) ([]*domain.Season, error) {
	return s.seasonRepo.List(ctx)
}
