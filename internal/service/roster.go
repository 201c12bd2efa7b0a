package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

// TeamLocker serializes roster changes for a single team
type TeamLocker interface {
	Lock(teamID string) func()
}

type noopLocker struct{}

func (noopLocker) Lock(string) func() { return func() {} }

// RosterService keeps a player's team list and a team's roster in step.
//
// Both sides are validated from one snapshot and then written team first, player second.
// There is no transaction across the two records: a failure on the player side leaves
// the team side written and is reported as a *domain.PartialWriteError.
type RosterService struct {
	teamRepo   repository.TeamRepository
	playerRepo repository.PlayerRepository
	locker     TeamLocker
	logger     *zap.Logger
}

// RosterOption configures a RosterService
type RosterOption func(*RosterService)

// WithTeamLocker serializes every roster change per team id
func WithTeamLocker(locker TeamLocker) RosterOption {
	return func(s *RosterService) {
		if locker != nil {
			s.locker = locker
		}
	}
}

// NewRosterService creates a new RosterService
func NewRosterService(
	teamRepo repository.TeamRepository,
	playerRepo repository.PlayerRepository,
	logger *zap.Logger,
	opts ...RosterOption,
) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &RosterService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		locker:     noopLocker{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddPlayerToTeam puts the player on the team wearing number and returns the team as it now stands
func (s *RosterService) AddPlayerToTeam(ctx context.Context, teamID, playerID string, number int) (*domain.Team, error) {
	unlock := s.locker.Lock(teamID)
	defer unlock()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if team.HasPlayer(player.ID) {
		return nil, domain.ErrPlayerAlreadyOnTeam
	}

	if team.NumberInUse(number) {
		return nil, domain.ErrPlayerNumberInUse
	}

	entry := domain.TeamPlayer{PlayerID: playerID, Number: number}

	if err := s.teamRepo.AttachPlayer(ctx, teamID, entry); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPlayerNotAdded, err)
	}

	if err := s.playerRepo.AttachTeam(ctx, playerID, domain.PlayerTeam{TeamID: teamID, Number: number}); err != nil {
		s.logger.Error("roster left one-sided after add",
			zap.String("team_id", teamID),
			zap.String("player_id", playerID),
			zap.Int("number", number),
			zap.Error(err),
		)
		return nil, &domain.PartialWriteError{
			TeamID:   teamID,
			PlayerID: playerID,
			Err:      fmt.Errorf("%w: %w", domain.ErrTeamNotAdded, err),
		}
	}

	// The response is the snapshot read above plus the new entry; the store is not re-read.
	team.Players = append(team.Players, entry)

	s.logger.Info("player added to team",
		zap.String("team_id", teamID),
		zap.String("player_id", playerID),
		zap.Int("number", number),
	)

	return team, nil
}

// RemovePlayerFromTeam takes the player off the team
func (s *RosterService) RemovePlayerFromTeam(ctx context.Context, teamID, playerID string) error {
	unlock := s.locker.Lock(teamID)
	defer unlock()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return err
	}

	if !team.HasPlayer(player.ID) {
		return domain.ErrPlayerNotOnTeam
	}

	if err := s.teamRepo.DetachPlayer(ctx, teamID, playerID); err != nil {
		return err
	}

	if err := s.playerRepo.DetachTeam(ctx, playerID, teamID); err != nil {
		s.logger.Error("roster left one-sided after remove",
			zap.String("team_id", teamID),
			zap.String("player_id", playerID),
			zap.Error(err),
		)
		return &domain.PartialWriteError{TeamID: teamID, PlayerID: playerID, Err: err}
	}

	s.logger.Info("player removed from team",
		zap.String("team_id", teamID),
		zap.String("player_id", playerID),
	)

	return nil
}
