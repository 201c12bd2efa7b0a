package document

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

const teamPlayersField = "players"

// TeamRepository реализует repository.TeamRepository поверх документного хранилища
type TeamRepository struct {
	store repository.Store
}

// NewTeamRepository создает новый экземпляр TeamRepository
func NewTeamRepository(store repository.Store) *TeamRepository {
	return &TeamRepository{store: store}
}

// Create сохраняет команду и перечитывает её из хранилища
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if team.Players == nil {
		team.Players = []domain.TeamPlayer{}
	}

	doc, err := encode(team)
	if err != nil {
		return nil, err
	}

	id, err := r.store.Insert(ctx, repository.CollectionTeams, team.ID, doc)
	if err != nil {
		return nil, err
	}

	stored, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return nil, domain.ErrTeamNotCreated
		}
		return nil, err
	}

	return stored, nil
}

// GetByID получает команду со всем составом
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	raw, err := r.store.FindByID(ctx, repository.CollectionTeams, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}

	return decode[domain.Team](raw)
}

// List возвращает все команды
func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	raws, err := r.store.FindAll(ctx, repository.CollectionTeams)
	if err != nil {
		return nil, err
	}

	return decodeAll[domain.Team](raws)
}

// AttachPlayer добавляет игрока в состав команды
func (r *TeamRepository) AttachPlayer(ctx context.Context, teamID string, player domain.TeamPlayer) error {
	result, err := r.store.PushElement(ctx, repository.CollectionTeams, teamID, teamPlayersField, player)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPlayerLinkNotAdded, err)
	}

	if result.Modified == 0 {
		return domain.ErrPlayerLinkNotAdded
	}

	return nil
}

// DetachPlayer убирает игрока из состава команды
func (r *TeamRepository) DetachPlayer(ctx context.Context, teamID, playerID string) error {
	result, err := r.store.PullElement(ctx, repository.CollectionTeams, teamID, teamPlayersField,
		repository.Match{Key: "playerId", Value: playerID})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPlayerLinkNotRemoved, err)
	}

	if result.Modified == 0 {
		return domain.ErrPlayerLinkNotRemoved
	}

	return nil
}
