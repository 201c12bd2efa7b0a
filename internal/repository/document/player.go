package document

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

const playerTeamsField = "teams"

// PlayerRepository реализует repository.PlayerRepository поверх документного хранилища
type PlayerRepository struct {
	store repository.Store
}

// NewPlayerRepository создает новый экземпляр PlayerRepository
func NewPlayerRepository(store repository.Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

// Create сохраняет игрока и перечитывает его из хранилища
func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if player.Teams == nil {
		player.Teams = []domain.PlayerTeam{}
	}

	doc, err := encode(player)
	if err != nil {
		return nil, err
	}

	id, err := r.store.Insert(ctx, repository.CollectionPlayers, player.ID, doc)
	if err != nil {
		return nil, err
	}

	stored, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, domain.ErrPlayerNotCreated
		}
		return nil, err
	}

	return stored, nil
}

// GetByID получает игрока по ID
func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (*domain.Player, error) {
	raw, err := r.store.FindByID(ctx, repository.CollectionPlayers, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}

	return decode[domain.Player](raw)
}

// List возвращает всех игроков
func (r *PlayerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	raws, err := r.store.FindAll(ctx, repository.CollectionPlayers)
	if err != nil {
		return nil, err
	}

	return decodeAll[domain.Player](raws)
}

// Delete удаляет игрока целиком, не затрагивая составы команд
func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	result, err := r.store.Delete(ctx, repository.CollectionPlayers, playerID)
	if err != nil {
		return err
	}

	if result.Modified == 0 {
		return domain.ErrPlayerNotFound
	}

	return nil
}

// UpdateDetails обновляет имя и фамилию игрока
func (r *PlayerRepository) UpdateDetails(ctx context.Context, playerID, firstName, surname string) error {
	result, err := r.store.SetFields(ctx, repository.CollectionPlayers, playerID, map[string]any{
		"firstName": firstName,
		"surname":   surname,
	})
	if err != nil {
		return err
	}

	if result.Matched == 0 {
		return domain.ErrPlayerNotFound
	}

	return nil
}

// AttachTeam добавляет команду в список команд игрока
func (r *PlayerRepository) AttachTeam(ctx context.Context, playerID string, team domain.PlayerTeam) error {
	result, err := r.store.PushElement(ctx, repository.CollectionPlayers, playerID, playerTeamsField, team)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTeamLinkNotAdded, err)
	}

	if result.Modified == 0 {
		return domain.ErrTeamLinkNotAdded
	}

	return nil
}

// DetachTeam убирает команду из списка команд игрока
func (r *PlayerRepository) DetachTeam(ctx context.Context, playerID, teamID string) error {
	result, err := r.store.PullElement(ctx, repository.CollectionPlayers, playerID, playerTeamsField,
		repository.Match{Key: "teamId", Value: teamID})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTeamLinkNotRemoved, err)
	}

	if result.Modified == 0 {
		return domain.ErrTeamLinkNotRemoved
	}

	return nil
}
