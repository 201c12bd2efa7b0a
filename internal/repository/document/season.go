package document

import (
	"context"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

// SeasonRepository реализует repository.SeasonRepository поверх документного хранилища.
// Сезоны заводятся напрямую в хранилище, API их только читает.
type SeasonRepository struct {
	store repository.Store
}

// NewSeasonRepository создает новый экземпляр SeasonRepository
func NewSeasonRepository(store repository.Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

// List возвращает все сезоны в порядке добавления
func (r *SeasonRepository) List(ctx context.Context) ([]*domain.Season, error) {
	raws, err := r.store.FindAll(ctx, repository.CollectionSeasons)
	if err != nil {
		return nil, err
	}

	return decodeAll[domain.Season](raws)
}
