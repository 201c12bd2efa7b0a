package document

import (
	"context"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

// APIKeyRepository реализует repository.APIKeyRepository поверх документного хранилища
type APIKeyRepository struct {
	store repository.Store
}

// NewAPIKeyRepository создает новый экземпляр APIKeyRepository
func NewAPIKeyRepository(store repository.Store) *APIKeyRepository {
	return &APIKeyRepository{store: store}
}

// Create сохраняет хэш ключа
func (r *APIKeyRepository) Create(ctx context.Context, key *domain.APIKey) error {
	doc, err := encode(key)
	if err != nil {
		return err
	}

	_, err = r.store.Insert(ctx, repository.CollectionAPIKeys, key.ID, doc)
	return err
}

// List возвращает все сохраненные ключи
func (r *APIKeyRepository) List(ctx context.Context) ([]*domain.APIKey, error) {
	raws, err := r.store.FindAll(ctx, repository.CollectionAPIKeys)
	if err != nil {
		return nil, err
	}

	return decodeAll[domain.APIKey](raws)
}
