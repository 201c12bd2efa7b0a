package document

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository/memory"
)

var errUnavailable = errors.New("store unavailable")

// brokenStore имитирует недоступное хранилище
type brokenStore struct{}

func (brokenStore) FindByID(context.Context, repository.Collection, string) ([]byte, error) {
	return nil, errUnavailable
}

func (brokenStore) FindAll(context.Context, repository.Collection) ([][]byte, error) {
	return nil, errUnavailable
}

func (brokenStore) Insert(context.Context, repository.Collection, string, []byte) (string, error) {
	return "", errUnavailable
}

func (brokenStore) SetFields(context.Context, repository.Collection, string, map[string]any) (repository.UpdateResult, error) {
	return repository.UpdateResult{}, errUnavailable
}

func (brokenStore) PushElement(context.Context, repository.Collection, string, string, any) (repository.UpdateResult, error) {
	return repository.UpdateResult{}, errUnavailable
}

func (brokenStore) PullElement(context.Context, repository.Collection, string, string, repository.Match) (repository.UpdateResult, error) {
	return repository.UpdateResult{}, errUnavailable
}

func (brokenStore) Delete(context.Context, repository.Collection, string) (repository.UpdateResult, error) {
	return repository.UpdateResult{}, errUnavailable
}

func TestPlayerRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(memory.NewStore())

	created, err := repo.Create(ctx, &domain.Player{ID: "PLR123456", FirstName: "Bradley", Surname: "Plater"})
	require.NoError(t, err)
	assert.Equal(t, "PLR123456", created.ID)
	assert.NotNil(t, created.Teams)
	assert.Empty(t, created.Teams)

	require.NoError(t, repo.UpdateDetails(ctx, "PLR123456", "Brad", "Plater"))
	got, err := repo.GetByID(ctx, "PLR123456")
	require.NoError(t, err)
	assert.Equal(t, "Brad", got.FirstName)

	players, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 1)

	require.NoError(t, repo.Delete(ctx, "PLR123456"))
	_, err = repo.GetByID(ctx, "PLR123456")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "PLR123456"), domain.ErrPlayerNotFound)
	assert.ErrorIs(t, repo.UpdateDetails(ctx, "PLR123456", "A", "B"), domain.ErrPlayerNotFound)
}

func TestPlayerRepository_TeamLinks(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(memory.NewStore())
	_, err := repo.Create(ctx, &domain.Player{ID: "PLR123456", FirstName: "Bradley", Surname: "Plater"})
	require.NoError(t, err)

	require.NoError(t, repo.AttachTeam(ctx, "PLR123456", domain.PlayerTeam{TeamID: "TM123456", Number: 13}))
	got, err := repo.GetByID(ctx, "PLR123456")
	require.NoError(t, err)
	assert.Equal(t, []domain.PlayerTeam{{TeamID: "TM123456", Number: 13}}, got.Teams)

	require.NoError(t, repo.DetachTeam(ctx, "PLR123456", "TM123456"))
	assert.ErrorIs(t, repo.DetachTeam(ctx, "PLR123456", "TM123456"), domain.ErrTeamLinkNotRemoved)

	// игрок исчез: запись ничего не изменила
	err = repo.AttachTeam(ctx, "PLR999999", domain.PlayerTeam{TeamID: "TM123456", Number: 1})
	assert.ErrorIs(t, err, domain.ErrTeamLinkNotAdded)
}

func TestTeamRepository_PlayerLinks(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(memory.NewStore())
	_, err := repo.Create(ctx, &domain.Team{ID: "TM123456", Name: "Peterborough Phantoms"})
	require.NoError(t, err)

	require.NoError(t, repo.AttachPlayer(ctx, "TM123456", domain.TeamPlayer{PlayerID: "PLR654321", Number: 4}))
	require.NoError(t, repo.AttachPlayer(ctx, "TM123456", domain.TeamPlayer{PlayerID: "PLR123456", Number: 13}))

	team, err := repo.GetByID(ctx, "TM123456")
	require.NoError(t, err)
	assert.Equal(t, []domain.TeamPlayer{
		{PlayerID: "PLR654321", Number: 4},
		{PlayerID: "PLR123456", Number: 13},
	}, team.Players)

	require.NoError(t, repo.DetachPlayer(ctx, "TM123456", "PLR654321"))
	assert.ErrorIs(t, repo.DetachPlayer(ctx, "TM123456", "PLR654321"), domain.ErrPlayerLinkNotRemoved)
	assert.ErrorIs(t, repo.AttachPlayer(ctx, "TM000000", domain.TeamPlayer{PlayerID: "PLR1", Number: 1}), domain.ErrPlayerLinkNotAdded)

	_, err = repo.GetByID(ctx, "TM000000")
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestRepositories_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	players := NewPlayerRepository(brokenStore{})
	teams := NewTeamRepository(brokenStore{})

	// недоступное хранилище не выдается за отсутствие записи
	_, err := players.GetByID(ctx, "PLR123456")
	assert.ErrorIs(t, err, errUnavailable)
	assert.NotErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = teams.GetByID(ctx, "TM123456")
	assert.ErrorIs(t, err, errUnavailable)
	assert.NotErrorIs(t, err, domain.ErrTeamNotFound)

	err = players.AttachTeam(ctx, "PLR123456", domain.PlayerTeam{TeamID: "TM123456", Number: 1})
	assert.ErrorIs(t, err, domain.ErrTeamLinkNotAdded)
	assert.ErrorIs(t, err, errUnavailable)

	err = teams.DetachPlayer(ctx, "TM123456", "PLR123456")
	assert.ErrorIs(t, err, domain.ErrPlayerLinkNotRemoved)
	assert.ErrorIs(t, err, errUnavailable)
}

func TestAPIKeyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAPIKeyRepository(memory.NewStore())

	require.NoError(t, repo.Create(ctx, &domain.APIKey{ID: "KEY000001", Hash: "hash"}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.APIKey{ID: "KEY000001", Hash: "other"}), repository.ErrDuplicateID)

	keys, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "hash", keys[0].Hash)
}

func TestSeasonRepository_List(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewSeasonRepository(store)

	seasons, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, seasons)
	assert.Empty(t, seasons)

	_, err = store.Insert(ctx, repository.CollectionSeasons, "2023", []byte(`{"_id":"2023","name":"2023/24"}`))
	require.NoError(t, err)
	_, err = store.Insert(ctx, repository.CollectionSeasons, "2024", []byte(`{"_id":"2024","name":"2024/25"}`))
	require.NoError(t, err)

	seasons, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Season{
		{ID: "2023", Name: "2023/24"},
		{ID: "2024", Name: "2024/25"},
	}, seasons)

	_, err = NewSeasonRepository(brokenStore{}).List(ctx)
	assert.ErrorIs(t, err, errUnavailable)
}
