package repository

import (
	"context"
	"errors"

	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
)

// Collection именует коллекцию документов в хранилище
type Collection string

// Коллекции хранилища
const (
	CollectionPlayers Collection = "players"
	CollectionTeams   Collection = "teams"
	CollectionAPIKeys Collection = "api_keys"
	CollectionSeasons Collection = "seasons"
)

// Collections перечисляет все известные коллекции
var Collections = []Collection{CollectionPlayers, CollectionTeams, CollectionAPIKeys, CollectionSeasons}

// Valid проверяет, что коллекция известна хранилищу
func (c Collection) Valid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

var (
	// ErrNoDocument возвращается когда документ с таким id отсутствует
	ErrNoDocument = errors.New("document not found")

	// ErrDuplicateID возвращается при вставке документа с уже занятым id
	ErrDuplicateID = errors.New("document id already exists")

	// ErrUnknownCollection возвращается при обращении к незарегистрированной коллекции
	ErrUnknownCollection = errors.New("unknown collection")
)

// UpdateResult содержит количество найденных и измененных документов
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// Match задает условие удаления элемента массива: поле Key равно Value
type Match struct {
	Key   string
	Value string
}

// Store определяет примитивы документного хранилища.
// Каждая операция атомарна только в пределах одного документа одной коллекции.
type Store interface {
	// FindByID возвращает тело документа или ErrNoDocument
	FindByID(ctx context.Context, coll Collection, id string) ([]byte, error)

	// FindAll возвращает все документы коллекции в порядке вставки
	FindAll(ctx context.Context, coll Collection) ([][]byte, error)

	// Insert сохраняет новый документ, ErrDuplicateID если id занят
	Insert(ctx context.Context, coll Collection, id string, doc []byte) (string, error)

	// SetFields перезаписывает поля верхнего уровня документа
	SetFields(ctx context.Context, coll Collection, id string, fields map[string]any) (UpdateResult, error)

	// PushElement добавляет элемент в конец массива arrayField
	PushElement(ctx context.Context, coll Collection, id, arrayField string, element any) (UpdateResult, error)

	// PullElement удаляет из массива arrayField все элементы, подходящие под match
	PullElement(ctx context.Context, coll Collection, id, arrayField string, match Match) (UpdateResult, error)

	// Delete удаляет документ целиком
	Delete(ctx context.Context, coll Collection, id string) (UpdateResult, error)
}

// PlayerRepository определяет методы для работы с записями игроков
type PlayerRepository interface {
	// Create сохраняет нового игрока и возвращает сохраненную запись
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)

	// GetByID получает игрока по ID
	GetByID(ctx context.Context, playerID string) (*domain.Player, error)

	// List возвращает всех игроков
	List(ctx context.Context) ([]*domain.Player, error)

	// Delete удаляет игрока целиком
	Delete(ctx context.Context, playerID string) error

	// UpdateDetails обновляет имя и фамилию игрока
	UpdateDetails(ctx context.Context, playerID, firstName, surname string) error

	// AttachTeam добавляет команду в список команд игрока
	AttachTeam(ctx context.Context, playerID string, team domain.PlayerTeam) error

	// DetachTeam убирает команду из списка команд игрока
	DetachTeam(ctx context.Context, playerID, teamID string) error
}

// TeamRepository определяет методы для работы с записями команд
type TeamRepository interface {
	// Create сохраняет новую команду и возвращает сохраненную запись
	Create(ctx context.Context, team *domain.Team) (*domain.Team, error)

	// GetByID получает команду со всем составом
	GetByID(ctx context.Context, teamID string) (*domain.Team, error)

	// List возвращает все команды
	List(ctx context.Context) ([]*domain.Team, error)

	// AttachPlayer добавляет игрока в состав команды
	AttachPlayer(ctx context.Context, teamID string, player domain.TeamPlayer) error

	// DetachPlayer убирает игрока из состава команды
	DetachPlayer(ctx context.Context, teamID, playerID string) error
}

// APIKeyRepository определяет методы для работы с хэшами API ключей
type APIKeyRepository interface {
	// Create сохраняет новый хэш ключа
	Create(ctx context.Context, key *domain.APIKey) error

	// List возвращает все сохраненные ключи
	List(ctx context.Context) ([]*domain.APIKey, error)
}

// SeasonRepository определяет методы для чтения сезонов
type SeasonRepository interface {
	// List возвращает все сезоны
	List(ctx context.Context) ([]*domain.Season, error)
}
