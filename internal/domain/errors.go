package domain

import (
	"errors"
	"fmt"
)

// Доменные ошибки лиги
var (
	// ErrTeamNotFound возвращается когда команда не найдена
	ErrTeamNotFound = errors.New("team not found")

	// ErrPlayerNotFound возвращается когда игрок не найден
	ErrPlayerNotFound = errors.New("player not found")

	// ErrTeamNotCreated возвращается когда созданная команда не читается из хранилища
	ErrTeamNotCreated = errors.New("team could not be created")

	// ErrPlayerNotCreated возвращается когда созданный игрок не читается из хранилища
	ErrPlayerNotCreated = errors.New("player could not be created")

	// ErrPlayerAlreadyOnTeam возвращается при попытке повторно добавить игрока в команду
	ErrPlayerAlreadyOnTeam = errors.New("player is already in team")

	// ErrPlayerNumberInUse возвращается когда номер уже занят другим игроком команды
	ErrPlayerNumberInUse = errors.New("player number is already in use")

	// ErrPlayerNotOnTeam возвращается при попытке убрать игрока, которого нет в команде
	ErrPlayerNotOnTeam = errors.New("player is not on team")

	// ErrPlayerNotAdded возвращается когда запись в состав команды не прошла
	ErrPlayerNotAdded = errors.New("player could not be added to team")

	// ErrTeamNotAdded возвращается когда команда не записана игроку (после записи в состав)
	ErrTeamNotAdded = errors.New("team could not be added to player")

	// ErrPlayerLinkNotAdded возвращается хранилищем команд, если элемент состава не записан
	ErrPlayerLinkNotAdded = errors.New("player link could not be added to team record")

	// ErrTeamLinkNotAdded возвращается хранилищем игроков, если элемент списка команд не записан
	ErrTeamLinkNotAdded = errors.New("team link could not be added to player record")

	// ErrPlayerLinkNotRemoved возвращается когда игрок не удален из состава команды
	ErrPlayerLinkNotRemoved = errors.New("player could not be removed from team")

	// ErrTeamLinkNotRemoved возвращается когда команда не удалена из списка команд игрока
	ErrTeamLinkNotRemoved = errors.New("team could not be removed from player")

	// ErrPartiallyApplied помечает изменение состава, записанное только на стороне команды
	ErrPartiallyApplied = errors.New("roster change partially applied")

	// ErrUnauthorized возвращается при неверном или отсутствующем API ключе
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// PartialWriteError описывает изменение состава, которое дошло до команды, но не до игрока.
// Сравнивается через errors.Is и с ErrPartiallyApplied, и с исходным видом ошибки.
type PartialWriteError struct {
	TeamID   string
	PlayerID string
	Err      error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("team %s updated but player %s was not: %v", e.TeamID, e.PlayerID, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

// Is сопоставляет ошибку с ErrPartiallyApplied
func (e *PartialWriteError) Is(target error) bool {
	return target == ErrPartiallyApplied
}

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeTeamNotFound         ErrorCode = "TEAM_NOT_FOUND"
	CodePlayerNotFound       ErrorCode = "PLAYER_NOT_FOUND"
	CodeTeamNotCreated       ErrorCode = "TEAM_NOT_CREATED"
	CodePlayerNotCreated     ErrorCode = "PLAYER_NOT_CREATED"
	CodePlayerAlreadyOnTeam  ErrorCode = "PLAYER_ALREADY_IN_TEAM"
	CodePlayerNumberInUse    ErrorCode = "PLAYER_NUMBER_IN_USE"
	CodePlayerNotOnTeam      ErrorCode = "PLAYER_NOT_ON_TEAM"
	CodePlayerNotAdded       ErrorCode = "PLAYER_NOT_ADDED"
	CodeTeamNotAdded         ErrorCode = "TEAM_NOT_ADDED"
	CodePlayerLinkNotRemoved ErrorCode = "PLAYER_NOT_REMOVED"
	CodeTeamLinkNotRemoved   ErrorCode = "TEAM_NOT_REMOVED"
	CodeUnauthorized         ErrorCode = "UNAUTHORIZED"
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API.
// Ошибки координатора проверяются раньше ошибок хранилища, которые они оборачивают.
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrTeamNotAdded):
		return CodeTeamNotAdded
	case errors.Is(err, ErrPlayerNotAdded):
		return CodePlayerNotAdded
	case errors.Is(err, ErrTeamLinkNotRemoved):
		return CodeTeamLinkNotRemoved
	case errors.Is(err, ErrPlayerLinkNotRemoved):
		return CodePlayerLinkNotRemoved
	case errors.Is(err, ErrTeamNotFound):
		return CodeTeamNotFound
	case errors.Is(err, ErrPlayerNotFound):
		return CodePlayerNotFound
	case errors.Is(err, ErrPlayerAlreadyOnTeam):
		return CodePlayerAlreadyOnTeam
	case errors.Is(err, ErrPlayerNumberInUse):
		return CodePlayerNumberInUse
	case errors.Is(err, ErrPlayerNotOnTeam):
		return CodePlayerNotOnTeam
	case errors.Is(err, ErrTeamNotCreated):
		return CodeTeamNotCreated
	case errors.Is(err, ErrPlayerNotCreated):
		return CodePlayerNotCreated
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	default:
		return CodeInternal
	}
}
