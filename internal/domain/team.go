package domain

// Team представляет хоккейную команду с её составом
type Team struct {
	ID      string       `json:"_id"`
	Name    string       `json:"name"`
	Players []TeamPlayer `json:"players"`
}

// TeamPlayer представляет игрока в составе команды (используется в Team.Players)
type TeamPlayer struct {
	PlayerID string `json:"playerId"`
	Number   int    `json:"number"`
}

// HasPlayer проверяет, есть ли игрок в составе команды
func (t *Team) HasPlayer(playerID string) bool {
	for _, p := range t.Players {
		if p.PlayerID == playerID {
			return true
		}
	}
	return false
}

// NumberInUse проверяет, занят ли игровой номер в команде
func (t *Team) NumberInUse(number int) bool {
	for _, p := range t.Players {
		if p.Number == number {
			return true
		}
	}
	return false
}
