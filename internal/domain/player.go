package domain

// Player представляет игрока лиги
type Player struct {
	ID        string       `json:"_id"`
	FirstName string       `json:"firstName"`
	Surname   string       `json:"surname"`
	Teams     []PlayerTeam `json:"teams"`
}

// PlayerTeam представляет команду в составе игрока вместе с его номером в этой команде
type PlayerTeam struct {
	TeamID string `json:"teamId"`
	Number int    `json:"number"`
}

// OnTeam проверяет, числится ли игрок в указанной команде
func (p *Player) OnTeam(teamID string) bool {
	for _, t := range p.Teams {
		if t.TeamID == teamID {
			return true
		}
	}
	return false
}
