package domain

// Season представляет сезон лиги
type Season struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
