package domain

// APIKey представляет сохраненный bcrypt-хэш API ключа
type APIKey struct {
	ID   string `json:"_id"`
	Hash string `json:"key"`
}
