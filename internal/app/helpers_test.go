package app

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradleyplater/HockeyTrackerV2/internal/config"
	"github.com/bradleyplater/HockeyTrackerV2/internal/domain"
)

const testAPIKey = "league-test-key"

// Тестовые структуры, повторяющие JSON API
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Partial bool   `json:"partial"`
	} `json:"error"`
}

type tokenBody struct {
	Token string `json:"token"`
}

func baseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:               "127.0.0.1",
			Port:               "0",
			CORSAllowedOrigins: []string{"*"},
		},
		Storage: config.StorageConfig{Driver: config.StorageDriverMemory},
		Auth: config.AuthConfig{
			APIKey:          testAPIKey,
			JWTSecret:       "test-jwt-secret",
			ExpirationHours: 1,
		},
		Log: config.LogConfig{Level: "error"},
	}
}

// apiClient отправляет запросы к API с заданными заголовками авторизации
type apiClient struct {
	t       *testing.T
	baseURL string
	headers map[string]string
}

func (c apiClient) do(method, path string, body any) (int, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+"/api/v2"+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var v T
	require.NoError(t, sonic.Unmarshal(raw, &v), string(raw))
	return v
}

func assertErrorCode(t *testing.T, wantStatus int, wantCode string, status int, raw []byte) errorBody {
	t.Helper()

	assert.Equal(t, wantStatus, status, string(raw))
	body := decode[errorBody](t, raw)
	assert.Equal(t, wantCode, body.Error.Code)
	return body
}

// exerciseLeagueAPI проходит по основным сценариям работы с игроками и составами
func exerciseLeagueAPI(t *testing.T, baseURL string) {
	anon := apiClient{t: t, baseURL: baseURL}
	keyed := apiClient{t: t, baseURL: baseURL, headers: map[string]string{"x-api-key": testAPIKey}}

	status, raw := anon.do(http.MethodGet, "/liveness", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))

	status, raw = anon.do(http.MethodGet, "/seasons", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	status, _ = anon.do(http.MethodGet, "/team", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, raw = anon.do(http.MethodPost, "/auth/token", nil)
	assertErrorCode(t, http.StatusUnauthorized, "UNAUTHORIZED", status, raw)

	status, raw = keyed.do(http.MethodPost, "/auth/token", nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	token := decode[tokenBody](t, raw).Token
	require.NotEmpty(t, token)
	bearer := apiClient{t: t, baseURL: baseURL, headers: map[string]string{"Authorization": "Bearer " + token}}

	// Игроки
	status, raw = keyed.do(http.MethodPost, "/player", map[string]string{"firstName": "Bradley", "surname": "Plater"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	first := decode[domain.Player](t, raw)
	assert.Regexp(t, `^PLR\d{6}$`, first.ID)
	assert.Empty(t, first.Teams)

	status, raw = bearer.do(http.MethodPost, "/player", map[string]string{"firstName": "Jonny", "surname": "Greenwood"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	second := decode[domain.Player](t, raw)

	status, raw = keyed.do(http.MethodPost, "/player", map[string]string{"firstName": "J", "surname": "Greenwood"})
	assertErrorCode(t, http.StatusBadRequest, "BAD_REQUEST", status, raw)

	// Команда
	status, raw = bearer.do(http.MethodPost, "/team", map[string]string{"name": "Sheffield Steelers"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	team := decode[domain.Team](t, raw)
	assert.Regexp(t, `^TM\d{6}$`, team.ID)

	// Добавление в состав
	status, raw = keyed.do(http.MethodPatch, "/team/addplayer/"+team.ID, map[string]any{"playerId": first.ID, "number": 13})
	require.Equal(t, http.StatusOK, status, string(raw))
	updated := decode[domain.Team](t, raw)
	assert.Equal(t, []domain.TeamPlayer{{PlayerID: first.ID, Number: 13}}, updated.Players)

	status, raw = keyed.do(http.MethodGet, "/player/"+first.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []domain.PlayerTeam{{TeamID: team.ID, Number: 13}}, decode[domain.Player](t, raw).Teams)

	status, raw = keyed.do(http.MethodPatch, "/team/addplayer/"+team.ID, map[string]any{"playerId": first.ID, "number": 13})
	assertErrorCode(t, http.StatusBadRequest, string(domain.CodePlayerAlreadyOnTeam), status, raw)

	status, raw = keyed.do(http.MethodPatch, "/team/addplayer/"+team.ID, map[string]any{"playerId": second.ID, "number": 13})
	assertErrorCode(t, http.StatusBadRequest, string(domain.CodePlayerNumberInUse), status, raw)

	status, raw = keyed.do(http.MethodPatch, "/team/addplayer/"+team.ID, map[string]any{"playerId": second.ID, "number": 100})
	assertErrorCode(t, http.StatusBadRequest, "BAD_REQUEST", status, raw)

	status, raw = keyed.do(http.MethodPatch, "/team/addplayer/"+team.ID, map[string]any{"playerId": second.ID})
	assertErrorCode(t, http.StatusBadRequest, "BAD_REQUEST", status, raw)

	status, raw = keyed.do(http.MethodPatch, "/team/addplayer/"+team.ID, map[string]any{"playerId": "PLR000000", "number": 7})
	assertErrorCode(t, http.StatusNotFound, string(domain.CodePlayerNotFound), status, raw)

	status, raw = keyed.do(http.MethodPatch, "/team/addplayer/TM000000", map[string]any{"playerId": second.ID, "number": 7})
	assertErrorCode(t, http.StatusNotFound, string(domain.CodeTeamNotFound), status, raw)

	status, raw = keyed.do(http.MethodPatch, "/team/addplayer/"+team.ID, map[string]any{"playerId": second.ID, "number": 0})
	require.Equal(t, http.StatusOK, status, string(raw))

	status, raw = keyed.do(http.MethodGet, "/team/"+team.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[domain.Team](t, raw).Players, 2)

	// Удаление из состава
	status, raw = keyed.do(http.MethodPatch, "/team/removeplayer/"+team.ID, map[string]string{"playerId": first.ID})
	require.Equal(t, http.StatusNoContent, status, string(raw))

	status, raw = keyed.do(http.MethodPatch, "/team/removeplayer/"+team.ID, map[string]string{"playerId": first.ID})
	assertErrorCode(t, http.StatusBadRequest, string(domain.CodePlayerNotOnTeam), status, raw)

	status, raw = keyed.do(http.MethodGet, "/player/"+first.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[domain.Player](t, raw).Teams)

	// Списки
	status, raw = keyed.do(http.MethodGet, "/team", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]domain.Team](t, raw), 1)

	status, raw = keyed.do(http.MethodGet, "/player", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]domain.Player](t, raw), 2)

	// Изменение и удаление игрока
	status, raw = keyed.do(http.MethodPatch, "/player/"+first.ID+"/details", map[string]string{"firstName": "Brad", "surname": "Plater"})
	require.Equal(t, http.StatusNoContent, status, string(raw))

	status, raw = keyed.do(http.MethodGet, "/player/"+first.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Brad", decode[domain.Player](t, raw).FirstName)

	status, raw = keyed.do(http.MethodGet, "/player/not-an-id", nil)
	assertErrorCode(t, http.StatusBadRequest, "BAD_REQUEST", status, raw)

	status, _ = keyed.do(http.MethodDelete, "/player/"+first.ID, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, raw = keyed.do(http.MethodGet, "/player/"+first.ID, nil)
	assertErrorCode(t, http.StatusNotFound, string(domain.CodePlayerNotFound), status, raw)

	status, raw = keyed.do(http.MethodDelete, "/player/"+first.ID, nil)
	assertErrorCode(t, http.StatusNotFound, string(domain.CodePlayerNotFound), status, raw)
}
