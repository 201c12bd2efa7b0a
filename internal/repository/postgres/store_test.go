package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

func TestTable(t *testing.T) {
	tbl, err := table(repository.CollectionTeams)
	require.NoError(t, err)
	assert.Equal(t, `"teams"`, tbl)

	tbl, err = table(repository.CollectionAPIKeys)
	require.NoError(t, err)
	assert.Equal(t, `"api_keys"`, tbl)

	_, err = table(repository.Collection("teams; DROP TABLE players"))
	assert.ErrorIs(t, err, repository.ErrUnknownCollection)
}
