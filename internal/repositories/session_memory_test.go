package repositories

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()

	s, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.SaveSession(ctx, models.Session{Token: "tok", User: json.RawMessage(`{"id":1}`)}))
	s, err = repo.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "tok", s.Token)
	assert.JSONEq(t, `{"id":1}`, string(s.User))

	require.NoError(t, repo.SetSelectedGameID(ctx, "12"))
	id, err := repo.GetSelectedGameID(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GameID("12"), id)

	require.NoError(t, repo.SetSpecialFlow(ctx, models.SpecialFlowDaga))
	flag, err := repo.GetSpecialFlow(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SpecialFlowDaga, flag)

	require.NoError(t, repo.SetSelectedGameID(ctx, ""))
	id, _ = repo.GetSelectedGameID(ctx)
	assert.Empty(t, id)

	require.NoError(t, repo.ClearSession(ctx))
	s, _ = repo.GetSession(ctx)
	assert.Nil(t, s)
	flag, _ = repo.GetSpecialFlow(ctx)
	assert.Empty(t, flag)
}

func TestSessionMemoryRepository_NilUserStoredAsNull(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()

	require.NoError(t, repo.SaveSession(ctx, models.Session{Token: "tok"}))
	s, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "null", string(s.User))
}

func TestSessionMemoryRepository_LeadingZeroGameID(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()

	require.NoError(t, repo.SetSelectedGameID(ctx, "007"))
	id, err := repo.GetSelectedGameID(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GameID("007"), id)
}

func TestDecodeGameID(t *testing.T) {
	assert.Equal(t, models.GameID("12"), decodeGameID("12"))
	assert.Equal(t, models.GameID("sv388"), decodeGameID(`"sv388"`))
	assert.Equal(t, models.GameID("007"), decodeGameID(`"007"`))
	assert.Equal(t, models.GameID(""), decodeGameID("undefined"))
	assert.Equal(t, models.GameID(""), decodeGameID("{broken"))
	assert.Equal(t, models.GameID(""), decodeGameID(""))
}
