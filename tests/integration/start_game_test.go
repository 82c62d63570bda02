package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alouani-moncif/secret-word-society-replit/internal/game"
	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
	"github.com/alouani-moncif/secret-word-society-replit/internal/services"
	"github.com/alouani-moncif/secret-word-society-replit/tests/helpers"
)

func TestStartGame(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)
	engine := helpers.NewSeededEngine(server.App, 1)

	roomID, playerIDs := helpers.CreateTestRoomWithPlayers(t, server.App, 4)

	require.NoError(t, engine.StartGame(roomID, playerIDs[0]))

	view, err := rm.GetRoomView(roomID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPlaying, view.Room.Status)
	assert.Equal(t, models.PhaseDescribing, view.Room.Phase)
	assert.Equal(t, 1, view.Room.CurrentRound)
	require.NotNil(t, view.Room.Words)
	assert.NotEmpty(t, view.Room.Words.Normal)
	assert.NotEmpty(t, view.Room.Words.Undercover)

	// 4 players: 1 undercover, 0 white, 3 normal
	counts := map[models.PlayerRole]int{}
	for _, p := range view.Players {
		require.NotEmpty(t, p.Role, "player %s has no role", p.Name)
		require.NotEmpty(t, p.Word, "player %s has no word", p.Name)
		assert.True(t, p.IsAlive)
		assert.Empty(t, p.Description)
		assert.False(t, p.HasVoted)
		assert.Zero(t, p.Votes)
		counts[p.Role]++

		switch p.Role {
		case models.RoleNormal:
			assert.Equal(t, view.Room.Words.Normal, p.Word)
		case models.RoleUndercover:
			assert.Equal(t, view.Room.Words.Undercover, p.Word)
		case models.RoleWhite:
			assert.Equal(t, game.WhiteWord, p.Word)
		}
	}
	assert.Equal(t, 1, counts[models.RoleUndercover])
	assert.Equal(t, 0, counts[models.RoleWhite])
	assert.Equal(t, 3, counts[models.RoleNormal])
}

func TestStartGame_WhiteRoleAtSixPlayers(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)
	engine := helpers.NewSeededEngine(server.App, 2)

	roomID, playerIDs := helpers.CreateTestRoomWithPlayers(t, server.App, 6)
	require.NoError(t, engine.StartGame(roomID, playerIDs[0]))

	view, err := rm.GetRoomView(roomID)
	require.NoError(t, err)

	counts := map[models.PlayerRole]int{}
	for _, p := range view.Players {
		counts[p.Role]++
	}
	assert.Equal(t, 1, counts[models.RoleUndercover])
	assert.Equal(t, 1, counts[models.RoleWhite])
	assert.Equal(t, 4, counts[models.RoleNormal])
}

func TestStartGame_InsufficientPlayers(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)
	engine := helpers.NewSeededEngine(server.App, 1)

	roomID, playerIDs := helpers.CreateTestRoomWithPlayers(t, server.App, 2)

	err := engine.StartGame(roomID, playerIDs[0])
	assert.ErrorIs(t, err, services.ErrInsufficientPlayers)

	// Room state must be untouched
	view, viewErr := rm.GetRoomView(roomID)
	require.NoError(t, viewErr)
	assert.Equal(t, models.StatusLobby, view.Room.Status)
	for _, p := range view.Players {
		assert.Empty(t, p.Role)
		assert.Empty(t, p.Word)
	}
}

func TestStartGame_OnlyAdmin(t *testing.T) {
	server := helpers.NewTestServer(t)
	engine := helpers.NewSeededEngine(server.App, 1)

	roomID, playerIDs := helpers.CreateTestRoomWithPlayers(t, server.App, 4)

	err := engine.StartGame(roomID, playerIDs[1])
	assert.ErrorIs(t, err, services.ErrNotAdmin)
}

func TestStartGame_AlreadyPlaying(t *testing.T) {
	server := helpers.NewTestServer(t)
	engine := helpers.NewSeededEngine(server.App, 1)

	roomID, playerIDs := helpers.CreateTestRoomWithPlayers(t, server.App, 4)
	require.NoError(t, engine.StartGame(roomID, playerIDs[0]))

	err := engine.StartGame(roomID, playerIDs[0])
	assert.ErrorIs(t, err, services.ErrWrongPhase)
}
