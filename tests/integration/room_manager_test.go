package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
	"github.com/alouani-moncif/secret-word-society-replit/internal/services"
	"github.com/alouani-moncif/secret-word-society-replit/tests/helpers"
)

func TestCreateRoom(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)

	room, admin, err := rm.CreateRoom("session-1", "Alice")
	require.NoError(t, err)

	assert.Regexp(t, `^[A-Z0-9]{6}$`, room.GetString("code"))
	assert.Equal(t, string(models.StatusLobby), room.GetString("status"))
	assert.Equal(t, string(models.PhaseWaiting), room.GetString("phase"))
	assert.Equal(t, 0, room.GetInt("current_round"))

	assert.Equal(t, "Alice", admin.GetString("name"))
	assert.True(t, admin.GetBool("is_admin"))
	assert.True(t, admin.GetBool("is_alive"))
	assert.Empty(t, admin.GetString("role"))
}

func TestCreateRoom_RejectsBadName(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)

	_, _, err := rm.CreateRoom("session-1", "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, _, err = rm.CreateRoom("session-1", "<script>alert(1)</script>")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestGetRoomByCode(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)

	room, _, err := rm.CreateRoom("session-1", "Alice")
	require.NoError(t, err)

	t.Run("finds active room, case insensitive", func(t *testing.T) {
		found, err := rm.GetRoomByCode(room.GetString("code"))
		require.NoError(t, err)
		assert.Equal(t, room.Id, found.Id)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := rm.GetRoomByCode("ZZZZZ2")
		assert.ErrorIs(t, err, services.ErrRoomNotFound)
	})

	t.Run("malformed code", func(t *testing.T) {
		_, err := rm.GetRoomByCode("nope")
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}

func TestJoinRoom(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)

	room, _, err := rm.CreateRoom("session-1", "Alice")
	require.NoError(t, err)

	t.Run("joins lobby", func(t *testing.T) {
		bob, err := rm.JoinRoom(room.Id, "session-2", "Bob")
		require.NoError(t, err)
		assert.False(t, bob.GetBool("is_admin"))
		assert.True(t, bob.GetBool("is_alive"))
	})

	t.Run("rejoining with same session keeps the seat", func(t *testing.T) {
		again, err := rm.JoinRoom(room.Id, "session-2", "Bob")
		require.NoError(t, err)

		view, err := rm.GetRoomView(room.Id)
		require.NoError(t, err)
		assert.Len(t, view.Players, 2)
		assert.Equal(t, "Bob", again.GetString("name"))
	})

	t.Run("players listed in join order", func(t *testing.T) {
		view, err := rm.GetRoomView(room.Id)
		require.NoError(t, err)
		require.Len(t, view.Players, 2)
		assert.Equal(t, "Alice", view.Players[0].Name)
		assert.Equal(t, "Bob", view.Players[1].Name)
	})
}

func TestJoinRoom_Full(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)

	roomID, _ := helpers.CreateTestRoomWithPlayers(t, server.App, 10)

	_, err := rm.JoinRoom(roomID, "session-11", "Latecomer")
	assert.ErrorIs(t, err, services.ErrRoomFull)
}

func TestJoinRoom_GameAlreadyStarted(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)
	engine := helpers.NewSeededEngine(server.App, 1)

	roomID, playerIDs := helpers.CreateTestRoomWithPlayers(t, server.App, 3)
	require.NoError(t, engine.StartGame(roomID, playerIDs[0]))

	_, err := rm.JoinRoom(roomID, "session-99", "Latecomer")
	assert.ErrorIs(t, err, services.ErrWrongPhase)
}

func TestRemovePlayer(t *testing.T) {
	server := helpers.NewTestServer(t)
	rm := services.NewRoomManager(server.App)

	roomID, playerIDs := helpers.CreateTestRoomWithPlayers(t, server.App, 3)

	t.Run("admin removes a player in the lobby", func(t *testing.T) {
		err := rm.RemovePlayer(roomID, helpers.SessionFor(1), playerIDs[2])
		require.NoError(t, err)

		view, err := rm.GetRoomView(roomID)
		require.NoError(t, err)
		assert.Len(t, view.Players, 2)
	})

	t.Run("non-admin cannot remove", func(t *testing.T) {
		err := rm.RemovePlayer(roomID, helpers.SessionFor(2), playerIDs[0])
		assert.ErrorIs(t, err, services.ErrNotAdmin)
	})

	t.Run("admin cannot remove themselves", func(t *testing.T) {
		err := rm.RemovePlayer(roomID, helpers.SessionFor(1), playerIDs[0])
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}
