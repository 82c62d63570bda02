package services

import (
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
	"github.com/alouani-moncif/secret-word-society-replit/internal/security"
)

const roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomManager owns room and player persistence: creation, joining, lookups
// and read-only snapshots. Game-flow mutations live in GameEngine.
type RoomManager struct {
	app core.App
}

func NewRoomManager(app core.App) *RoomManager {
	return &RoomManager{
		app: app,
	}
}

// CreateRoom creates a new room with a unique join code and its admin player.
func (rm *RoomManager) CreateRoom(sessionID, adminName string) (*core.Record, *core.Record, error) {
	name, err := security.ValidatePlayerName(adminName)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	collection, err := rm.app.FindCollectionByNameOrId("rooms")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find rooms collection: %w", err)
	}

	code, err := rm.uniqueRoomCode()
	if err != nil {
		return nil, nil, err
	}

	record := core.NewRecord(collection)
	record.Set("code", code)
	record.Set("status", string(models.StatusLobby))
	record.Set("phase", string(models.PhaseWaiting))
	record.Set("current_round", 0)
	record.Set("created_at", time.Now())

	settingsJSON, err := json.Marshal(models.DefaultRoomSettings())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal room settings: %w", err)
	}
	record.Set("settings", settingsJSON)

	if err := rm.app.Save(record); err != nil {
		return nil, nil, fmt.Errorf("failed to save room record: %w", err)
	}

	admin, err := rm.addPlayer(rm.app, record.Id, sessionID, name, true)
	if err != nil {
		return nil, nil, err
	}

	return record, admin, nil
}

// JoinRoom adds a player to a lobby. Joining twice with the same session
// returns the existing player, so a reconnecting client keeps its seat.
func (rm *RoomManager) JoinRoom(roomID, sessionID, playerName string) (*core.Record, error) {
	name, err := security.ValidatePlayerName(playerName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var player *core.Record
	txErr := rm.app.RunInTransaction(func(txApp core.App) error {
		room, err := findRoom(txApp, roomID)
		if err != nil {
			return err
		}

		if existing, err := findPlayerBySession(txApp, roomID, sessionID); err == nil {
			player = existing
			return nil
		}

		if room.GetString("status") != string(models.StatusLobby) {
			return fmt.Errorf("%w: game already started", ErrWrongPhase)
		}

		players, err := findRoomPlayers(txApp, roomID)
		if err != nil {
			return err
		}
		if len(players) >= roomMaxPlayers(room) {
			return ErrRoomFull
		}

		player, err = rm.addPlayer(txApp, roomID, sessionID, name, false)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return player, nil
}

// RemovePlayer is the admin moderation hook: the admin can remove a player
// from the roster while the room is still in the lobby.
func (rm *RoomManager) RemovePlayer(roomID, adminSessionID, targetPlayerID string) error {
	return rm.app.RunInTransaction(func(txApp core.App) error {
		room, err := findRoom(txApp, roomID)
		if err != nil {
			return err
		}
		if room.GetString("status") != string(models.StatusLobby) {
			return fmt.Errorf("%w: players can only be removed in the lobby", ErrWrongPhase)
		}

		caller, err := findPlayerBySession(txApp, roomID, adminSessionID)
		if err != nil {
			return err
		}
		if !caller.GetBool("is_admin") {
			return ErrNotAdmin
		}
		if caller.Id == targetPlayerID {
			return fmt.Errorf("%w: admin cannot remove themselves", ErrInvalidInput)
		}

		target, err := txApp.FindRecordById("players", targetPlayerID)
		if err != nil || target.GetString("room_id") != roomID {
			return ErrPlayerNotFound
		}

		return txApp.Delete(target)
	})
}

// GetRoom retrieves a room record by ID.
func (rm *RoomManager) GetRoom(roomID string) (*core.Record, error) {
	return findRoom(rm.app, roomID)
}

// GetRoomByCode finds an active room by its human-entered join code.
func (rm *RoomManager) GetRoomByCode(code string) (*core.Record, error) {
	normalized, err := security.ValidateRoomCode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	record, err := rm.app.FindFirstRecordByFilter(
		"rooms",
		"code = {:code} && status != 'finished'",
		map[string]any{"code": normalized},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: no active room with code %s", ErrRoomNotFound, normalized)
	}
	return record, nil
}

// GetPlayerBySession resolves the caller's player record within a room.
func (rm *RoomManager) GetPlayerBySession(roomID, sessionID string) (*core.Record, error) {
	return findPlayerBySession(rm.app, roomID, sessionID)
}

// GetRoomView returns the read-only snapshot handed to clients: the room
// plus all its players ordered by join time.
func (rm *RoomManager) GetRoomView(roomID string) (*models.RoomView, error) {
	room, err := findRoom(rm.app, roomID)
	if err != nil {
		return nil, err
	}
	players, err := findRoomPlayers(rm.app, roomID)
	if err != nil {
		return nil, err
	}

	view := &models.RoomView{
		Room:    toRoomModel(room),
		Players: make([]*models.Player, 0, len(players)),
	}
	for _, p := range players {
		view.Players = append(view.Players, toPlayerModel(p))
	}
	return view, nil
}

func (rm *RoomManager) addPlayer(app core.App, roomID, sessionID, name string, isAdmin bool) (*core.Record, error) {
	collection, err := app.FindCollectionByNameOrId("players")
	if err != nil {
		return nil, fmt.Errorf("failed to find players collection: %w", err)
	}

	record := core.NewRecord(collection)
	record.Set("room_id", roomID)
	record.Set("session_id", sessionID)
	record.Set("name", name)
	record.Set("is_admin", isAdmin)
	record.Set("is_alive", true)
	record.Set("has_voted", false)
	record.Set("votes", 0)
	record.Set("joined_at", time.Now())

	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}
	return record, nil
}

// uniqueRoomCode generates a join code not claimed by any active room.
func (rm *RoomManager) uniqueRoomCode() (string, error) {
	for attempts := 0; attempts < 10; attempts++ {
		code, err := generateRoomCode()
		if err != nil {
			return "", err
		}
		_, err = rm.app.FindFirstRecordByFilter(
			"rooms",
			"code = {:code} && status != 'finished'",
			map[string]any{"code": code},
		)
		if err != nil {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique room code")
}

func generateRoomCode() (string, error) {
	code := make([]byte, security.RoomCodeLength)
	for i := range code {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(roomCodeChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}
		code[i] = roomCodeChars[n.Int64()]
	}
	return string(code), nil
}

// Shared record queries. These take the app explicitly so GameEngine can
// reuse them inside its transactions.

func findRoom(app core.App, roomID string) (*core.Record, error) {
	record, err := app.FindRecordById("rooms", roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	return record, nil
}

func findRoomPlayers(app core.App, roomID string) ([]*core.Record, error) {
	records, err := app.FindRecordsByFilter(
		"players",
		"room_id = {:roomId}",
		"joined_at",
		100,
		0,
		map[string]any{"roomId": roomID},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	return records, nil
}

func findPlayerBySession(app core.App, roomID, sessionID string) (*core.Record, error) {
	record, err := app.FindFirstRecordByFilter(
		"players",
		"room_id = {:roomId} && session_id = {:session}",
		map[string]any{"roomId": roomID, "session": sessionID},
	)
	if err != nil {
		return nil, ErrPlayerNotFound
	}
	return record, nil
}

func roomMaxPlayers(room *core.Record) int {
	settings := models.DefaultRoomSettings()
	if raw := room.GetString("settings"); raw != "" {
		if err := json.Unmarshal([]byte(raw), settings); err != nil {
			return models.DefaultRoomSettings().MaxPlayers
		}
	}
	if settings.MaxPlayers <= 0 {
		return models.DefaultRoomSettings().MaxPlayers
	}
	return settings.MaxPlayers
}

func toRoomModel(record *core.Record) *models.Room {
	room := &models.Room{
		ID:           record.Id,
		Code:         record.GetString("code"),
		Status:       models.RoomStatus(record.GetString("status")),
		Phase:        models.GamePhase(record.GetString("phase")),
		CurrentRound: record.GetInt("current_round"),
		GameResult:   models.GameResult(record.GetString("game_result")),
		CreatedAt:    record.GetDateTime("created_at").Time(),
	}

	if raw := record.GetString("words"); raw != "" {
		var pair models.WordPair
		if err := json.Unmarshal([]byte(raw), &pair); err == nil && pair.Normal != "" {
			room.Words = &pair
		}
	}
	if raw := record.GetString("settings"); raw != "" {
		var settings models.RoomSettings
		if err := json.Unmarshal([]byte(raw), &settings); err == nil {
			room.Settings = &settings
		}
	}
	return room
}

func toPlayerModel(record *core.Record) *models.Player {
	return &models.Player{
		ID:          record.Id,
		Name:        record.GetString("name"),
		IsAdmin:     record.GetBool("is_admin"),
		IsAlive:     record.GetBool("is_alive"),
		Role:        models.PlayerRole(record.GetString("role")),
		Word:        record.GetString("word"),
		Description: record.GetString("description"),
		HasVoted:    record.GetBool("has_voted"),
		Votes:       record.GetInt("votes"),
		JoinedAt:    record.GetDateTime("joined_at").Time(),
	}
}
