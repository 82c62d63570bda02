package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/alouani-moncif/secret-word-society-replit/internal/services"
)

type RoomHandlers struct {
	roomManager *services.RoomManager
}

func NewRoomHandlers(rm *services.RoomManager) *RoomHandlers {
	return &RoomHandlers{roomManager: rm}
}

// CreateRoom creates a room and seats the caller as its admin.
func (h *RoomHandlers) CreateRoom(re *core.RequestEvent) error {
	session := sessionID(re)
	if session == "" {
		return re.JSON(http.StatusUnauthorized, map[string]string{"error": "missing session"})
	}

	data := struct {
		Name string `json:"name" form:"name"`
	}{}
	if err := re.BindBody(&data); err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	room, admin, err := h.roomManager.CreateRoom(session, data.Name)
	if err != nil {
		return apiError(re, err)
	}

	return re.JSON(http.StatusCreated, map[string]string{
		"roomId":   room.Id,
		"code":     room.GetString("code"),
		"playerId": admin.Id,
	})
}

// JoinRoom seats the caller in the room matching the join code.
func (h *RoomHandlers) JoinRoom(re *core.RequestEvent) error {
	session := sessionID(re)
	if session == "" {
		return re.JSON(http.StatusUnauthorized, map[string]string{"error": "missing session"})
	}

	data := struct {
		Code string `json:"code" form:"code"`
		Name string `json:"name" form:"name"`
	}{}
	if err := re.BindBody(&data); err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	room, err := h.roomManager.GetRoomByCode(data.Code)
	if err != nil {
		return apiError(re, err)
	}

	player, err := h.roomManager.JoinRoom(room.Id, session, data.Name)
	if err != nil {
		return apiError(re, err)
	}

	return re.JSON(http.StatusOK, map[string]string{
		"roomId":   room.Id,
		"playerId": player.Id,
	})
}

// RoomView returns the read-only room snapshot.
func (h *RoomHandlers) RoomView(re *core.RequestEvent) error {
	roomID := re.Request.PathValue("id")

	view, err := h.roomManager.GetRoomView(roomID)
	if err != nil {
		return apiError(re, err)
	}
	return re.JSON(http.StatusOK, view)
}

// KickPlayer removes a player from the lobby roster. Admin only.
func (h *RoomHandlers) KickPlayer(re *core.RequestEvent) error {
	session := sessionID(re)
	roomID := re.Request.PathValue("id")

	data := struct {
		PlayerID string `json:"playerId" form:"playerId"`
	}{}
	if err := re.BindBody(&data); err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.roomManager.RemovePlayer(roomID, session, data.PlayerID); err != nil {
		return apiError(re, err)
	}
	return re.JSON(http.StatusOK, map[string]bool{"ok": true})
}
