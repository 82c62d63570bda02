package handlers

import (
	"github.com/coder/websocket"
	"github.com/pocketbase/pocketbase/core"

	"github.com/alouani-moncif/secret-word-society-replit/internal/config"
	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
	"github.com/alouani-moncif/secret-word-society-replit/internal/services"
)

type WSHandler struct {
	hub         *services.Hub
	roomManager *services.RoomManager
	origins     []string
}

func NewWSHandler(hub *services.Hub, rm *services.RoomManager, origins []string) *WSHandler {
	return &WSHandler{
		hub:         hub,
		roomManager: rm,
		origins:     origins,
	}
}

// HandleWebSocket upgrades the request and subscribes it to room snapshots.
// The handler blocks for the connection's lifetime.
func (h *WSHandler) HandleWebSocket(re *core.RequestEvent) error {
	roomID := re.Request.PathValue("roomId")

	// Verify room exists
	if _, err := h.roomManager.GetRoom(roomID); err != nil {
		return apiError(re, err)
	}

	if h.hub.RoomConnectionCount(roomID) >= config.MaxConnectionsPerRoom {
		return re.JSON(503, map[string]string{"error": "room connection limit reached"})
	}

	// The session cookie identifies which player this socket belongs to;
	// a connection without a seat in the room still gets snapshots.
	var playerID string
	if session := sessionID(re); session != "" {
		if player, err := h.roomManager.GetPlayerBySession(roomID, session); err == nil {
			playerID = player.Id
		}
	}

	conn, err := websocket.Accept(re.Response, re.Request, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		return err
	}

	client := services.NewClient(conn, h.hub, roomID, playerID)
	h.hub.Register(roomID, client)
	client.Start()

	// Initial state sync, matching what later broadcasts will carry.
	if view, err := h.roomManager.GetRoomView(roomID); err == nil {
		h.hub.SendToClient(client, &models.WSMessage{
			Type:    models.MsgTypeRoomState,
			RoomID:  roomID,
			Payload: view,
		})
	}

	client.ReadLoop()
	return nil
}
