package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/alouani-moncif/secret-word-society-replit/internal/services"
)

type GameHandlers struct {
	engine      *services.GameEngine
	roomManager *services.RoomManager
}

func NewGameHandlers(engine *services.GameEngine, rm *services.RoomManager) *GameHandlers {
	return &GameHandlers{
		engine:      engine,
		roomManager: rm,
	}
}

// caller resolves the requesting player inside the room from the session
// cookie. The body never carries the caller's own player id.
func (h *GameHandlers) caller(re *core.RequestEvent, roomID string) (string, error) {
	session := sessionID(re)
	if session == "" {
		return "", services.ErrPlayerNotFound
	}
	player, err := h.roomManager.GetPlayerBySession(roomID, session)
	if err != nil {
		return "", err
	}
	return player.Id, nil
}

// StartGame starts the game in the caller's room.
func (h *GameHandlers) StartGame(re *core.RequestEvent) error {
	roomID := re.Request.PathValue("id")

	playerID, err := h.caller(re, roomID)
	if err != nil {
		return apiError(re, err)
	}

	if err := h.engine.StartGame(roomID, playerID); err != nil {
		return apiError(re, err)
	}
	return re.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// SubmitDescription records the caller's description for this round.
func (h *GameHandlers) SubmitDescription(re *core.RequestEvent) error {
	roomID := re.Request.PathValue("id")

	data := struct {
		Text string `json:"text" form:"text"`
	}{}
	if err := re.BindBody(&data); err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	playerID, err := h.caller(re, roomID)
	if err != nil {
		return apiError(re, err)
	}

	if err := h.engine.SubmitDescription(roomID, playerID, data.Text); err != nil {
		return apiError(re, err)
	}
	return re.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// SubmitVote records the caller's vote for this round.
func (h *GameHandlers) SubmitVote(re *core.RequestEvent) error {
	roomID := re.Request.PathValue("id")

	data := struct {
		TargetID string `json:"targetId" form:"targetId"`
	}{}
	if err := re.BindBody(&data); err != nil {
		return re.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	playerID, err := h.caller(re, roomID)
	if err != nil {
		return apiError(re, err)
	}

	if err := h.engine.SubmitVote(roomID, playerID, data.TargetID); err != nil {
		return apiError(re, err)
	}
	return re.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// NewGame resets a finished room back to the lobby for a rematch.
func (h *GameHandlers) NewGame(re *core.RequestEvent) error {
	roomID := re.Request.PathValue("id")

	playerID, err := h.caller(re, roomID)
	if err != nil {
		return apiError(re, err)
	}

	if err := h.engine.NewGame(roomID, playerID); err != nil {
		return apiError(re, err)
	}
	return re.JSON(http.StatusOK, map[string]bool{"ok": true})
}
