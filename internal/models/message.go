package models

type WSMessage struct {
	Type    string      `json:"type"`
	RoomID  string      `json:"roomId,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// Server → Client message types
const (
	MsgTypeRoomState = "room_state" // Full {room, players} snapshot
	MsgTypeError     = "error"
)
