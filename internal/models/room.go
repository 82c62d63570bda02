package models

import (
	"time"
)

type RoomStatus string

const (
	StatusLobby    RoomStatus = "lobby"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

type GamePhase string

const (
	PhaseWaiting    GamePhase = "waiting"
	PhaseDescribing GamePhase = "describing"
	PhaseVoting     GamePhase = "voting"
	PhaseResults    GamePhase = "results"
)

type GameResult string

const (
	ResultNormalWin     GameResult = "normal_win"
	ResultUndercoverWin GameResult = "undercover_win"
)

// Room is a data transfer object for room state.
// All persistent state is managed in the database via RoomManager.
// This struct is used for client snapshots and passing data between handlers.
type Room struct {
	ID           string        `json:"id"`
	Code         string        `json:"code"`
	Status       RoomStatus    `json:"status"`
	Phase        GamePhase     `json:"phase"`
	CurrentRound int           `json:"currentRound"`
	Words        *WordPair     `json:"words,omitempty"`
	GameResult   GameResult    `json:"gameResult,omitempty"`
	Settings     *RoomSettings `json:"settings,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// RoomSettings holds per-room options chosen at creation time.
type RoomSettings struct {
	MaxPlayers int `json:"max_players"`
}

func DefaultRoomSettings() *RoomSettings {
	return &RoomSettings{
		MaxPlayers: 10,
	}
}

// RoomView is the read-only snapshot handed to the presentation layer:
// the room record plus its players in join order.
type RoomView struct {
	Room    *Room     `json:"room"`
	Players []*Player `json:"players"`
}
