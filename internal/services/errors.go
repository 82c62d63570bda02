package services

import "errors"

// Command errors surfaced to the API layer. Every command is all-or-nothing:
// a failed precondition leaves the room aggregate untouched.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrInsufficientPlayers = errors.New("not enough players to start")
	ErrRoomFull            = errors.New("room is full")
	ErrWrongPhase          = errors.New("action not allowed in current phase")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidTarget       = errors.New("invalid vote target")
	ErrNotAdmin            = errors.New("only the room admin can do that")
)
