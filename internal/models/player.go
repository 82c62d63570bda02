package models

import "time"

type PlayerRole string

const (
	RoleNormal     PlayerRole = "normal"
	RoleUndercover PlayerRole = "undercover"
	RoleWhite      PlayerRole = "white"
)

type Player struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	IsAdmin     bool       `json:"isAdmin"`
	IsAlive     bool       `json:"isAlive"`
	Role        PlayerRole `json:"role,omitempty"`
	Word        string     `json:"word,omitempty"`
	Description string     `json:"description,omitempty"`
	HasVoted    bool       `json:"hasVoted"`
	Votes       int        `json:"votes"`
	JoinedAt    time.Time  `json:"joinedAt"`
}

func NewPlayer(id, name string, isAdmin bool) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		IsAdmin:  isAdmin,
		IsAlive:  true,
		JoinedAt: time.Now(),
	}
}
