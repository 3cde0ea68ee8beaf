package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player represents one of the token holders on the board
type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Position int       `json:"position"`
	JoinedAt time.Time `json:"joinedAt"`
}

// NewPlayer creates a player on the start square
func NewPlayer(name, color string) *Player {
	return &Player{
		ID:       uuid.New().String(),
		Name:     name,
		Color:    color,
		Position: StartSquare,
		JoinedAt: time.Now(),
	}
}

// ResetPosition puts the player back on the start square
func (p *Player) ResetPosition() {
	p.Position = StartSquare
}

// PlayerInfo is the rendering view of a player
type PlayerInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

// ToInfo converts a Player to its rendering view
func (p *Player) ToInfo() PlayerInfo {
	return PlayerInfo{
		ID:       p.ID,
		Name:     p.Name,
		Color:    p.Color,
		Position: p.Position,
	}
}
