// Package entity provides the actors that move around a floor.
package entity

import "github.com/samdwyer/delvecore/internal/world"

// Player is the adventurer exploring the dungeon.
type Player struct {
	Pos    world.Position // Current position on the floor
	Symbol rune           // Display symbol
	Steps  int            // Moves taken on the current floor
}

// NewPlayer creates a player at the given position.
func NewPlayer(pos world.Position) *Player {
	return &Player{
		Pos:    pos,
		Symbol: '@',
	}
}

// MoveTo places the player on p and counts the step.
func (p *Player) MoveTo(pos world.Position) {
	p.Pos = pos
	p.Steps++
}

// Arrive resets the player onto a new floor.
func (p *Player) Arrive(pos world.Position) {
	p.Pos = pos
	p.Steps = 0
}
