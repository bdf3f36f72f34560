package entity

// PlayerGlyph marks the player's starting cell in level files and is the
// player's display character.
const PlayerGlyph = 'P'

// Player is the single combatant controlled from outside the core. It is
// created once per run and persists until the run ends; its health clamps at
// 0 but it is never removed from the model.
type Player struct {
	Entity
}

// NewPlayer creates a player at full health.
func NewPlayer(maxHealth int) *Player {
	return &Player{Entity: newEntity("Player", PlayerGlyph, maxHealth)}
}
