// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal mode: the player is alive and slugs remain
	// or the goal is unreached.
	StatePlaying State = iota
	// StateWon means every slug is dead and the player stands on the goal.
	StateWon
	// StateLost means the player's health reached zero.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}
