// Package world provides the static dungeon terrain: positions and tiles.
package world

// Position identifies a grid cell by row and column. Positions are plain
// values: two positions name the same cell iff their fields are equal, which
// makes them usable directly as keys for the slug roster.
type Position struct {
	Row, Col int
}

// Add returns the position offset by delta.
func (p Position) Add(delta Position) Position {
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// SquaredDistance returns the squared Euclidean distance to other. Staying
// squared keeps the math in integers; ordering by distance is unaffected.
func (p Position) SquaredDistance(other Position) int {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	return dr*dr + dc*dc
}

// Directional deltas for player input and slug movement. Each has exactly
// one axis non-zero by magnitude 1.
var (
	Up    = Position{Row: -1}
	Down  = Position{Row: 1}
	Left  = Position{Col: -1}
	Right = Position{Col: 1}
)
