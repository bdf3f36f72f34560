package world

import "github.com/samdwyer/slugdungeon/internal/gamedata"

// Terrain glyphs understood by the level format.
const (
	WallGlyph  = '#'
	FloorGlyph = ' '
	GoalGlyph  = 'G'
)

// Tile represents a single map cell. The glyph and blocking flag are fixed
// at creation; the weapon slot is the only mutable part. It is set when a
// slug dies on the tile and cleared when the player picks the weapon up.
type Tile struct {
	glyph    rune
	blocking bool
	weapon   *gamedata.WeaponDef
}

// NewTile creates a tile with the given glyph and blocking flag.
func NewTile(glyph rune, blocking bool) *Tile {
	return &Tile{glyph: glyph, blocking: blocking}
}

// NewWall creates an impassable wall tile.
func NewWall() *Tile {
	return NewTile(WallGlyph, true)
}

// NewFloor creates a passable floor tile.
func NewFloor() *Tile {
	return NewTile(FloorGlyph, false)
}

// NewGoal creates the passable goal tile the player must reach to win.
func NewGoal() *Tile {
	return NewTile(GoalGlyph, false)
}

// Glyph returns the tile's display character.
func (t *Tile) Glyph() rune {
	return t.glyph
}

// IsBlocking reports whether the tile blocks movement.
func (t *Tile) IsBlocking() bool {
	return t.blocking
}

// IsGoal reports whether this is the goal tile.
func (t *Tile) IsGoal() bool {
	return t.glyph == GoalGlyph
}

// Weapon returns the weapon resting on this tile, or nil.
func (t *Tile) Weapon() *gamedata.WeaponDef {
	return t.weapon
}

// SetWeapon places a weapon on this tile, replacing any previous one.
func (t *Tile) SetWeapon(weapon *gamedata.WeaponDef) {
	t.weapon = weapon
}

// RemoveWeapon clears the tile's weapon slot.
func (t *Tile) RemoveWeapon() {
	t.weapon = nil
}
