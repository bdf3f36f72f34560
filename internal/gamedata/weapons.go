package gamedata

import "github.com/gdamore/tcell/v2"

// EffectKind names one component of a weapon's effect payload.
type EffectKind string

const (
	EffectDamage  EffectKind = "damage"
	EffectPoison  EffectKind = "poison"
	EffectHealing EffectKind = "healing"
)

// Effect maps effect kinds to magnitudes. The key set is open in the data
// format; entities interpret only the three kinds above and ignore the rest.
type Effect map[EffectKind]int

// WeaponDef defines a weapon kind loaded from JSON. Defs are immutable once
// loaded, so a *WeaponDef moving from a dying slug to its tile and on to the
// player is an ownership transfer of that exact weapon, never a copy.
type WeaponDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "poison_dart")
	Name   string `json:"name"`   // Display name (e.g., "PoisonDart")
	Glyph  string `json:"glyph"`  // Single character for level files and rendering
	Color  string `json:"color"`  // Hex color code (e.g., "#3CB371")
	Range  int    `json:"range"`  // Orthogonal reach in tiles; 0 means no targets
	Effect Effect `json:"effect"` // Payload applied to every target in range
}

// GlyphRune returns the glyph as a rune for rendering and level parsing.
func (w *WeaponDef) GlyphRune() rune {
	if len(w.Glyph) == 0 {
		return '?'
	}
	return rune(w.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (w *WeaponDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(w.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// WeaponsFile represents the structure of weapons.json.
type WeaponsFile struct {
	Weapons []WeaponDef `json:"weapons"`
}

// LoadWeapons loads weapon definitions from the embedded weapons.json file.
func LoadWeapons() ([]WeaponDef, error) {
	file, err := Load[WeaponsFile]("weapons.json")
	if err != nil {
		return nil, err
	}
	return file.Weapons, nil
}

// MustLoadWeapons loads weapon definitions, panicking on error.
func MustLoadWeapons() []WeaponDef {
	weapons, err := LoadWeapons()
	if err != nil {
		panic(err)
	}
	return weapons
}
