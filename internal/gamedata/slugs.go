package gamedata

import "github.com/gdamore/tcell/v2"

// Behavior selects a slug kind's movement policy. The set is closed: the
// movement code switches exhaustively over these values.
type Behavior string

const (
	// BehaviorStationary never relocates.
	BehaviorStationary Behavior = "stationary"
	// BehaviorSeek moves toward the player.
	BehaviorSeek Behavior = "seek"
	// BehaviorFlee moves away from the player.
	BehaviorFlee Behavior = "flee"
)

// SlugDef defines a slug kind loaded from JSON.
type SlugDef struct {
	ID        string   `json:"id"`        // Unique identifier (e.g., "angry")
	Name      string   `json:"name"`      // Display name (e.g., "AngrySlug")
	Glyph     string   `json:"glyph"`     // Single character for level files and rendering
	Color     string   `json:"color"`     // Hex color code
	MaxHealth int      `json:"maxHealth"` // Starting and maximum hit points
	Weapon    string   `json:"weapon"`    // Weapon def ID the slug spawns with
	Behavior  Behavior `json:"behavior"`  // Movement policy
}

// GlyphRune returns the glyph as a rune for rendering and level parsing.
func (s *SlugDef) GlyphRune() rune {
	if len(s.Glyph) == 0 {
		return '?'
	}
	return rune(s.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (s *SlugDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// SlugsFile represents the structure of slugs.json.
type SlugsFile struct {
	Slugs []SlugDef `json:"slugs"`
}

// LoadSlugs loads slug definitions from the embedded slugs.json file.
func LoadSlugs() ([]SlugDef, error) {
	file, err := Load[SlugsFile]("slugs.json")
	if err != nil {
		return nil, err
	}
	return file.Slugs, nil
}

// MustLoadSlugs loads slug definitions, panicking on error.
func MustLoadSlugs() []SlugDef {
	slugs, err := LoadSlugs()
	if err != nil {
		panic(err)
	}
	return slugs
}
