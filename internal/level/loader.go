// Package level parses the text level format into a playable dungeon model.
package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/samdwyer/slugdungeon/internal/dungeon"
	"github.com/samdwyer/slugdungeon/internal/entity"
	"github.com/samdwyer/slugdungeon/internal/gamedata"
	"github.com/samdwyer/slugdungeon/internal/world"
)

// Level is the parsed form of a level file: the validated tuple the model
// is constructed from, plus a fingerprint of the raw bytes so traces from
// the same level content can be correlated.
type Level struct {
	Tiles       [][]*world.Tile
	Slugs       map[world.Position]*entity.Slug
	Player      *entity.Player
	PlayerPos   world.Position
	Fingerprint string
}

// Parse reads the level format: a leading line holding the player's max
// health, followed by the symbol grid. Grid glyphs are '#' wall, ' ' floor,
// 'G' goal, 'P' player start, a weapon glyph for that weapon resting on a
// floor tile, and a slug glyph for that slug kind standing on a floor tile.
// All rows must be the same width and exactly one 'P' must appear; anything
// malformed is a construction error, never an in-game condition.
func Parse(raw []byte, weapons *gamedata.WeaponRegistry, slugKinds *gamedata.SlugRegistry) (*Level, error) {
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) < 2 {
		return nil, errors.New("level: need a max-health line and at least one grid row")
	}

	maxHealth, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || maxHealth <= 0 {
		return nil, fmt.Errorf("level: bad max-health line %q", lines[0])
	}

	rows := lines[1:]
	width := len(rows[0])
	tiles := make([][]*world.Tile, len(rows))
	slugs := make(map[world.Position]*entity.Slug)
	var playerPos *world.Position

	for r, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("level: row %d is %d cells wide, want %d", r, len(line), width)
		}
		tiles[r] = make([]*world.Tile, width)
		for c := 0; c < width; c++ {
			glyph := rune(line[c])
			pos := world.Position{Row: r, Col: c}

			switch glyph {
			case world.WallGlyph:
				tiles[r][c] = world.NewWall()
			case world.FloorGlyph:
				tiles[r][c] = world.NewFloor()
			case world.GoalGlyph:
				tiles[r][c] = world.NewGoal()
			case entity.PlayerGlyph:
				if playerPos != nil {
					return nil, fmt.Errorf("level: second player start at row %d col %d", r, c)
				}
				playerPos = &pos
				tiles[r][c] = world.NewFloor()
			default:
				tile, slug, err := parseEntityGlyph(glyph, weapons, slugKinds)
				if err != nil {
					return nil, fmt.Errorf("level: row %d col %d: %w", r, c, err)
				}
				tiles[r][c] = tile
				if slug != nil {
					slugs[pos] = slug
				}
			}
		}
	}

	if playerPos == nil {
		return nil, errors.New("level: no player start")
	}

	return &Level{
		Tiles:       tiles,
		Slugs:       slugs,
		Player:      entity.NewPlayer(maxHealth),
		PlayerPos:   *playerPos,
		Fingerprint: fmt.Sprintf("%016x", xxhash.Sum64(raw)),
	}, nil
}

// parseEntityGlyph resolves a non-terrain glyph against the registries: a
// weapon glyph yields a floor tile holding that weapon, a slug glyph a
// floor tile plus a freshly spawned slug of that kind.
func parseEntityGlyph(glyph rune, weapons *gamedata.WeaponRegistry, slugKinds *gamedata.SlugRegistry) (*world.Tile, *entity.Slug, error) {
	if def := weapons.GetByGlyph(glyph); def != nil {
		tile := world.NewFloor()
		tile.SetWeapon(def)
		return tile, nil, nil
	}
	if def := slugKinds.GetByGlyph(glyph); def != nil {
		weapon := weapons.GetByID(def.Weapon)
		if weapon == nil {
			return nil, nil, fmt.Errorf("slug kind %q references unknown weapon %q", def.ID, def.Weapon)
		}
		return world.NewFloor(), entity.NewSlug(def, weapon), nil
	}
	return nil, nil, fmt.Errorf("unknown glyph %q", glyph)
}

// Model builds the turn-resolution model from the parsed level.
func (l *Level) Model() (*dungeon.Model, error) {
	return dungeon.New(l.Tiles, l.Slugs, l.Player, l.PlayerPos)
}
