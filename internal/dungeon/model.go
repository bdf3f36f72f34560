// Package dungeon implements the turn-resolution engine: the rules that
// turn one directional player move into a fully resolved game turn.
package dungeon

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/slugdungeon/internal/entity"
	"github.com/samdwyer/slugdungeon/internal/telemetry"
	"github.com/samdwyer/slugdungeon/internal/world"
)

// Model owns the grid, the player, and the position-keyed slug roster, and
// resolves player moves into full turns. The roster is the single source of
// truth for slug liveness: a slug is present iff it is alive. The model is
// single-threaded; callers must not invoke HandlePlayerMove concurrently or
// re-entrantly.
type Model struct {
	tiles     [][]*world.Tile
	slugs     map[world.Position]*entity.Slug
	player    *entity.Player
	playerPos world.Position
}

// New validates the level tuple and builds a model. Malformed input (empty
// or ragged grid, blocked or overlapping starts) is a construction error;
// once New succeeds, gameplay itself never errors. The slug map is copied,
// so the caller's map is not aliased.
func New(tiles [][]*world.Tile, slugs map[world.Position]*entity.Slug, player *entity.Player, playerPos world.Position) (*Model, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, errors.New("dungeon: empty grid")
	}
	width := len(tiles[0])
	for row := range tiles {
		if len(tiles[row]) != width {
			return nil, fmt.Errorf("dungeon: row %d has %d tiles, want %d", row, len(tiles[row]), width)
		}
	}
	if player == nil {
		return nil, errors.New("dungeon: no player")
	}

	m := &Model{
		tiles:     tiles,
		player:    player,
		playerPos: playerPos,
	}
	if !m.inBounds(playerPos) || m.GetTile(playerPos).IsBlocking() {
		return nil, fmt.Errorf("dungeon: player start %v is not a walkable tile", playerPos)
	}

	roster := make(map[world.Position]*entity.Slug, len(slugs))
	for pos, slug := range slugs {
		if !m.inBounds(pos) || m.GetTile(pos).IsBlocking() {
			return nil, fmt.Errorf("dungeon: %s at %v is not on a walkable tile", slug.Name(), pos)
		}
		if pos == playerPos {
			return nil, fmt.Errorf("dungeon: %s overlaps the player start %v", slug.Name(), pos)
		}
		roster[pos] = slug
	}
	m.slugs = roster

	return m, nil
}

// Tiles returns the grid. Tiles are shared rather than copied; their weapon
// slots change as the game plays out.
func (m *Model) Tiles() [][]*world.Tile {
	return m.tiles
}

// Slugs returns a snapshot of the live roster keyed by position. Mutating
// the returned map does not affect the model.
func (m *Model) Slugs() map[world.Position]*entity.Slug {
	snapshot := make(map[world.Position]*entity.Slug, len(m.slugs))
	for pos, slug := range m.slugs {
		snapshot[pos] = slug
	}
	return snapshot
}

// Player returns the player entity.
func (m *Model) Player() *entity.Player {
	return m.player
}

// PlayerPosition returns the player's current position.
func (m *Model) PlayerPosition() world.Position {
	return m.playerPos
}

// Dimensions returns the grid size as (rows, cols).
func (m *Model) Dimensions() (int, int) {
	return len(m.tiles), len(m.tiles[0])
}

// GetTile returns the tile at pos, which must be in bounds.
func (m *Model) GetTile(pos world.Position) *world.Tile {
	return m.tiles[pos.Row][pos.Col]
}

func (m *Model) inBounds(pos world.Position) bool {
	return pos.Row >= 0 && pos.Row < len(m.tiles) &&
		pos.Col >= 0 && pos.Col < len(m.tiles[0])
}

// ValidSlugPositions returns the positions the slug at pos may move to this
// turn: its current position first, then each orthogonally adjacent cell
// that is in bounds, non-blocking, not occupied by another slug, and not the
// player's cell. Returns nil when there is no slug at pos or the slug is on
// movement cooldown.
func (m *Model) ValidSlugPositions(pos world.Position) []world.Position {
	slug := m.slugs[pos]
	if slug == nil || !slug.CanMove() {
		return nil
	}

	candidates := []world.Position{pos}
	for _, delta := range []world.Position{world.Up, world.Down, world.Left, world.Right} {
		next := pos.Add(delta)
		if !m.inBounds(next) || m.GetTile(next).IsBlocking() {
			continue
		}
		if _, occupied := m.slugs[next]; occupied || next == m.playerPos {
			continue
		}
		candidates = append(candidates, next)
	}
	return candidates
}

// HandlePlayerMove resolves one full turn from a directional delta. A move
// whose destination is out of bounds, blocking, or occupied by a slug is
// rejected outright and nothing else happens; rejection is a silent no-op,
// not an error. An accepted move commits the new position, picks up any
// weapon on the destination tile, resolves the player's attack, and then
// runs the end-of-turn sequence.
func (m *Model) HandlePlayerMove(ctx context.Context, delta world.Position) {
	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "dungeon.player_move")
	defer span.End()

	next := m.playerPos.Add(delta)
	if !m.inBounds(next) || m.GetTile(next).IsBlocking() {
		span.SetAttributes(attribute.Bool("move.accepted", false))
		return
	}
	if _, occupied := m.slugs[next]; occupied {
		span.SetAttributes(attribute.Bool("move.accepted", false))
		return
	}

	m.playerPos = next

	// The previously held weapon is discarded, not dropped back.
	tile := m.GetTile(next)
	if weapon := tile.Weapon(); weapon != nil {
		m.player.Equip(weapon)
		tile.RemoveWeapon()
	}

	m.resolvePlayerAttack()
	m.endTurn()

	span.SetAttributes(
		attribute.Bool("move.accepted", true),
		attribute.Int("player.health", m.player.Health()),
		attribute.Int("player.poison", m.player.Poison()),
		attribute.Int("slugs.remaining", len(m.slugs)),
	)
}

// HasWon reports whether every slug is gone and the player stands on the
// goal tile. Pure read; acting on a win is the caller's business.
func (m *Model) HasWon() bool {
	for _, slug := range m.slugs {
		if slug.IsAlive() {
			return false
		}
	}
	return m.GetTile(m.playerPos).IsGoal()
}

// HasLost reports whether the player is dead. Pure read.
func (m *Model) HasLost() bool {
	return !m.player.IsAlive()
}

// resolvePlayerAttack applies the player's weapon effect to every slug in
// range, in target-enumeration order. Each hit slug also takes one
// immediate poison-decay step on top of the end-of-turn decay. A slug
// killed here is removed mid-pass, so a later target position never sees
// it.
func (m *Model) resolvePlayerAttack() {
	effect := m.player.WeaponEffect()
	if len(effect) == 0 {
		return
	}
	for _, target := range m.player.WeaponTargets(m.playerPos) {
		slug, ok := m.slugs[target]
		if !ok {
			continue
		}
		slug.ApplyEffects(effect)
		slug.ApplyPoison()
		if !slug.IsAlive() {
			m.removeSlug(target, slug)
		}
	}
}

// resolveSlugAttack applies the slug's weapon effect to the player when the
// player's cell lies within the slug's range. Unlike the player's attack
// there is no bonus poison-decay step.
func (m *Model) resolveSlugAttack(pos world.Position, slug *entity.Slug) {
	effect := slug.WeaponEffect()
	if len(effect) == 0 {
		return
	}
	for _, target := range slug.WeaponTargets(pos) {
		if target == m.playerPos {
			m.player.ApplyEffects(effect)
			return
		}
	}
}

// removeSlug drops the slug's weapon (if any) onto the tile it occupied and
// deletes it from the roster.
func (m *Model) removeSlug(pos world.Position, slug *entity.Slug) {
	if weapon := slug.Weapon(); weapon != nil {
		m.GetTile(pos).SetWeapon(weapon)
	}
	delete(m.slugs, pos)
}

// endTurn runs the fixed end-of-turn sequence: player poison decay, slug
// poison decay with death cleanup, slug movement, slug attacks, and the
// movement-cooldown toggle. Every multi-slug pass iterates a row-major
// snapshot of the roster keys taken at the start of that pass, so removals
// and relocations can never skip or repeat a slug, and the whole sequence
// is deterministic.
func (m *Model) endTurn() {
	m.player.ApplyPoison()

	// Poison decays on every live slug, even if an earlier slug in the
	// pass died of it.
	for _, pos := range m.sortedPositions() {
		slug := m.slugs[pos]
		slug.ApplyPoison()
		if !slug.IsAlive() {
			m.removeSlug(pos, slug)
		}
	}

	// Candidate generation sees the roster as it stands after the decay
	// pass, including cells freed up by earlier movers in this loop. A
	// chosen destination is guaranteed free: candidates never include an
	// occupied cell, and a cell vacated mid-pass was not a candidate.
	for _, pos := range m.sortedPositions() {
		slug := m.slugs[pos]
		if !slug.CanMove() {
			continue
		}
		next := slug.ChooseMove(m.ValidSlugPositions(pos), pos, m.playerPos)
		if next != pos {
			delete(m.slugs, pos)
			m.slugs[next] = slug
		}
	}

	// Attacks resolve from post-move positions.
	for _, pos := range m.sortedPositions() {
		m.resolveSlugAttack(pos, m.slugs[pos])
	}

	for _, slug := range m.slugs {
		slug.EndTurn()
	}
}

// sortedPositions returns the roster's keys in row-major order. Go's map
// iteration order is randomized; the engine's contract is determinism, so
// every multi-slug pass walks positions sorted by row, then column.
func (m *Model) sortedPositions() []world.Position {
	positions := make([]world.Position, 0, len(m.slugs))
	for pos := range m.slugs {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
	return positions
}
