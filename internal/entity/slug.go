package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/slugdungeon/internal/gamedata"
	"github.com/samdwyer/slugdungeon/internal/world"
)

// Slug is an enemy combatant. Slugs act on the model's turn cadence but may
// only relocate every other turn; their movement policy comes from the kind
// definition.
type Slug struct {
	Entity
	id      uuid.UUID
	def     *gamedata.SlugDef
	canMove bool
}

// NewSlug creates a slug of the given kind holding its starting weapon.
func NewSlug(def *gamedata.SlugDef, weapon *gamedata.WeaponDef) *Slug {
	s := &Slug{
		Entity:  newEntity(def.Name, def.GlyphRune(), def.MaxHealth),
		id:      uuid.New(),
		def:     def,
		canMove: true,
	}
	s.Equip(weapon)
	return s
}

// ID returns the instance identity, distinguishing two slugs of the same
// kind.
func (s *Slug) ID() uuid.UUID { return s.id }

// Def returns the slug's kind definition.
func (s *Slug) Def() *gamedata.SlugDef { return s.def }

// CanMove reports whether the slug may relocate this turn.
func (s *Slug) CanMove() bool { return s.canMove }

// EndTurn toggles movement availability. Called once per turn for every
// slug, whether or not it actually moved, so each slug moves on turns
// 1, 3, 5, ... relative to its own activation.
func (s *Slug) EndTurn() { s.canMove = !s.canMove }

// ChooseMove delegates to the kind's movement policy.
func (s *Slug) ChooseMove(candidates []world.Position, current, player world.Position) world.Position {
	return ChooseMove(s.def.Behavior, candidates, current, player)
}
