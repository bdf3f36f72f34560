// Package entity provides the game's combatants: the player and the slugs.
package entity

import (
	"github.com/samdwyer/slugdungeon/internal/gamedata"
	"github.com/samdwyer/slugdungeon/internal/world"
)

// Entity is the mutable combat state shared by the player and slugs.
// Invariants: 0 <= health <= maxHealth, poison >= 0.
type Entity struct {
	name      string
	glyph     rune
	maxHealth int
	health    int
	poison    int
	weapon    *gamedata.WeaponDef
}

func newEntity(name string, glyph rune, maxHealth int) Entity {
	return Entity{
		name:      name,
		glyph:     glyph,
		maxHealth: maxHealth,
		health:    maxHealth,
	}
}

// Name returns the entity's display name.
func (e *Entity) Name() string { return e.name }

// Glyph returns the entity's display character.
func (e *Entity) Glyph() rune { return e.glyph }

// Health returns current hit points.
func (e *Entity) Health() int { return e.health }

// MaxHealth returns maximum hit points.
func (e *Entity) MaxHealth() int { return e.maxHealth }

// Poison returns the current poison counter.
func (e *Entity) Poison() int { return e.poison }

// Weapon returns the held weapon, or nil when unarmed.
func (e *Entity) Weapon() *gamedata.WeaponDef { return e.weapon }

// IsAlive reports whether the entity has hit points remaining.
func (e *Entity) IsAlive() bool { return e.health > 0 }

// Equip replaces the currently held weapon. An entity holds at most one
// weapon; dropping the old one onto terrain, where that happens at all, is
// the model's job.
func (e *Entity) Equip(weapon *gamedata.WeaponDef) {
	e.weapon = weapon
}

// ApplyEffects applies a weapon effect payload to this entity. Healing and
// damage clamp health to [0, maxHealth]; poison accumulates on its counter.
// Unrecognized effect kinds are ignored.
func (e *Entity) ApplyEffects(effects gamedata.Effect) {
	for kind, magnitude := range effects {
		switch kind {
		case gamedata.EffectHealing:
			e.health = min(e.maxHealth, e.health+magnitude)
		case gamedata.EffectDamage:
			e.health = max(0, e.health-magnitude)
		case gamedata.EffectPoison:
			e.poison += magnitude
		}
	}
}

// ApplyPoison applies one poison-decay step: damage equal to the current
// poison counter, then the counter drops by one. A fresh stack of p thus
// deals p + (p-1) + ... + 1 over its lifetime. No-op when the counter is 0.
func (e *Entity) ApplyPoison() {
	if e.poison <= 0 {
		return
	}
	e.health = max(0, e.health-e.poison)
	e.poison--
}

// WeaponTargets returns the positions this entity can attack from the given
// position, or nil when unarmed.
func (e *Entity) WeaponTargets(from world.Position) []world.Position {
	if e.weapon == nil {
		return nil
	}
	return WeaponTargets(e.weapon, from)
}

// WeaponEffect returns the held weapon's effect payload, or nil when
// unarmed.
func (e *Entity) WeaponEffect() gamedata.Effect {
	if e.weapon == nil {
		return nil
	}
	return e.weapon.Effect
}
