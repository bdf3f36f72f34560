package entity

import (
	"testing"

	"github.com/samdwyer/slugdungeon/internal/gamedata"
)

func testSword() *gamedata.WeaponDef {
	return &gamedata.WeaponDef{
		ID:     "poison_sword",
		Name:   "PoisonSword",
		Glyph:  "S",
		Range:  1,
		Effect: gamedata.Effect{gamedata.EffectDamage: 2, gamedata.EffectPoison: 1},
	}
}

func TestApplyEffectsClamping(t *testing.T) {
	tests := []struct {
		name       string
		effects    []gamedata.Effect
		wantHealth int
		wantPoison int
	}{
		{
			name:       "damage clamps at zero",
			effects:    []gamedata.Effect{{gamedata.EffectDamage: 99}},
			wantHealth: 0,
		},
		{
			name:       "healing clamps at max",
			effects:    []gamedata.Effect{{gamedata.EffectDamage: 3}, {gamedata.EffectHealing: 99}},
			wantHealth: 10,
		},
		{
			name:       "poison accumulates without touching health",
			effects:    []gamedata.Effect{{gamedata.EffectPoison: 2}, {gamedata.EffectPoison: 3}},
			wantHealth: 10,
			wantPoison: 5,
		},
		{
			name:       "unrecognized kinds are ignored",
			effects:    []gamedata.Effect{{"frost": 7, gamedata.EffectDamage: 1}},
			wantHealth: 9,
		},
		{
			name: "mixed payload applies every recognized kind",
			effects: []gamedata.Effect{{
				gamedata.EffectDamage: 5,
				gamedata.EffectPoison: 1,
			}},
			wantHealth: 5,
			wantPoison: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := NewPlayer(10)
			for _, effect := range tt.effects {
				player.ApplyEffects(effect)
			}
			if player.Health() != tt.wantHealth {
				t.Errorf("health = %d, want %d", player.Health(), tt.wantHealth)
			}
			if player.Poison() != tt.wantPoison {
				t.Errorf("poison = %d, want %d", player.Poison(), tt.wantPoison)
			}
		})
	}
}

func TestApplyPoisonDecaySeries(t *testing.T) {
	// A stack of p deals p + (p-1) + ... + 1 in total, one step per turn.
	player := NewPlayer(20)
	player.ApplyEffects(gamedata.Effect{gamedata.EffectPoison: 3})

	wantHealth := []int{17, 15, 14} // -3, -2, -1
	for i, want := range wantHealth {
		player.ApplyPoison()
		if player.Health() != want {
			t.Errorf("after decay step %d: health = %d, want %d", i+1, player.Health(), want)
		}
	}
	if player.Poison() != 0 {
		t.Errorf("poison = %d after stack exhausted, want 0", player.Poison())
	}

	// Exhausted stack: further decay steps are no-ops.
	player.ApplyPoison()
	if player.Health() != 14 {
		t.Errorf("health = %d after no-op decay, want 14", player.Health())
	}
}

func TestApplyPoisonClampsAtZero(t *testing.T) {
	player := NewPlayer(3)
	player.ApplyEffects(gamedata.Effect{gamedata.EffectPoison: 5})

	player.ApplyPoison()
	if player.Health() != 0 {
		t.Errorf("health = %d, want 0", player.Health())
	}
	if player.IsAlive() {
		t.Error("player with 0 health should not be alive")
	}
	if player.Poison() != 4 {
		t.Errorf("poison = %d, want 4", player.Poison())
	}
}

func TestUnarmedEntityHasNoTargetsOrEffect(t *testing.T) {
	player := NewPlayer(10)

	if targets := player.WeaponTargets(origin(2, 2)); len(targets) != 0 {
		t.Errorf("unarmed WeaponTargets returned %d positions, want 0", len(targets))
	}
	if effect := player.WeaponEffect(); len(effect) != 0 {
		t.Errorf("unarmed WeaponEffect returned %d entries, want 0", len(effect))
	}
}

func TestEquipReplacesWeapon(t *testing.T) {
	player := NewPlayer(10)
	sword := testSword()
	dart := &gamedata.WeaponDef{ID: "poison_dart", Range: 2, Effect: gamedata.Effect{gamedata.EffectPoison: 2}}

	player.Equip(sword)
	if player.Weapon() != sword {
		t.Fatal("expected sword equipped")
	}

	player.Equip(dart)
	if player.Weapon() != dart {
		t.Fatal("expected dart to replace sword")
	}
	if len(player.WeaponTargets(origin(0, 0))) != 8 {
		t.Errorf("range-2 weapon should yield 8 targets, got %d", len(player.WeaponTargets(origin(0, 0))))
	}
}

func TestNewSlug(t *testing.T) {
	def := &gamedata.SlugDef{
		ID:        "angry",
		Name:      "AngrySlug",
		Glyph:     "A",
		MaxHealth: 5,
		Weapon:    "poison_sword",
		Behavior:  gamedata.BehaviorSeek,
	}
	sword := testSword()

	a := NewSlug(def, sword)
	b := NewSlug(def, sword)

	if a.Health() != 5 || a.MaxHealth() != 5 {
		t.Errorf("slug health = %d/%d, want 5/5", a.Health(), a.MaxHealth())
	}
	if a.Weapon() != sword {
		t.Error("slug should spawn holding its kind's weapon")
	}
	if !a.CanMove() {
		t.Error("slug should be able to move on its first turn")
	}
	if a.ID() == b.ID() {
		t.Error("two slugs of the same kind must have distinct IDs")
	}
}

func TestSlugEndTurnTogglesMovement(t *testing.T) {
	def := &gamedata.SlugDef{ID: "nice", Name: "NiceSlug", Glyph: "N", MaxHealth: 10, Behavior: gamedata.BehaviorStationary}
	s := NewSlug(def, nil)

	sequence := []bool{false, true, false, true}
	for i, want := range sequence {
		s.EndTurn()
		if s.CanMove() != want {
			t.Errorf("after %d EndTurn calls: CanMove = %v, want %v", i+1, s.CanMove(), want)
		}
	}
}
