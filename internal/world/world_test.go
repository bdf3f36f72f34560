package world

import (
	"testing"

	"github.com/samdwyer/slugdungeon/internal/gamedata"
)

func TestPositionAdd(t *testing.T) {
	tests := []struct {
		start Position
		delta Position
		want  Position
	}{
		{Position{1, 1}, Up, Position{0, 1}},
		{Position{1, 1}, Down, Position{2, 1}},
		{Position{1, 1}, Left, Position{1, 0}},
		{Position{1, 1}, Right, Position{1, 2}},
		{Position{0, 0}, Up, Position{-1, 0}},
	}

	for _, tt := range tests {
		if got := tt.start.Add(tt.delta); got != tt.want {
			t.Errorf("%v.Add(%v) = %v, want %v", tt.start, tt.delta, got, tt.want)
		}
	}
}

func TestPositionSquaredDistance(t *testing.T) {
	a := Position{Row: 1, Col: 2}
	b := Position{Row: 4, Col: 6}

	if got := a.SquaredDistance(b); got != 25 {
		t.Errorf("SquaredDistance = %d, want 25", got)
	}
	if got := b.SquaredDistance(a); got != 25 {
		t.Errorf("SquaredDistance should be symmetric, got %d", got)
	}
	if got := a.SquaredDistance(a); got != 0 {
		t.Errorf("SquaredDistance to self = %d, want 0", got)
	}
}

func TestPositionAsMapKey(t *testing.T) {
	// Structural equality: two separately constructed positions must hit
	// the same map entry.
	m := map[Position]string{}
	m[Position{Row: 3, Col: 4}] = "slug"

	if m[Position{Row: 3, Col: 4}] != "slug" {
		t.Error("equal positions should index the same map entry")
	}
}

func TestTileKinds(t *testing.T) {
	tests := []struct {
		tile     *Tile
		glyph    rune
		blocking bool
		goal     bool
	}{
		{NewWall(), WallGlyph, true, false},
		{NewFloor(), FloorGlyph, false, false},
		{NewGoal(), GoalGlyph, false, true},
	}

	for _, tt := range tests {
		if tt.tile.Glyph() != tt.glyph {
			t.Errorf("glyph = %q, want %q", tt.tile.Glyph(), tt.glyph)
		}
		if tt.tile.IsBlocking() != tt.blocking {
			t.Errorf("%q: IsBlocking = %v, want %v", tt.glyph, tt.tile.IsBlocking(), tt.blocking)
		}
		if tt.tile.IsGoal() != tt.goal {
			t.Errorf("%q: IsGoal = %v, want %v", tt.glyph, tt.tile.IsGoal(), tt.goal)
		}
	}
}

func TestTileWeaponSlot(t *testing.T) {
	tile := NewFloor()
	if tile.Weapon() != nil {
		t.Fatal("new tile should have no weapon")
	}

	dart := &gamedata.WeaponDef{ID: "poison_dart"}
	tile.SetWeapon(dart)
	if tile.Weapon() != dart {
		t.Error("SetWeapon should place the weapon on the tile")
	}

	tile.RemoveWeapon()
	if tile.Weapon() != nil {
		t.Error("RemoveWeapon should clear the slot")
	}
}
