package level

import (
	"strings"
	"testing"

	"github.com/samdwyer/slugdungeon/internal/gamedata"
	"github.com/samdwyer/slugdungeon/internal/world"
)

func parseLevel(t *testing.T, text string) *Level {
	t.Helper()
	lvl, err := Parse([]byte(text), gamedata.MustLoadWeaponRegistry(), gamedata.MustLoadSlugRegistry())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return lvl
}

const smallLevel = "12\n" +
	"#####\n" +
	"#P D#\n" +
	"# A #\n" +
	"#  G#\n" +
	"#####\n"

func TestParseSmallLevel(t *testing.T) {
	lvl := parseLevel(t, smallLevel)

	if lvl.Player.MaxHealth() != 12 {
		t.Errorf("player max health = %d, want 12", lvl.Player.MaxHealth())
	}
	if lvl.PlayerPos != (world.Position{Row: 1, Col: 1}) {
		t.Errorf("player position = %v, want {1 1}", lvl.PlayerPos)
	}
	if len(lvl.Tiles) != 5 || len(lvl.Tiles[0]) != 5 {
		t.Fatalf("grid is %dx%d, want 5x5", len(lvl.Tiles), len(lvl.Tiles[0]))
	}

	if !lvl.Tiles[0][0].IsBlocking() {
		t.Error("corner should be a wall")
	}
	if lvl.Tiles[1][1].IsBlocking() {
		t.Error("player start should be a floor tile")
	}
	if !lvl.Tiles[3][3].IsGoal() {
		t.Error("expected goal tile at (3,3)")
	}

	dart := lvl.Tiles[1][3].Weapon()
	if dart == nil || dart.ID != "poison_dart" {
		t.Errorf("expected a poison dart on (1,3), got %v", dart)
	}

	if len(lvl.Slugs) != 1 {
		t.Fatalf("got %d slugs, want 1", len(lvl.Slugs))
	}
	slug := lvl.Slugs[world.Position{Row: 2, Col: 2}]
	if slug == nil {
		t.Fatal("expected a slug at (2,2)")
	}
	if slug.Def().ID != "angry" {
		t.Errorf("slug kind = %q, want angry", slug.Def().ID)
	}
	if slug.Weapon() == nil || slug.Weapon().ID != "poison_sword" {
		t.Error("angry slug should spawn with a poison sword")
	}
}

func TestParseModel(t *testing.T) {
	lvl := parseLevel(t, smallLevel)
	model, err := lvl.Model()
	if err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	if rows, cols := model.Dimensions(); rows != 5 || cols != 5 {
		t.Errorf("model dimensions %dx%d, want 5x5", rows, cols)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"grid only", "###\n"},
		{"bad health line", "lots\n#P#\n"},
		{"zero health", "0\n#P#\n"},
		{"ragged rows", "10\n####\n#P#\n####\n"},
		{"no player", "10\n###\n# #\n###\n"},
		{"two players", "10\n####\n#PP#\n####\n"},
		{"unknown glyph", "10\n####\n#P?#\n####\n"},
	}

	weapons := gamedata.MustLoadWeaponRegistry()
	slugKinds := gamedata.MustLoadSlugRegistry()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.text), weapons, slugKinds); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := parseLevel(t, smallLevel)
	b := parseLevel(t, smallLevel)
	if a.Fingerprint != b.Fingerprint {
		t.Error("same bytes should produce the same fingerprint")
	}
	if len(a.Fingerprint) != 16 {
		t.Errorf("fingerprint %q is not 16 hex digits", a.Fingerprint)
	}

	other := parseLevel(t, strings.Replace(smallLevel, "12", "13", 1))
	if other.Fingerprint == a.Fingerprint {
		t.Error("different bytes should produce a different fingerprint")
	}
}
