package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/slugdungeon/internal/dungeon"
	"github.com/samdwyer/slugdungeon/internal/entity"
	"github.com/samdwyer/slugdungeon/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the grid, slugs, player, and status line.
func (r *Renderer) Render(m *dungeon.Model) {
	r.screen.Clear()

	rows, cols := m.Dimensions()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			glyph, style := tileAppearance(m.GetTile(world.Position{Row: row, Col: col}))
			r.screen.SetContent(col, row, glyph, style)
		}
	}

	// Slugs over terrain, player on top.
	for pos, slug := range m.Slugs() {
		style := tcell.StyleDefault.Foreground(slug.Def().TCellColor())
		r.screen.SetContent(pos.Col, pos.Row, slug.Glyph(), style)
	}
	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	pos := m.PlayerPosition()
	r.screen.SetContent(pos.Col, pos.Row, entity.PlayerGlyph, playerStyle)

	r.renderStatus(m, rows+1)

	r.screen.Show()
}

// tileAppearance returns the glyph and style for a tile, with any weapon
// lying on it drawn in the weapon's own color instead of the terrain.
func tileAppearance(tile *world.Tile) (rune, tcell.Style) {
	if weapon := tile.Weapon(); weapon != nil {
		return weapon.GlyphRune(), tcell.StyleDefault.Foreground(weapon.TCellColor())
	}
	switch {
	case tile.IsBlocking():
		return tile.Glyph(), tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case tile.IsGoal():
		return tile.Glyph(), tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	default:
		return tile.Glyph(), tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

func (r *Renderer) renderStatus(m *dungeon.Model, y int) {
	weaponName := "none"
	if w := m.Player().Weapon(); w != nil {
		weaponName = w.Name
	}
	status := fmt.Sprintf("HP %d/%d  Poison %d  Weapon %s  Slugs %d",
		m.Player().Health(), m.Player().MaxHealth(),
		m.Player().Poison(), weaponName, len(m.Slugs()))
	r.screen.Print(0, y, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// RenderBanner displays an end-of-game message below the status line.
func (r *Renderer) RenderBanner(m *dungeon.Model, msg string) {
	rows, _ := m.Dimensions()
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.Print(0, rows+3, msg, style)
	r.screen.Show()
}
