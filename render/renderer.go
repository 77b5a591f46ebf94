// Package render draws the session to a tcell screen: one terminal cell
// per maze tile, a HUD line underneath, and pause/game-over overlays.
// The renderer owns only presentation state (tweens, flash phase); it
// reads the simulation and never mutates it.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/muncher/engine"
	"github.com/lixenwraith/muncher/ghost"
	"github.com/lixenwraith/muncher/parameter"
)

var identityColor = map[ghost.Identity]tcell.Color{
	ghost.IdentityShadow:   tcell.ColorRed,
	ghost.IdentityAmbusher: tcell.ColorHotPink,
	ghost.IdentityFlanker:  tcell.ColorAqua,
	ghost.IdentityTimid:    tcell.ColorOrange,
}

const (
	wallGlyph        = '█'
	doorGlyph        = '─'
	pelletGlyph      = '·'
	superPelletGlyph = 'o'
	playerGlyph      = 'C'
	ghostGlyph       = 'M'
	deadGlyph        = '"'

	flashPeriodSec = 0.25
)

// Renderer draws one frame per Draw call.
type Renderer struct {
	screen tcell.Screen

	// Super pellet brightness pulse, ping-ponged on completion
	pulse     *gween.Tween
	pulseUp   bool
	pulseVal  float32
	flashTime float64
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:   screen,
		pulse:    gween.New(0.35, 1.0, 0.5, ease.InOutQuad),
		pulseUp:  true,
		pulseVal: 1.0,
	}
}

// Draw renders the full frame. dt advances presentation-only animation
// and is independent of the simulation tick.
func (r *Renderer) Draw(g *engine.Game, dt float64, paused bool) {
	r.animate(dt)

	s := r.screen
	s.Clear()

	sw, sh := s.Size()
	cols, rows := g.Grid.Columns(), g.Grid.Rows()
	ox := (sw - cols) / 2
	oy := (sh - rows - 1) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}

	r.drawMaze(g, ox, oy)
	r.drawPlayer(g, ox, oy)
	r.drawGhosts(g, ox, oy)
	r.drawHUD(g, ox, oy+rows, cols, paused)

	s.Show()
}

func (r *Renderer) animate(dt float64) {
	val, finished := r.pulse.Update(float32(dt))
	r.pulseVal = val
	if finished {
		if r.pulseUp {
			r.pulse = gween.New(1.0, 0.35, 0.5, ease.InOutQuad)
		} else {
			r.pulse = gween.New(0.35, 1.0, 0.5, ease.InOutQuad)
		}
		r.pulseUp = !r.pulseUp
	}
	r.flashTime += dt
}

func (r *Renderer) drawMaze(g *engine.Game, ox, oy int) {
	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorNavy)
	doorStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	pelletStyle := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)

	v := int32(255 * r.pulseVal)
	superStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v, 0))

	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Columns(); col++ {
			x, y := ox+col, oy+row
			switch {
			case g.Grid.PelletAt(row, col):
				r.screen.SetContent(x, y, pelletGlyph, nil, pelletStyle)
			case g.Grid.SuperPelletAt(row, col):
				r.screen.SetContent(x, y, superPelletGlyph, nil, superStyle)
			case g.Grid.Symbol(row, col) == parameter.SymbolWall:
				r.screen.SetContent(x, y, wallGlyph, nil, wallStyle)
			case g.Grid.Symbol(row, col) == parameter.SymbolDoor:
				r.screen.SetContent(x, y, doorGlyph, nil, doorStyle)
			}
		}
	}
}

func (r *Renderer) drawPlayer(g *engine.Game, ox, oy int) {
	row, col := g.Grid.TileOf(g.Player.Pos)
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.SetContent(ox+col, oy+row, playerGlyph, nil, style)
}

func (r *Renderer) drawGhosts(g *engine.Game, ox, oy int) {
	frightLeft := g.Pursuit.FrightRemaining()
	flashOn := int(r.flashTime/flashPeriodSec)%2 == 0

	for _, gh := range g.Pursuit.Ghosts() {
		row, col := g.Grid.TileOf(gh.Pos)

		glyph := ghostGlyph
		var style tcell.Style
		switch gh.Mode {
		case ghost.ModeDead:
			glyph = deadGlyph
			style = tcell.StyleDefault.Foreground(tcell.ColorGray)
		case ghost.ModeFrightened:
			color := tcell.ColorBlue
			if frightLeft <= parameter.FrightenedWarnSec && flashOn {
				color = tcell.ColorWhite
			}
			style = tcell.StyleDefault.Foreground(color)
		default:
			style = tcell.StyleDefault.Foreground(identityColor[gh.Identity])
		}
		r.screen.SetContent(ox+col, oy+row, glyph, nil, style)
	}
}

func (r *Renderer) drawHUD(g *engine.Game, ox, y, cols int, paused bool) {
	hud := fmt.Sprintf("SCORE %d  LIVES %d  LEVEL %d", g.Score, g.Lives, g.Level)
	r.drawText(ox, y, hud, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if g.Over() {
		r.drawCentered(ox, y-1, cols, " GAME OVER ",
			tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	} else if paused {
		r.drawCentered(ox, y-1, cols, " PAUSED ",
			tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawCentered(ox, y, cols int, text string, style tcell.Style) {
	r.drawText(ox+(cols-len(text))/2, y, text, style)
}
