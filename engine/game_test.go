package engine

import (
	"testing"

	"github.com/lixenwraith/muncher/ghost"
	"github.com/lixenwraith/muncher/maze"
	"github.com/lixenwraith/muncher/parameter"
	"github.com/lixenwraith/muncher/player"
	"github.com/lixenwraith/muncher/vmath"
)

const dt = 1.0 / 60

func newGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(maze.DefaultLayout, vmath.NewFastRand(7), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// freeGhost pulls one crew member out of the house for proximity tests.
func freeGhost(g *Game, id ghost.Identity) *ghost.Ghost {
	for _, gh := range g.Pursuit.Ghosts() {
		if gh.Identity == id {
			gh.InHouse = false
			return gh
		}
	}
	return nil
}

func TestPelletScoring(t *testing.T) {
	g := newGame(t)
	g.Player.Pos = g.Grid.TileCenter(23, 12)

	ev := g.Advance(dt, player.InputState{})
	if ev.PelletsEaten != 1 {
		t.Fatalf("PelletsEaten = %d, want 1", ev.PelletsEaten)
	}
	if g.Score != parameter.PelletPoints {
		t.Errorf("score = %d, want %d", g.Score, parameter.PelletPoints)
	}

	ev = g.Advance(dt, player.InputState{})
	if ev.PelletsEaten != 0 {
		t.Error("pellet consumed twice")
	}
}

func TestSuperPelletEmpowersAndFrightens(t *testing.T) {
	g := newGame(t)
	g.Player.Pos = g.Grid.TileCenter(23, 26)

	ev := g.Advance(dt, player.InputState{})
	if !ev.PowerEaten {
		t.Fatal("super pellet not reported")
	}
	if g.Score != parameter.SuperPelletPoints {
		t.Errorf("score = %d, want %d", g.Score, parameter.SuperPelletPoints)
	}
	if !g.Player.IsEmpowered() {
		t.Error("player not empowered")
	}
	for _, gh := range g.Pursuit.Ghosts() {
		if gh.Mode != ghost.ModeFrightened {
			t.Errorf("%v mode = %v, want frightened", gh.Identity, gh.Mode)
		}
	}
}

func TestGhostComboScoring(t *testing.T) {
	g := newGame(t)

	a := freeGhost(g, ghost.IdentityShadow)
	b := freeGhost(g, ghost.IdentityAmbusher)
	a.Mode = ghost.ModeFrightened
	b.Mode = ghost.ModeFrightened
	a.Pos = g.Player.Pos
	b.Pos = g.Player.Pos

	ev := g.Advance(dt, player.InputState{})
	if ev.GhostsEaten != 2 {
		t.Fatalf("GhostsEaten = %d, want 2", ev.GhostsEaten)
	}
	want := parameter.BaseGhostPoints + parameter.BaseGhostPoints*2
	if g.Score != want {
		t.Errorf("score = %d, want %d (200 + 400 combo)", g.Score, want)
	}
	if !a.InHouse || a.Mode != ghost.ModeDead {
		t.Error("eaten ghost not respawned dead in the house")
	}
}

func TestComboCapsAtMaxPoints(t *testing.T) {
	g := newGame(t)
	g.combo = 5
	if got := g.comboPoints(); got != parameter.MaxGhostPoints {
		t.Errorf("comboPoints at depth 5 = %d, want cap %d", got, parameter.MaxGhostPoints)
	}
}

func TestCatchCostsLifeAndResets(t *testing.T) {
	g := newGame(t)
	spawn := g.Player.Pos

	gh := freeGhost(g, ghost.IdentityShadow)
	gh.Pos = g.Player.Pos

	ev := g.Advance(dt, player.InputState{})
	if !ev.Died {
		t.Fatal("catch not reported")
	}
	if g.Lives != parameter.StartLives-1 {
		t.Errorf("lives = %d, want %d", g.Lives, parameter.StartLives-1)
	}
	if g.Player.Pos != spawn {
		t.Errorf("player not reset: %v", g.Player.Pos)
	}
	if !gh.InHouse {
		t.Error("ghost not returned to the house after the reset")
	}
}

func TestGameOverLatches(t *testing.T) {
	g := newGame(t)
	g.Lives = 1

	gh := freeGhost(g, ghost.IdentityShadow)
	gh.Pos = g.Player.Pos

	ev := g.Advance(dt, player.InputState{})
	if !ev.GameOver || !g.Over() {
		t.Fatal("game over not reported on last life")
	}

	// Further ticks are inert
	score := g.Score
	ev = g.Advance(dt, player.InputState{Right: true})
	if !ev.GameOver || g.Score != score {
		t.Error("session advanced after game over")
	}
}

func TestLevelClearRestocksAndSpeedsUp(t *testing.T) {
	g := newGame(t)

	// Strip the board down to one pellet and stand on it
	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Columns(); col++ {
			if row == 23 && col == 12 {
				continue
			}
			g.Grid.ConsumePellet(row, col)
			g.Grid.ConsumeSuperPellet(row, col)
		}
	}
	g.Player.Pos = g.Grid.TileCenter(23, 12)

	ev := g.Advance(dt, player.InputState{})
	if !ev.LevelCleared {
		t.Fatal("level clear not reported")
	}
	if g.Level != 2 {
		t.Errorf("level = %d, want 2", g.Level)
	}
	if g.Grid.RemainingCollectibles() == 0 {
		t.Error("collectibles not restocked")
	}
}

func TestLevelMultiplierClamped(t *testing.T) {
	g := newGame(t)
	g.SetLevel(40)
	if g.Level != 40 {
		t.Fatalf("level = %d, want 40", g.Level)
	}
	// The clamp is observable through player step length
	g.Player.Pos = g.Grid.TileCenter(14, 7) // tunnel row, open corridor
	before := g.Player.Pos
	g.Player.Advance(dt, player.InputState{Right: true})
	step := g.Player.Pos.Sub(before).Magnitude()
	want := parameter.PlayerSpeed * parameter.MaxLevelMultiplier * dt
	if vmath.Abs(step-want) > 1e-9 {
		t.Errorf("step = %g, want clamped %g", step, want)
	}
}

func TestFrightExpiryRestoresHunting(t *testing.T) {
	g := newGame(t)
	gh := freeGhost(g, ghost.IdentityShadow)
	gh.Pos = g.Grid.TileCenter(1, 1)

	g.Player.Pos = g.Grid.TileCenter(23, 26)
	g.Advance(dt, player.InputState{})
	if gh.Mode != ghost.ModeFrightened {
		t.Fatal("ghost not frightened after super pellet")
	}

	elapsed := 0.0
	for elapsed < parameter.PowerDurationSec+0.1 {
		g.Advance(0.05, player.InputState{})
		elapsed += 0.05
	}
	if g.Player.IsEmpowered() {
		t.Error("power did not expire")
	}
	if gh.Mode == ghost.ModeFrightened {
		t.Error("ghost still frightened after power expiry")
	}
}
