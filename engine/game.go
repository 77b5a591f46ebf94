// Package engine composes the grid, the player agent and the ghost
// engine into the per-tick simulation pipeline, and carries session
// state: score, lives, level. Collaborators (renderer, audio, HUD) read
// engine state only after Advance returns.
package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/muncher/ghost"
	"github.com/lixenwraith/muncher/maze"
	"github.com/lixenwraith/muncher/parameter"
	"github.com/lixenwraith/muncher/player"
	"github.com/lixenwraith/muncher/vmath"
)

// TickEvents reports what happened during one Advance so collaborators
// can trigger sounds and HUD flashes without inspecting internals.
type TickEvents struct {
	PelletsEaten int
	PowerEaten   bool
	GhostsEaten  int
	Died         bool
	LevelCleared bool
	GameOver     bool
}

// Game is the complete simulation session.
type Game struct {
	Grid    *maze.Grid
	Player  *player.Agent
	Pursuit *ghost.Engine

	Score int
	Lives int
	Level int

	// Ghost-eat combo within one empowerment window: 200, 400, 800, 1600
	combo int

	over bool

	log *logrus.Logger
}

// New builds a session on the given layout. A nil logger discards.
func New(layout []string, rng *vmath.FastRand, log *logrus.Logger) (*Game, error) {
	grid, err := maze.New(layout)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	spawn := vmath.Vec{
		X: 0.5,
		Y: grid.TileCenter(parameter.PlayerSpawnRow, 0).Y,
	}
	houseY := grid.TileCenter(parameter.GhostSpawnRow, 0).Y

	g := &Game{
		Grid:    grid,
		Player:  player.New(grid, spawn),
		Pursuit: ghost.NewEngine(grid, rng, ghost.DefaultCrew(houseY)),
		Lives:   parameter.StartLives,
		Level:   1,
		log:     log,
	}
	return g, nil
}

func (g *Game) Over() bool { return g.over }

// SetLevel applies the speed multiplier for a level to both movers.
func (g *Game) SetLevel(level int) {
	g.Level = level
	mult := 1.0 + float64(level-1)*parameter.LevelSpeedStep
	if mult > parameter.MaxLevelMultiplier {
		mult = parameter.MaxLevelMultiplier
	}
	g.Player.SetLevel(mult)
	g.Pursuit.SetLevel(mult)
}

// Advance runs one simulation tick: player movement, consumption, ghost
// step, then proximity resolution. Synchronous and single-threaded; no
// collaborator may observe state mid-call.
func (g *Game) Advance(dt float64, in player.InputState) TickEvents {
	var ev TickEvents
	if g.over {
		ev.GameOver = true
		return ev
	}

	wasEmpowered := g.Player.IsEmpowered()
	g.Player.Advance(dt, in)

	if g.Player.TryConsumePellet() {
		ev.PelletsEaten++
		g.Score += parameter.PelletPoints
	}
	if g.Player.TryConsumeSuperPellet() {
		ev.PowerEaten = true
		g.Score += parameter.SuperPelletPoints
		g.Player.Empower()
		g.Pursuit.SetEmpowered(true)
		g.combo = 0
		g.log.WithField("score", g.Score).Debug("empowered")
	}
	if wasEmpowered && !g.Player.IsEmpowered() {
		g.Pursuit.SetEmpowered(false)
	}

	g.Pursuit.Advance(dt, g.Player.Pos, g.Player.Facing)

	if eaten := g.Pursuit.ResolveEvade(g.Player.Pos); eaten > 0 {
		ev.GhostsEaten = eaten
		for i := 0; i < eaten; i++ {
			g.Score += g.comboPoints()
			g.combo++
		}
		g.log.WithFields(logrus.Fields{"eaten": eaten, "score": g.Score}).Debug("ghosts eaten")
	}

	if g.Pursuit.QueryCatch(g.Player.Pos) {
		ev.Died = true
		g.Lives--
		g.log.WithField("lives", g.Lives).Info("player caught")
		if g.Lives <= 0 {
			g.over = true
			ev.GameOver = true
			return ev
		}
		g.resetPositions()
		return ev
	}

	if g.Grid.RemainingCollectibles() == 0 {
		ev.LevelCleared = true
		g.log.WithField("level", g.Level).Info("level cleared")
		g.SetLevel(g.Level + 1)
		g.Grid.InitCollectibles()
		g.resetPositions()
	}

	return ev
}

func (g *Game) comboPoints() int {
	points := parameter.BaseGhostPoints << g.combo
	if points > parameter.MaxGhostPoints {
		points = parameter.MaxGhostPoints
	}
	return points
}

func (g *Game) resetPositions() {
	g.Player.Reset()
	g.Pursuit.ResetPositions()
}
