// Package player implements the player-controlled agent: validated
// continuous movement, collectible consumption, and the timed power
// state. All interaction with the map goes through the maze grid.
package player

import (
	"github.com/lixenwraith/muncher/maze"
	"github.com/lixenwraith/muncher/parameter"
	"github.com/lixenwraith/muncher/vmath"
)

// InputState carries the directional flags active for one tick.
type InputState struct {
	Up, Down, Left, Right bool
}

// Agent is the player entity. Facing persists across ticks with no
// input; it never resets to a neutral value.
type Agent struct {
	Pos    vmath.Vec
	Facing vmath.Direction

	grid  *maze.Grid
	spawn vmath.Vec

	levelMult float64

	// Simulation clock in seconds, advanced by dt. The power state is
	// timestamped against this clock so the agent stays deterministic.
	elapsed     float64
	empowered   bool
	empoweredAt float64
}

func New(grid *maze.Grid, spawn vmath.Vec) *Agent {
	return &Agent{
		Pos:       spawn,
		Facing:    vmath.DirRight,
		grid:      grid,
		spawn:     spawn,
		levelMult: 1.0,
	}
}

// SetLevel adjusts the speed multiplier for level progression.
func (a *Agent) SetLevel(mult float64) {
	a.levelMult = mult
}

// Reset returns the agent to its spawn after a lost life. The power
// state clears; facing keeps its last value.
func (a *Agent) Reset() {
	a.Pos = a.spawn
	a.empowered = false
}

// Advance moves the agent by one tick. Diagonal input is normalized to
// unit length before scaling, and a colliding move is rejected in full:
// there is no axis-sliding along wall faces.
func (a *Agent) Advance(dt float64, in InputState) {
	a.elapsed += dt
	if a.empowered && a.elapsed-a.empoweredAt >= parameter.PowerDurationSec {
		a.empowered = false
	}

	var dir vmath.Vec
	if in.Right {
		dir.X += 1
	}
	if in.Left {
		dir.X -= 1
	}
	if in.Up {
		dir.Y += 1
	}
	if in.Down {
		dir.Y -= 1
	}

	// Facing stays a single cardinal; horizontal input wins on diagonals
	switch {
	case in.Right && !in.Left:
		a.Facing = vmath.DirRight
	case in.Left && !in.Right:
		a.Facing = vmath.DirLeft
	case in.Up && !in.Down:
		a.Facing = vmath.DirUp
	case in.Down && !in.Up:
		a.Facing = vmath.DirDown
	}

	if dir.IsZero() {
		return
	}

	step := parameter.PlayerSpeed * a.levelMult * dt
	next := a.Pos.Add(dir.Normalize().Scale(step))
	next = a.grid.Wrap(next, parameter.WrapMargin)

	if a.grid.HasCollision(next, parameter.PlayerRadius) {
		return
	}
	a.Pos = next
}

// TryConsumePellet clears the pellet under the agent, reporting whether
// a consumption occurred.
func (a *Agent) TryConsumePellet() bool {
	row, col := a.grid.TileOf(a.Pos)
	return a.grid.ConsumePellet(row, col)
}

// TryConsumeSuperPellet clears the super pellet under the agent.
// Empowerment is triggered by the caller on success, not here: the
// composition layer owns the coupling to the ghost engine.
func (a *Agent) TryConsumeSuperPellet() bool {
	row, col := a.grid.TileOf(a.Pos)
	return a.grid.ConsumeSuperPellet(row, col)
}

// Empower starts the timed power state.
func (a *Agent) Empower() {
	a.empowered = true
	a.empoweredAt = a.elapsed
}

func (a *Agent) IsEmpowered() bool { return a.empowered }

// PowerRemaining returns seconds of empowerment left, zero when normal.
func (a *Agent) PowerRemaining() float64 {
	if !a.empowered {
		return 0
	}
	rem := parameter.PowerDurationSec - (a.elapsed - a.empoweredAt)
	if rem < 0 {
		return 0
	}
	return rem
}
