package ghost

import (
	"math"

	"github.com/lixenwraith/muncher/maze"
	"github.com/lixenwraith/muncher/parameter"
	"github.com/lixenwraith/muncher/vmath"
)

// decisionOrder is the fixed candidate enumeration, which doubles as the
// tie-break when two directions leave equal distance to the target.
var decisionOrder = [4]vmath.Direction{
	vmath.DirUp,
	vmath.DirLeft,
	vmath.DirDown,
	vmath.DirRight,
}

// Engine drives all ghosts. It owns the global phase timer, the
// frightened timer, and the single house door flag that serializes
// egress across ghosts.
type Engine struct {
	grid   *maze.Grid
	ghosts []*Ghost
	rng    *vmath.FastRand

	// Global phase timer alternates the default mode
	phaseTimer  float64
	defaultMode Mode

	// Remaining frightened window; zero when inactive
	frightTimer float64

	// House door flag: at most one ghost mid-teleport through the door.
	// nil when the door is free.
	doorOwner *Ghost

	levelMult float64

	// exitPos is the fixed tile outside the house door
	exitPos vmath.Vec
}

// NewEngine wires the grid, the injected RNG, and the crew. The crew is
// passed in rather than built here so tests can run reduced setups.
func NewEngine(grid *maze.Grid, rng *vmath.FastRand, crew []*Ghost) *Engine {
	return &Engine{
		grid:        grid,
		ghosts:      crew,
		rng:         rng,
		defaultMode: ModeScatter,
		levelMult:   1.0,
		exitPos: vmath.Vec{
			X: parameter.HouseDoorX,
			Y: grid.TileCenter(parameter.HouseExitRow, 0).Y,
		},
	}
}

func (e *Engine) Ghosts() []*Ghost { return e.ghosts }

// DefaultMode returns the current phase-timer-driven mode.
func (e *Engine) DefaultMode() Mode { return e.defaultMode }

// FrightRemaining returns seconds left in the frightened window.
func (e *Engine) FrightRemaining() float64 {
	if e.frightTimer < 0 {
		return 0
	}
	return e.frightTimer
}

// SetLevel adjusts the speed multiplier for level progression.
func (e *Engine) SetLevel(mult float64) { e.levelMult = mult }

// SetEmpowered forces every non-dead ghost into Frightened (or back out
// of it), independent of the phase timer. Entering Frightened reverses
// each ghost so pursuit pressure breaks instantly.
func (e *Engine) SetEmpowered(on bool) {
	if !on {
		e.frightTimer = 0
		e.revertFrightened()
		return
	}
	e.frightTimer = parameter.FrightenedDurationSec
	for _, g := range e.ghosts {
		if g.Mode == ModeDead {
			continue
		}
		g.Mode = ModeFrightened
		if opp := g.Dir.Opposite(); opp != vmath.DirNone && !g.InHouse {
			g.Dir = opp
			g.prevDir = opp
		}
	}
}

func (e *Engine) revertFrightened() {
	for _, g := range e.ghosts {
		if g.Mode == ModeFrightened {
			g.Mode = e.defaultMode
		}
	}
}

// ResetPositions returns every ghost to its home after a lost life. The
// door flag releases; the phase timer keeps running.
func (e *Engine) ResetPositions() {
	e.doorOwner = nil
	e.frightTimer = 0
	for _, g := range e.ghosts {
		g.reset(true)
		if e.defaultMode == ModeChase {
			g.Mode = ModeChase
		}
	}
}

// Advance runs one simulation tick for all ghosts.
func (e *Engine) Advance(dt float64, playerPos vmath.Vec, playerFacing vmath.Direction) {
	e.phaseTimer += dt
	for e.phaseTimer >= parameter.PhasePeriodSec {
		e.phaseTimer -= parameter.PhasePeriodSec
		if e.defaultMode == ModeScatter {
			e.defaultMode = ModeChase
		} else {
			e.defaultMode = ModeScatter
		}
		for _, g := range e.ghosts {
			if g.Mode == ModeScatter || g.Mode == ModeChase {
				g.Mode = e.defaultMode
			}
		}
	}

	if e.frightTimer > 0 {
		e.frightTimer -= dt
		if e.frightTimer <= 0 {
			e.frightTimer = 0
			e.revertFrightened()
		}
	}

	for _, g := range e.ghosts {
		e.step(g, dt, playerPos, playerFacing)
	}
}

func (e *Engine) step(g *Ghost, dt float64, playerPos vmath.Vec, playerFacing vmath.Direction) {
	if g.Mode == ModeDead {
		e.stepDead(g, dt)
		return
	}
	if g.InHouse {
		e.stepHouse(g, dt)
		return
	}

	target := e.targetFor(g, playerPos, playerFacing)
	e.navigate(g, target, dt)
}

// stepDead moves an eaten ghost straight toward home, ignoring walls,
// and revives it to the phase mode once inside the house.
func (e *Engine) stepDead(g *Ghost, dt float64) {
	if g.InHouse {
		// Revived ghosts rejoin the phase mode, never a running fright
		// window: being eaten clears vulnerability
		g.Mode = e.defaultMode
		return
	}
	delta := g.Home.Sub(g.Pos)
	if delta.MagnitudeSq() <= parameter.GhostHomeEpsilonSq {
		g.respawn()
		return
	}
	step := parameter.GhostSpeed * parameter.GhostDeadFactor * e.levelMult * dt
	g.Pos = g.Pos.Add(delta.Normalize().Scale(step))
}

// stepHouse runs the shared-door egress protocol. At most one ghost may
// be mid-teleport through the door; the flag releases only when the
// holder's row crosses the exit threshold.
func (e *Engine) stepHouse(g *Ghost, dt float64) {
	if e.doorOwner == g {
		// Vertical teleport move through the door
		step := parameter.GhostSpeed * e.levelMult * dt
		g.Pos.Y += step
		row, _ := e.grid.TileOf(g.Pos)
		if row <= parameter.HouseExitRow {
			e.doorOwner = nil
			e.exit(g)
		}
		return
	}

	row, _ := e.grid.TileOf(g.Pos)
	if row <= parameter.HouseExitRow {
		// Already above the door threshold: exit to the fixed tile
		e.exit(g)
		return
	}

	if e.doorOwner == nil && vmath.Abs(g.Pos.X-parameter.HouseDoorX) <= parameter.HouseAlignEps {
		// Claim the door and start the vertical teleport
		e.doorOwner = g
		g.Pos.X = parameter.HouseDoorX
		g.Dir = vmath.DirUp
		g.prevDir = g.Dir
		return
	}

	// Not aligned, door busy or both: keep drifting between house walls
	if !g.Dir.Horizontal() {
		g.Dir = vmath.DirLeft
		g.prevDir = g.Dir
	}
	step := parameter.GhostSpeed * parameter.GhostHouseFactor * e.levelMult * dt
	next := g.Pos.Add(g.Dir.Vec().Scale(step))
	if next.X < parameter.HouseMinX || next.X > parameter.HouseMaxX {
		g.Dir = g.Dir.Opposite()
		g.prevDir = g.Dir
		return
	}
	g.Pos = next
}

func (e *Engine) exit(g *Ghost) {
	g.Pos = e.exitPos
	g.InHouse = false
	g.Dir = vmath.DirLeft
	g.prevDir = g.Dir
	g.prevRow = -1
	g.prevCol = -1
}

// navigate applies the per-tick movement algorithm for a free ghost:
// re-decide direction on tile entry or when blocked, snap to the tile
// center on turns, advance, wrap.
func (e *Engine) navigate(g *Ghost, target vmath.Vec, dt float64) {
	row, col := e.grid.TileOf(g.Pos)
	blocked := e.blocked(g.Pos, g.Dir)
	newTile := row != g.prevRow || col != g.prevCol

	if newTile || blocked {
		g.prevRow = row
		g.prevCol = col
		if dir := e.chooseDirection(g, row, col, target); dir != vmath.DirNone {
			g.Dir = dir
		}
		// No walkable candidate leaves the previous direction in place:
		// the ghost may stall against a wall until the next decision
		// point, which is accepted behavior rather than an error.
	}

	if g.Dir != g.prevDir {
		// Snap to the decision tile's center so accumulated drift never
		// clips a corner
		g.Pos = e.grid.TileCenter(row, col)
		g.prevDir = g.Dir
	}

	speed := parameter.GhostSpeed * e.levelMult
	if g.Mode == ModeFrightened {
		speed *= parameter.GhostFrightFactor
	}
	g.Pos = g.Pos.Add(g.Dir.Vec().Scale(speed * dt))
	g.Pos = e.grid.Wrap(g.Pos, parameter.WrapMargin)
}

// blocked probes a point offset into the adjacent tile along dir and
// reports whether it falls on an unwalkable tile. The probe wraps like
// a position does, so both tunnel mouths read as open and the teleport
// stays symmetric.
func (e *Engine) blocked(pos vmath.Vec, dir vmath.Direction) bool {
	if dir == vmath.DirNone {
		return true
	}
	w, h := e.grid.TileSize()
	extent := h
	if dir.Horizontal() {
		extent = w
	}
	probe := pos.Add(dir.Vec().Scale(parameter.GhostProbeTileFraction * extent))
	probe = e.grid.Wrap(probe, parameter.WrapMargin)
	row, col := e.grid.TileOf(probe)
	return !e.grid.IsWalkable(row, col)
}

// chooseDirection picks among the three non-reverse cardinals the one
// whose destination tile minimizes Euclidean distance to the target.
// Ties break by the fixed enumeration order Up, Left, Down, Right. At a
// dead end, where no non-reverse candidate is walkable, reversal is
// forced.
func (e *Engine) chooseDirection(g *Ghost, row, col int, target vmath.Vec) vmath.Direction {
	reverse := g.Dir.Opposite()

	best := vmath.DirNone
	bestDist := math.MaxFloat64
	for _, d := range decisionOrder {
		if d == reverse {
			continue
		}
		if e.blocked(g.Pos, d) {
			continue
		}
		dr, dc := d.RowCol()
		dist := vmath.DistanceSq(e.grid.TileCenter(row+dr, col+dc), target)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	if best == vmath.DirNone && reverse != vmath.DirNone && !e.blocked(g.Pos, reverse) {
		return reverse
	}
	return best
}

// --- Catch resolution ---

// QueryCatch reports whether any hunting ghost is within catch radius of
// the player. Frightened and dead ghosts never catch; housed ghosts are
// walled off from play.
func (e *Engine) QueryCatch(playerPos vmath.Vec) bool {
	const rSq = parameter.CatchRadius * parameter.CatchRadius
	for _, g := range e.ghosts {
		if g.Mode == ModeFrightened || g.Mode == ModeDead || g.InHouse {
			continue
		}
		if vmath.DistanceSq(g.Pos, playerPos) <= rSq {
			return true
		}
	}
	return false
}

// ResolveEvade transitions every frightened ghost within catch radius to
// Dead, respawning it at home inside the house in the same tick. Returns
// the number of ghosts eaten.
func (e *Engine) ResolveEvade(playerPos vmath.Vec) int {
	const rSq = parameter.CatchRadius * parameter.CatchRadius
	eaten := 0
	for _, g := range e.ghosts {
		if g.Mode != ModeFrightened || g.InHouse {
			continue
		}
		if vmath.DistanceSq(g.Pos, playerPos) <= rSq {
			if e.doorOwner == g {
				e.doorOwner = nil
			}
			g.respawn()
			eaten++
		}
	}
	return eaten
}
