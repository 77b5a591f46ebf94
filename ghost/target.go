package ghost

import (
	"github.com/lixenwraith/muncher/parameter"
	"github.com/lixenwraith/muncher/vmath"
)

// targetFor resolves one ghost's navigation target for the current tick.
// Scatter and Chase differ only in targeting policy; mode changes never
// touch position.
func (e *Engine) targetFor(g *Ghost, playerPos vmath.Vec, playerFacing vmath.Direction) vmath.Vec {
	switch g.Mode {
	case ModeFrightened:
		// Fresh uniform point each tick degrades navigation into a
		// random walk at every decision point
		return vmath.Vec{X: e.rng.Float64(), Y: e.rng.Float64()}
	case ModeDead:
		return e.exitPos
	case ModeScatter:
		return g.Scatter
	}
	return e.chaseTarget(g, playerPos, playerFacing)
}

// chaseTarget is the personality rule table. It reads the shadow ghost's
// position for the flanker's mirror construction but mutates nothing.
func (e *Engine) chaseTarget(g *Ghost, playerPos vmath.Vec, playerFacing vmath.Direction) vmath.Vec {
	switch g.Identity {
	case IdentityShadow:
		return playerPos

	case IdentityAmbusher:
		return e.aheadOfPlayer(playerPos, playerFacing, parameter.AmbusherLookAheadTiles)

	case IdentityFlanker:
		pivot := e.aheadOfPlayer(playerPos, playerFacing, parameter.FlankerLookAheadTiles)
		anchor := e.shadowPos(g)
		// Double the anchor->pivot vector: the reflection lands past the
		// player on the opposite side of the shadow ghost
		return anchor.Add(pivot.Sub(anchor).Scale(2))

	case IdentityTimid:
		const rangeSq = parameter.TimidChaseRange * parameter.TimidChaseRange
		if vmath.DistanceSq(g.Pos, playerPos) > rangeSq {
			return playerPos
		}
		return g.Scatter
	}
	return playerPos
}

// aheadOfPlayer offsets a point n tiles along the player's facing, using
// the tile extent of the movement axis.
func (e *Engine) aheadOfPlayer(playerPos vmath.Vec, facing vmath.Direction, tiles int) vmath.Vec {
	w, h := e.grid.TileSize()
	extent := h
	if facing.Horizontal() {
		extent = w
	}
	return playerPos.Add(facing.Vec().Scale(float64(tiles) * extent))
}

// shadowPos finds the shadow ghost's position for the flanker rule. A
// crew without a shadow anchors the mirror on the flanker itself.
func (e *Engine) shadowPos(self *Ghost) vmath.Vec {
	for _, g := range e.ghosts {
		if g.Identity == IdentityShadow {
			return g.Pos
		}
	}
	return self.Pos
}
