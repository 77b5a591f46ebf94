// Package ghost implements the pursuer decision engine: per-ghost mode
// state machine, personality targeting, greedy tile navigation, and the
// serialized house egress protocol. The engine owns every mutable ghost
// field; collaborators read positions and modes after the tick.
package ghost

import (
	"github.com/lixenwraith/muncher/parameter"
	"github.com/lixenwraith/muncher/vmath"
)

// Mode is the behavior state of one ghost.
type Mode uint8

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	ModeDead
)

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeDead:
		return "dead"
	}
	return "unknown"
}

// Identity selects a ghost's chase rule and scatter corner.
type Identity uint8

const (
	// IdentityShadow chases the player's exact position
	IdentityShadow Identity = iota
	// IdentityAmbusher aims ahead of the player's facing
	IdentityAmbusher
	// IdentityFlanker mirrors an ahead-of-player point through Shadow's
	// position to attack from the far side
	IdentityFlanker
	// IdentityTimid chases only at range, retreating to its corner when close
	IdentityTimid
)

func (id Identity) String() string {
	switch id {
	case IdentityShadow:
		return "shadow"
	case IdentityAmbusher:
		return "ambusher"
	case IdentityFlanker:
		return "flanker"
	case IdentityTimid:
		return "timid"
	}
	return "unknown"
}

// Ghost is one pursuer. Identity, Home and the scatter corner are fixed
// at session start; everything else is engine-mutated per tick.
type Ghost struct {
	Identity Identity
	Pos      vmath.Vec
	Dir      vmath.Direction
	Mode     Mode
	InHouse  bool

	// Home is the spawn point, the respawn target for eaten ghosts
	Home    vmath.Vec
	Scatter vmath.Vec

	// prevDir detects direction changes for the snap-to-center rule
	prevDir vmath.Direction

	// previous decision tile; -1 forces a decision on the first step
	prevRow, prevCol int
}

// New creates a ghost at its home position in Scatter mode.
func New(id Identity, home, scatter vmath.Vec, inHouse bool) *Ghost {
	dir := vmath.DirLeft
	if inHouse {
		// Staggered drift so housed ghosts reach door alignment at
		// different times
		if id == IdentityFlanker || id == IdentityTimid {
			dir = vmath.DirRight
		}
	}
	return &Ghost{
		Identity: id,
		Pos:      home,
		Dir:      dir,
		Mode:     ModeScatter,
		InHouse:  inHouse,
		Home:     home,
		Scatter:  scatter,
		prevDir:  dir,
		prevRow:  -1,
		prevCol:  -1,
	}
}

// respawn puts an eaten ghost back in the house at its home position.
func (g *Ghost) respawn() {
	g.Pos = g.Home
	g.Mode = ModeDead
	g.InHouse = true
	g.Dir = vmath.DirLeft
	g.prevDir = g.Dir
	g.prevRow = -1
	g.prevCol = -1
}

// reset restores session-start state after a lost life.
func (g *Ghost) reset(inHouse bool) {
	g.Pos = g.Home
	g.Mode = ModeScatter
	g.InHouse = inHouse
	g.Dir = vmath.DirLeft
	g.prevDir = g.Dir
	g.prevRow = -1
	g.prevCol = -1
}

// DefaultCrew builds the four reference ghosts inside the house. Homes
// sit on the house row at distinct offsets around the door column;
// scatter corners are the four map corners.
func DefaultCrew(houseY float64) []*Ghost {
	return []*Ghost{
		New(IdentityShadow, vmath.Vec{X: parameter.HouseDoorX, Y: houseY}, vmath.Vec{X: 0.95, Y: 0.95}, true),
		New(IdentityAmbusher, vmath.Vec{X: 0.464, Y: houseY}, vmath.Vec{X: 0.05, Y: 0.95}, true),
		New(IdentityFlanker, vmath.Vec{X: 0.536, Y: houseY}, vmath.Vec{X: 0.95, Y: 0.05}, true),
		New(IdentityTimid, vmath.Vec{X: 0.428, Y: houseY}, vmath.Vec{X: 0.05, Y: 0.05}, true),
	}
}
