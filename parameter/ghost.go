package parameter

// Mode scheduling
const (
	// PhasePeriodSec is the global scatter/chase alternation period
	PhasePeriodSec = 7.0

	// FrightenedDurationSec is how long ghosts stay frightened after the
	// player consumes a super pellet
	FrightenedDurationSec = 8.0

	// FrightenedWarnSec is the tail of the frightened window during which
	// the renderer flashes the ghosts
	FrightenedWarnSec = 2.0
)

// Ghost movement
const (
	// GhostSpeed is base movement speed in normalized units per second,
	// slightly under PlayerSpeed so a clean line always escapes
	GhostSpeed = 0.21

	// GhostFrightFactor slows frightened ghosts
	GhostFrightFactor = 0.6

	// GhostDeadFactor speeds up the home return of eaten ghosts
	GhostDeadFactor = 1.8

	// GhostHouseFactor slows the idle drift inside the house
	GhostHouseFactor = 0.5

	// GhostProbeTileFraction sizes the walkability probe as a fraction of
	// the tile extent along the probed axis, so a probe from a tile center
	// always lands in the adjacent tile regardless of layout dimensions
	GhostProbeTileFraction = 0.6

	// GhostHomeEpsilonSq is the squared arrival threshold for dead ghosts
	// returning to their home position
	GhostHomeEpsilonSq = 1e-4
)

// Catch resolution
const (
	// CatchRadius is the center distance below which player and ghost are
	// considered touching
	CatchRadius = 0.025

	// TimidChaseRange: identity D chases the player only beyond this
	// distance, about 8 tiles on the reference layout; closer than this it
	// retreats to its scatter corner
	TimidChaseRange = 0.28
)

// Personality targeting
const (
	// AmbusherLookAheadTiles is how far ahead of the player's facing
	// identity B aims
	AmbusherLookAheadTiles = 4

	// FlankerLookAheadTiles seeds identity C's mirror construction
	FlankerLookAheadTiles = 2
)

// House geometry on the reference layout. The door straddles the two
// center columns so its X is exactly mid-map.
const (
	HouseDoorX     = 0.5
	HouseExitRow   = 11 // first row above the door: reaching it means "outside"
	HouseMinX      = 0.41
	HouseMaxX      = 0.59
	HouseAlignEps  = 0.004
	GhostSpawnRow  = 14
)
