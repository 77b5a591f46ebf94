package parameter

// Player movement
const (
	// PlayerSpeed is base movement speed in normalized units per second.
	// 0.25 crosses the 28-column reference map in ~4 seconds, the classic pace.
	PlayerSpeed = 0.25

	// PlayerRadius is the collision circle radius, roughly a third of a tile
	// on the reference layout
	PlayerRadius = 0.012
)

// Power state
const (
	// PowerDurationSec is how long empowerment lasts after a super pellet
	PowerDurationSec = 8.0
)
