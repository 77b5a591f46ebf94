package parameter

// Scoring
const (
	PelletPoints      = 10
	SuperPelletPoints = 50

	// BaseGhostPoints doubles per ghost eaten within one empowerment:
	// 200, 400, 800, 1600
	BaseGhostPoints = 200
	MaxGhostPoints  = 1600
)

// Session
const (
	StartLives = 3

	// LevelSpeedStep is the speed multiplier increase per cleared level
	LevelSpeedStep = 0.05

	// MaxLevelMultiplier caps progression so late levels stay playable
	MaxLevelMultiplier = 1.5

	// PlayerSpawnRow is the spawn row on the reference layout; spawn X is
	// mid-map, between the two center columns
	PlayerSpawnRow = 23
)
