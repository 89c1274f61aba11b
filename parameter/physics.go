package parameter

// Wall response
const (
	// WallRestThreshold zeroes perpendicular velocity below this after a wall hit
	WallRestThreshold = 0.5

	// RotationReseedThreshold is the |rotation speed| under which a wall hit may reseed spin
	RotationReseedThreshold = 0.01

	// RotationReseedSpeedSq is the minimum pre-bounce speed squared for a spin reseed
	RotationReseedSpeedSq = 100.0

	// RotationJitter is the half width of the random spin range [-j, j)
	RotationJitter = 0.5

	// BounceSoundSpeedSq scaled by bounce responsiveness gives the wall-bounce emission threshold
	BounceSoundSpeedSq = 1000.0
)

// Spawn seeding, as fractions of half extents
const (
	SeedBandBase   = 0.4
	SeedBandHeight = 0.6

	// SeedSpreadX scales (r-0.5) to the initial horizontal velocity
	SeedSpreadX = 5.0

	// SeedLiftY scales r to the initial vertical velocity
	SeedLiftY = 2.0
)

// Window inertia
const (
	// WindowMoveThreshold ignores window jitter at or under this many pixels per axis
	WindowMoveThreshold = 0.5
)
