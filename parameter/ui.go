package parameter

// Terminal projection
const (
	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0

	// PixelsPerColumn maps one terminal column to simulation units
	PixelsPerColumn = 8.0

	// StatusBarRows reserved at the bottom of the screen
	StatusBarRows = 1

	// ShockwaveFrames is how long a shockwave ring stays on screen
	ShockwaveFrames = 12
)

// Terminal window emulation
const (
	// WindowNudge is the pretend window displacement per arrow key, in screen pixels
	WindowNudge = 40
)
