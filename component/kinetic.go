package component

// KineticComponent holds position and per-tick velocity in simulation space
// Y grows upward, origin at the surface center
type KineticComponent struct {
	X, Y   float64
	VX, VY float64
}
