package component

// BodyComponent is the circular body; Size is the diameter
type BodyComponent struct {
	Size          float64
	Rotation      float64 // Radians
	RotationSpeed float64 // Radians per tick before the global scale
}

// Radius returns half the diameter
func (b BodyComponent) Radius() float64 {
	return b.Size * 0.5
}
