package component

// GrabComponent is the drag flag; WasHeld is last tick's value for edge detection
type GrabComponent struct {
	Held    bool
	WasHeld bool
}
