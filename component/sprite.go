package component

// SpriteComponent points into the sprite-state graph
type SpriteComponent struct {
	Index int
}
