package parameter

// System execution order, lower runs first
const (
	PriorityInteraction = 10
	PriorityPhysics     = 20
	PriorityAnimation   = 30
)
