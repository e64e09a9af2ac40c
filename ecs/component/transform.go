package component

// Transform places an entity in the y-up world. Scale is the display scale
// applied to the sprite, positions are already in world units.
type Transform struct {
	X     float64
	Y     float64
	Scale float64
}

var TransformComponent = NewComponent[Transform]()
