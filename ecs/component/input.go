package component

// Input stores per-frame input state for an entity.
type Input struct {
	Left          bool
	Right         bool
	Up            bool
	LeftReleased  bool
	RightReleased bool
}

var InputComponent = NewComponent[Input]()
