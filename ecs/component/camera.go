package component

// Camera follows the player horizontally. Smoothness is the lerp factor per
// tick, 1 snaps.
type Camera struct {
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
