package component

// Background is one copy of a parallax layer. Acceleration scales the
// player's horizontal velocity, Width is the wrap distance.
type Background struct {
	Layer        int
	Acceleration float64
	Width        float64
}

var BackgroundComponent = NewComponent[Background]()
