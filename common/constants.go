package common

// Virtual resolution in source pixels. The window is this size multiplied by
// the display scale.
const (
	WindowWidth  = 384
	WindowHeight = 216
)

const (
	TileSize     = 16
	DefaultScale = 4

	// TicksPerSecond matches ebiten's default update rate.
	TicksPerSecond = 60
)
