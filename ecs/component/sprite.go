package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is drawn centred on the Transform unless an origin is given.
type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
