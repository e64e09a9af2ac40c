package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type AnimationDef struct {
	Name       string
	Row        int
	FrameCount int
	FrameW     int
	FrameH     int
	FrameTime  float64 // seconds per frame
	Loop       bool
}

type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
