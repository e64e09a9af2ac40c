package system

import (
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
)

// BackgroundSystem scrolls parallax layers with the player and leapfrogs
// each copy once the player has moved a full layer width past it.
type BackgroundSystem struct{}

func NewBackgroundSystem() *BackgroundSystem {
	return &BackgroundSystem{}
}

func (s *BackgroundSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := w.First(component.PlayerComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.BackgroundComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bg *component.Background, t *component.Transform) {
		t.X = parallaxStep(t.X, pt.X, p.Velocity.X, bg.Acceleration, bg.Width)
	})
}

// parallaxStep advances a layer copy at x by the player's velocity scaled by
// acc. The wrap test uses the layer's position before the advance.
func parallaxStep(x, playerX, vx, acc, width float64) float64 {
	next := x + vx*acc
	if width <= 0 {
		return next
	}
	switch d := playerX - x; {
	case d > width:
		next += 2 * width
	case d < -width:
		next -= 2 * width
	}
	return next
}
