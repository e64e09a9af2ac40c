package ecs

import "github.com/hajimehoshi/ebiten/v2"

// DrawSystem draws ECS entities each frame.
type DrawSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Renderer runs draw systems in order, back to front.
type Renderer struct {
	systems []DrawSystem
}

func NewRenderer(systems ...DrawSystem) *Renderer {
	r := &Renderer{}
	for _, s := range systems {
		if s != nil {
			r.systems = append(r.systems, s)
		}
	}
	return r
}

// Draw calls all draw systems.
func (r *Renderer) Draw(w *World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	for _, s := range r.systems {
		s.Draw(w, screen)
	}
}
