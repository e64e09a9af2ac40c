package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY := cameraPosition(w)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := viewportBB(camX, camY, sw, sh)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sortByLayer(w, entities)

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		scale := t.Scale
		if scale == 0 {
			scale = 1
		}
		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		if !view.Intersects(cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, iw*scale/2, ih*scale/2)) {
			continue
		}

		ox, oy := s.OriginX, s.OriginY
		if ox == 0 && oy == 0 {
			ox, oy = iw/2, ih/2
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-ox, -oy)
		if s.FacingLeft {
			op.GeoM.Scale(-1, 1)
		}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(worldToScreen(t.X, t.Y, camX, camY, sw, sh))

		screen.DrawImage(img, op)
	}
}

func sortByLayer(w *ecs.World, entities []ecs.Entity) {
	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return layerOf(entities[i]) < layerOf(entities[j])
	})
}

// viewportBB is the world-space rectangle visible on a screen of size
// (sw, sh) centred on the camera.
func viewportBB(camX, camY float64, sw, sh int) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: camX, Y: camY}, float64(sw)/2, float64(sh)/2)
}
