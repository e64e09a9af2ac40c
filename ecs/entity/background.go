package entity

import (
	"fmt"

	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
	"github.com/milk9111/jungle/prefabs"
)

// NewBackgrounds lays out every parallax layer as side-by-side copies, each
// one screen wide. Farther layers follow the camera more closely.
func NewBackgrounds(w *ecs.World, scale float64) ([]ecs.Entity, error) {
	spec, err := prefabs.LoadBackgroundSpec()
	if err != nil {
		return nil, fmt.Errorf("background: load spec: %w", err)
	}

	width := common.WindowWidth * scale
	var out []ecs.Entity
	for i := 0; i < spec.Layers; i++ {
		name := fmt.Sprintf("%s%d", spec.ImagePrefix, i)
		img, err := loadImage(name)
		if err != nil {
			return nil, fmt.Errorf("background: load %q: %w", name, err)
		}

		for j := 0; j < spec.Copies; j++ {
			e := ecs.CreateEntity(w)
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: float64(j) * width, Scale: scale}); err != nil {
				return nil, fmt.Errorf("background: add transform: %w", err)
			}
			if err := ecs.Add(w, e, component.BackgroundComponent.Kind(), &component.Background{
				Layer:        i,
				Acceleration: spec.AccelerationStep * float64(spec.Layers-i),
				Width:        width,
			}); err != nil {
				return nil, fmt.Errorf("background: add background: %w", err)
			}
			if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
				return nil, fmt.Errorf("background: add sprite: %w", err)
			}
			if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayerBase + i}); err != nil {
				return nil, fmt.Errorf("background: add render layer: %w", err)
			}
			out = append(out, e)
		}
	}
	return out, nil
}
