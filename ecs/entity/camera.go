package entity

import (
	"github.com/milk9111/jungle/ecs"
)

func NewCamera(w *ecs.World, scale float64) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml", scale)
}
