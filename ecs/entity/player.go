package entity

import (
	"fmt"

	"github.com/milk9111/jungle/ecs"
)

func NewPlayer(w *ecs.World, scale float64) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml", scale)
}

// NewPlayerAt spawns the player at a world position, which also becomes its
// respawn point.
func NewPlayerAt(w *ecs.World, scale, x, y float64) (ecs.Entity, error) {
	entity, err := NewPlayer(w, scale)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
