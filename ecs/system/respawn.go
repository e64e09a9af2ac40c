package system

import (
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
	"github.com/milk9111/jungle/kinematics"
)

type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

// Update performs pending respawn requests for players. It runs after
// FallDeathSystem so the death is counted on the same tick.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		defer ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
		if !ok {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		applyPlayerState(p, t, kinematics.Respawn(playerState(p, t), p.InitialPosition))
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerRespawned, Entity: e, Data: p.InitialPosition})
	})
}
