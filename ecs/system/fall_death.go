package system

import (
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
	"github.com/milk9111/jungle/kinematics"
	"github.com/milk9111/jungle/session"
)

// FallDeathSystem flags players falling faster than their fatal speed for
// respawn.
type FallDeathSystem struct {
	session *session.Session
}

func NewFallDeathSystem(s *session.Session) *FallDeathSystem {
	return &FallDeathSystem{session: s}
}

func (s *FallDeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		if ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
			return
		}
		if !kinematics.NewController(playerConfig(p)).FatalFall(playerState(p, t)) {
			return
		}
		_ = ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
		s.session.PlayerDied()
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: e, Data: p.Velocity.Y})
	})
}
