package system

import (
	"github.com/milk9111/jungle/collision"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
	"github.com/milk9111/jungle/session"
)

// PickupCollectSystem consumes coins the player touches and finishes the
// level when the player reaches a checkpoint.
type PickupCollectSystem struct {
	session *session.Session
}

func NewPickupCollectSystem(s *session.Session) *PickupCollectSystem {
	return &PickupCollectSystem{session: s}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(player ecs.Entity, p *component.Player, pt *component.Transform) {
		body := rectAt(pt, p.Size)

		ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, coin *component.Coin, t *component.Transform) {
			if !ecs.IsAlive(w, e) || !collision.Overlaps(body, rectAt(t, coin.Size)) {
				return
			}
			ecs.DestroyEntity(w, e)
			s.session.CollectCoin()
			w.Events().Push(ecs.Event{Type: ecs.EventCoinCollected, Entity: player, Data: s.session.Coins})
		})

		ecs.ForEach2(w, component.CheckPointComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cp *component.CheckPoint, t *component.Transform) {
			if !collision.Overlaps(body, rectAt(t, cp.Size)) {
				return
			}
			cp.Reached = true
			if s.session.ReachCheckpoint() {
				w.Events().Push(ecs.Event{Type: ecs.EventCheckpointReached, Entity: e})
			}
		})
	})
}
