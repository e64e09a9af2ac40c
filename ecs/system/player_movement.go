package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/collision"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
	"github.com/milk9111/jungle/kinematics"
)

// PlayerMovementSystem runs one kinematics step for every player against the
// blocks and hooks currently in the world.
type PlayerMovementSystem struct {
	dt     float64
	blocks []collision.Rect
	hooks  []collision.Rect
}

func NewPlayerMovementSystem(dt float64) *PlayerMovementSystem {
	return &PlayerMovementSystem{dt: dt}
}

func (s *PlayerMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.blocks = s.blocks[:0]
	ecs.ForEach2(w, component.BlockComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Block, t *component.Transform) {
		s.blocks = append(s.blocks, rectAt(t, b.Size))
	})

	s.hooks = s.hooks[:0]
	ecs.ForEach2(w, component.HookComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, h *component.Hook, t *component.Transform) {
		s.hooks = append(s.hooks, rectAt(t, h.Size))
	})

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		var in kinematics.Input
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			in = kinematics.Input{
				Left:          input.Left,
				Right:         input.Right,
				Up:            input.Up,
				LeftReleased:  input.LeftReleased,
				RightReleased: input.RightReleased,
			}
		}

		next := kinematics.NewController(playerConfig(p)).Step(s.dt, in, playerState(p, t), s.blocks, s.hooks)
		applyPlayerState(p, t, next)
	})
}

func rectAt(t *component.Transform, size cp.Vector) collision.Rect {
	return collision.Rect{Position: cp.Vector{X: t.X, Y: t.Y}, Size: size}
}

func playerConfig(p *component.Player) kinematics.Config {
	return kinematics.Config{
		MoveSpeed:      p.MoveSpeed,
		JumpSpeed:      p.JumpSpeed,
		Gravity:        p.Gravity,
		GrabThreshold:  p.GrabThreshold,
		FatalFallSpeed: p.FatalFallSpeed,
	}
}

func playerState(p *component.Player, t *component.Transform) kinematics.State {
	return kinematics.State{
		Position:   cp.Vector{X: t.X, Y: t.Y},
		Velocity:   p.Velocity,
		Size:       p.Size,
		IsGrabbing: p.IsGrabbing,
		IsInAir:    p.IsInAir,
		FacingLeft: p.FacingLeft,
	}
}

func applyPlayerState(p *component.Player, t *component.Transform, s kinematics.State) {
	t.X, t.Y = s.Position.X, s.Position.Y
	p.Velocity = s.Velocity
	p.IsGrabbing = s.IsGrabbing
	p.IsInAir = s.IsInAir
	p.FacingLeft = s.FacingLeft
}
