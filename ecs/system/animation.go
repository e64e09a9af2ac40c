package system

import (
	"image"

	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
	"github.com/milk9111/jungle/kinematics"
)

type AnimationSystem struct {
	dt float64
}

func NewAnimationSystem(dt float64) *AnimationSystem {
	return &AnimationSystem{dt: dt}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			next := string(kinematics.SelectAnimation(kinematics.State{Velocity: p.Velocity, IsGrabbing: p.IsGrabbing}))
			if _, known := anim.Defs[next]; known && next != anim.Current {
				anim.Current = next
				anim.Frame = 0
				anim.FrameTimer = 0
				anim.Playing = true
			}
			sprite.FacingLeft = p.FacingLeft
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing {
			advanceFrame(anim, def, a.dt)
		}

		x := anim.Frame * def.FrameW
		y := def.Row * def.FrameH
		sprite.Source = image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.UseSource = true
		if anim.Sheet != nil {
			sprite.Image = anim.Sheet
		}
	})
}

func advanceFrame(anim *component.Animation, def component.AnimationDef, dt float64) {
	if def.FrameTime <= 0 {
		return
	}

	anim.FrameTimer += dt
	for anim.FrameTimer >= def.FrameTime {
		anim.FrameTimer -= def.FrameTime
		if kinematics.HoldsFrame(kinematics.Animation(anim.Current), anim.Frame) {
			continue
		}
		anim.Frame++
		if anim.Frame >= def.FrameCount {
			if def.Loop {
				anim.Frame = 0
			} else {
				anim.Frame = def.FrameCount - 1
				anim.Playing = false
				return
			}
		}
	}
}
