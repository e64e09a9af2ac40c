package kinematics

// Animation names a player animation row.
type Animation string

const (
	AnimationIdle Animation = "idle"
	AnimationRun  Animation = "run"
	AnimationJump Animation = "jump"
	AnimationLand Animation = "land"
	AnimationGrab Animation = "grab"
)

// grabHoldFrame is the frame the grab animation rests on once reached.
const grabHoldFrame = 5

// SelectAnimation picks the animation for s. Later rules win: vertical
// motion overrides running, grabbing overrides everything.
func SelectAnimation(s State) Animation {
	anim := AnimationIdle
	if s.Velocity.X != 0 {
		anim = AnimationRun
	}
	if s.Velocity.Y > 0 {
		anim = AnimationJump
	}
	if s.Velocity.Y < 0 {
		anim = AnimationLand
	}
	if s.IsGrabbing {
		anim = AnimationGrab
	}
	return anim
}

// HoldsFrame reports whether the animation should stop advancing at frame.
func HoldsFrame(anim Animation, frame int) bool {
	return anim == AnimationGrab && frame == grabHoldFrame
}
