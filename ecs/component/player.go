package component

import "github.com/jakecoffman/cp"

// Player carries the kinematic state of the controlled character and its
// tuning. Position lives in the entity's Transform.
type Player struct {
	Size            cp.Vector
	Velocity        cp.Vector
	InitialPosition cp.Vector
	IsGrabbing      bool
	IsInAir         bool
	FacingLeft      bool

	MoveSpeed      float64
	JumpSpeed      float64
	Gravity        float64
	GrabThreshold  float64
	FatalFallSpeed float64
}

var PlayerComponent = NewComponent[Player]()
