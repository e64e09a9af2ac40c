// Package kinematics moves the player one tick at a time: input intent,
// gravity, a single Euler step and per-axis correction against blocks and
// hooks.
package kinematics

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/collision"
	"github.com/milk9111/jungle/common"
)

// Config holds the tuning constants of the controller. Speeds are world units
// per tick, Gravity is world units per tick per second.
type Config struct {
	MoveSpeed      float64
	JumpSpeed      float64
	Gravity        float64
	GrabThreshold  float64
	FatalFallSpeed float64
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:      16,
		JumpSpeed:      20,
		Gravity:        60,
		GrabThreshold:  8,
		FatalFallSpeed: -50,
	}
}

// Input is the discrete intent sampled for one tick.
type Input struct {
	Left          bool
	Right         bool
	Up            bool
	LeftReleased  bool
	RightReleased bool
}

// State is the player's kinematic state. Size never changes after spawn.
type State struct {
	Position   cp.Vector
	Velocity   cp.Vector
	Size       cp.Vector
	IsGrabbing bool
	IsInAir    bool
	FacingLeft bool
}

// Rect returns the player's rectangle at its current position.
func (s State) Rect() collision.Rect {
	return collision.Rect{Position: s.Position, Size: s.Size}
}

type Controller struct {
	cfg Config
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

func (c *Controller) Config() Config {
	return c.cfg
}

type blockHit struct {
	index int
	area  float64
}

// Step advances s by one tick of dt seconds and returns the committed state.
// blocks stop motion, hooks can only be grabbed.
func (c *Controller) Step(dt float64, in Input, s State, blocks, hooks []collision.Rect) State {
	vx, vy := s.Velocity.X, s.Velocity.Y

	if in.Right {
		vx = c.cfg.MoveSpeed
	}
	if in.Left {
		vx = -c.cfg.MoveSpeed
	}
	if (in.LeftReleased || in.RightReleased) && !in.Left && !in.Right {
		vx = 0
	}

	facingLeft := s.FacingLeft
	if vx < 0 {
		facingLeft = true
	} else if vx > 0 {
		facingLeft = false
	}

	if in.Up && (!s.IsInAir || s.IsGrabbing) {
		vy = c.cfg.JumpSpeed
	}

	if !s.IsGrabbing {
		vy -= c.cfg.Gravity * dt
	}

	tentative := cp.Vector{X: s.Position.X + vx, Y: s.Position.Y + vy}

	inAir := true
	for _, hit := range c.blockCandidates(tentative, s.Size, blocks) {
		pen, ok := collision.Resolve(collision.Rect{Position: tentative, Size: s.Size}, blocks[hit.index])
		if !ok {
			// an earlier correction already separated this block
			continue
		}

		if math.Abs(pen.X) > math.Abs(pen.Y) && common.Signum(pen.Y) == common.Signum(vy) {
			tentative.Y -= pen.Y
			if vy < 0 {
				inAir = false
			}
			vy = 0
		} else {
			tentative.X -= pen.X
			vx = 0
		}
	}

	grabbing := s.IsGrabbing
	current := s.Rect()
	for _, hook := range hooks {
		if !collision.Overlaps(current, hook) {
			continue
		}
		if math.Abs(s.Position.Y-hook.Position.Y) > c.cfg.GrabThreshold || vy >= 0 {
			continue
		}
		grabbing = true
		vy = 0
		tentative.Y = hook.Position.Y + hook.Size.Y/2 - s.Size.Y/2
	}

	if vy > 0 || math.Abs(vx) > 0 {
		grabbing = false
	}

	return State{
		Position:   tentative,
		Velocity:   cp.Vector{X: vx, Y: vy},
		Size:       s.Size,
		IsGrabbing: grabbing,
		IsInAir:    inAir,
		FacingLeft: facingLeft,
	}
}

// blockCandidates returns the blocks overlapping the tentative rectangle,
// deepest overlap first and input order among equals, so simultaneous
// contacts resolve the same way regardless of how the caller collected them.
func (c *Controller) blockCandidates(pos, size cp.Vector, blocks []collision.Rect) []blockHit {
	rect := collision.Rect{Position: pos, Size: size}

	var hits []blockHit
	for i, b := range blocks {
		pen, ok := collision.Resolve(rect, b)
		if !ok {
			continue
		}
		hits = append(hits, blockHit{index: i, area: math.Abs(pen.X * pen.Y)})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].area > hits[j].area
	})
	return hits
}

// FatalFall reports whether s is falling fast enough to count as a death.
func (c *Controller) FatalFall(s State) bool {
	return s.Velocity.Y < c.cfg.FatalFallSpeed
}

// Respawn puts the player back at spawn at rest, released from any hook and
// airborne until the next landing.
func Respawn(s State, spawn cp.Vector) State {
	return State{
		Position: spawn,
		Size:     s.Size,
		IsInAir:  true,
	}
}
