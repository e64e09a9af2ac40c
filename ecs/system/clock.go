package system

import (
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/session"
)

// ClockSystem advances the session's elapsed time.
type ClockSystem struct {
	session *session.Session
	dt      float64
}

func NewClockSystem(s *session.Session, dt float64) *ClockSystem {
	return &ClockSystem{session: s, dt: dt}
}

func (c *ClockSystem) Update(_ *ecs.World) {
	c.session.Tick(c.dt)
}
