// Package session tracks the state of one play-through: collected coins,
// deaths, elapsed time and whether the level is still running.
package session

import "time"

type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

type Session struct {
	Coins    int
	Deaths   int
	Phase    Phase
	GameOver bool
	Elapsed  time.Duration
}

func New() *Session {
	return &Session{}
}

func (s *Session) Playing() bool {
	return s != nil && s.Phase == PhasePlaying
}

func (s *Session) CollectCoin() {
	if s == nil {
		return
	}
	s.Coins++
}

// ReachCheckpoint ends the level. It reports whether this call finished it.
func (s *Session) ReachCheckpoint() bool {
	if s == nil || s.Phase == PhaseFinished {
		return false
	}
	s.Phase = PhaseFinished
	return true
}

func (s *Session) PlayerDied() {
	if s == nil {
		return
	}
	s.Deaths++
	s.GameOver = true
}

// Tick advances the clock by dt seconds while the level is running.
func (s *Session) Tick(dt float64) {
	if !s.Playing() || dt <= 0 {
		return
	}
	s.Elapsed += time.Duration(dt * float64(time.Second))
}

// TogglePause flips between playing and paused. A finished level stays
// finished.
func (s *Session) TogglePause() {
	if s == nil {
		return
	}
	switch s.Phase {
	case PhasePlaying:
		s.Phase = PhasePaused
	case PhasePaused:
		s.Phase = PhasePlaying
	}
}

func (s *Session) Reset() {
	if s == nil {
		return
	}
	*s = Session{}
}
