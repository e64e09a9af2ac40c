package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := New()
	require.True(t, s.Playing())

	s.CollectCoin()
	s.CollectCoin()
	assert.Equal(t, 2, s.Coins)

	s.Tick(0.5)
	s.Tick(-1)
	assert.Equal(t, 500*time.Millisecond, s.Elapsed)

	s.PlayerDied()
	assert.Equal(t, 1, s.Deaths)
	assert.True(t, s.GameOver)

	assert.True(t, s.ReachCheckpoint())
	assert.False(t, s.ReachCheckpoint())
	assert.Equal(t, PhaseFinished, s.Phase)

	s.Tick(1)
	assert.Equal(t, 500*time.Millisecond, s.Elapsed, "clock stops once finished")

	s.Reset()
	assert.Equal(t, Session{}, *s)
}

func TestTogglePause(t *testing.T) {
	s := New()

	s.TogglePause()
	assert.Equal(t, PhasePaused, s.Phase)
	s.Tick(1)
	assert.Zero(t, s.Elapsed)

	s.TogglePause()
	assert.Equal(t, PhasePlaying, s.Phase)

	s.ReachCheckpoint()
	s.TogglePause()
	assert.Equal(t, PhaseFinished, s.Phase)
}

func TestNilSession(t *testing.T) {
	var s *Session
	assert.False(t, s.Playing())
	assert.NotPanics(t, func() {
		s.CollectCoin()
		s.PlayerDied()
		s.Tick(1)
		s.TogglePause()
		s.Reset()
		s.ReachCheckpoint()
	})
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "finished", PhaseFinished.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
