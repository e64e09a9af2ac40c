package main

import (
	"testing"
	"time"

	"github.com/milk9111/jungle/levels"
	"github.com/milk9111/jungle/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinishLines(t *testing.T) {
	lvl, err := levels.LoadLevel(levels.DefaultLevel)
	require.NoError(t, err)

	sess := session.New()
	sess.CollectCoin()
	sess.CollectCoin()
	sess.PlayerDied()
	sess.Elapsed = 42300 * time.Millisecond

	g := &Game{level: lvl, session: sess, scale: 1}
	assert.Equal(t, []string{
		"Level complete",
		"Coins: 2 / 17",
		"Time: 42.3",
		"Deaths: 1",
	}, finishLines(g))
}

func TestQuitTerminates(t *testing.T) {
	g := &Game{session: session.New()}
	g.Quit()
	assert.Error(t, g.Update())
}
