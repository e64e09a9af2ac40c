package kinematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAnimation(t *testing.T) {
	cases := []struct {
		name     string
		vx, vy   float64
		grabbing bool
		want     Animation
	}{
		{"idle", 0, 0, false, AnimationIdle},
		{"run", 16, 0, false, AnimationRun},
		{"jump_overrides_run", -16, 4, false, AnimationJump},
		{"land_while_falling", 0, -2, false, AnimationLand},
		{"grab_overrides_all", 0, 0, true, AnimationGrab},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := playerAt(0, 0, tc.vx, tc.vy)
			s.IsGrabbing = tc.grabbing
			assert.Equal(t, tc.want, SelectAnimation(s))
		})
	}
}

func TestHoldsFrame(t *testing.T) {
	assert.True(t, HoldsFrame(AnimationGrab, 5))
	assert.False(t, HoldsFrame(AnimationGrab, 4))
	assert.False(t, HoldsFrame(AnimationRun, 5))
}
