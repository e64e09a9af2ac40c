package collision

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want cp.Vector
		hit  bool
	}{
		{
			name: "player_sinking_into_block",
			a:    NewRect(0, 95, 20, 30),
			b:    NewRect(0, 85, 20, 10),
			want: cp.Vector{X: -20, Y: -10},
			hit:  true,
		},
		{
			name: "a_left_of_b",
			a:    NewRect(-5, 0, 10, 10),
			b:    NewRect(0, 0, 10, 10),
			want: cp.Vector{X: 5, Y: -10},
			hit:  true,
		},
		{
			name: "a_below_b",
			a:    NewRect(2, -4, 10, 10),
			b:    NewRect(0, 0, 10, 10),
			want: cp.Vector{X: -8, Y: 6},
			hit:  true,
		},
		{
			name: "far_apart",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(100, 0, 10, 10),
			hit:  false,
		},
		{
			name: "touching_right_edge",
			a:    NewRect(10, 0, 10, 10),
			b:    NewRect(0, 0, 10, 10),
			hit:  false,
		},
		{
			name: "touching_top_edge",
			a:    NewRect(0, 105, 20, 30),
			b:    NewRect(0, 85, 20, 10),
			hit:  false,
		},
		{
			name: "overlap_x_only",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(1, 50, 10, 10),
			hit:  false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Resolve(c.a, c.b)
			require.Equal(t, c.hit, ok)
			if c.hit {
				assert.Equal(t, c.want, got)
			} else {
				assert.Equal(t, cp.Vector{}, got)
			}
		})
	}
}

func TestResolveAlignedCentresUsePositiveSign(t *testing.T) {
	got, ok := Resolve(NewRect(3, 3, 4, 4), NewRect(3, 3, 2, 2))
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: -3, Y: -3}, got)
}

func TestResolveDiagonalOverlap(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(4, 4, 10, 10)
	got, ok := Resolve(a, b)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 6, Y: 6}, got)
}

func randomRect(r *rand.Rand) Rect {
	return NewRect(
		float64(r.Intn(81)-40),
		float64(r.Intn(81)-40),
		float64(r.Intn(30)+1),
		float64(r.Intn(30)+1),
	)
}

func TestResolveProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		a := randomRect(r)
		b := randomRect(r)

		pab, okAB := Resolve(a, b)
		_, okBA := Resolve(b, a)
		require.Equal(t, okAB, okBA, "symmetry broken for %+v %+v", a, b)
		require.Equal(t, okAB, Overlaps(a, b))

		if !okAB {
			continue
		}

		movedX := a.Translate(cp.Vector{X: -pab.X})
		assert.False(t, Overlaps(movedX, b), "x correction left overlap for %+v %+v", a, b)

		movedY := a.Translate(cp.Vector{Y: -pab.Y})
		assert.False(t, Overlaps(movedY, b), "y correction left overlap for %+v %+v", a, b)
	}
}

func TestRectEdgesAndBB(t *testing.T) {
	r := NewRect(10, 20, 4, 6)
	assert.Equal(t, 8.0, r.Left())
	assert.Equal(t, 12.0, r.Right())
	assert.Equal(t, 23.0, r.Top())
	assert.Equal(t, 17.0, r.Bottom())

	bb := r.BB()
	assert.Equal(t, cp.BB{L: 8, B: 17, R: 12, T: 23}, bb)
}
