package common

import (
	"math"
	"testing"
)

func TestSignum(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"positive", 3.5, 1},
		{"negative", -0.25, -1},
		{"positive_zero", 0, 1},
		{"negative_zero", math.Copysign(0, -1), -1},
		{"inf", math.Inf(-1), -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Signum(c.in); got != c.want {
				t.Fatalf("Signum(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0.5); got != 4 {
		t.Fatalf("Lerp midpoint = %v, want 4", got)
	}
	if got := Lerp(2, 6, 0); got != 2 {
		t.Fatalf("Lerp start = %v, want 2", got)
	}
}
