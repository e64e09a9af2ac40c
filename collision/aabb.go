// Package collision implements the axis-aligned bounding box test used by
// every gameplay system. Rectangles are centred on their position.
package collision

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/common"
)

// Rect is an axis-aligned rectangle described by its centre and full size.
type Rect struct {
	Position cp.Vector
	Size     cp.Vector
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{Position: cp.Vector{X: x, Y: y}, Size: cp.Vector{X: w, Y: h}}
}

func (r Rect) Left() float64   { return r.Position.X - r.Size.X/2 }
func (r Rect) Right() float64  { return r.Position.X + r.Size.X/2 }
func (r Rect) Top() float64    { return r.Position.Y + r.Size.Y/2 }
func (r Rect) Bottom() float64 { return r.Position.Y - r.Size.Y/2 }

// BB converts the rectangle to a chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.NewBBForExtents(r.Position, r.Size.X/2, r.Size.Y/2)
}

// Translate returns a copy of r moved by d.
func (r Rect) Translate(d cp.Vector) Rect {
	r.Position = r.Position.Add(d)
	return r
}

// Overlaps reports whether a and b interpenetrate. Rectangles whose edges
// only touch do not overlap.
func Overlaps(a, b Rect) bool {
	return math.Abs(a.Position.X-b.Position.X) < (a.Size.X/2+b.Size.X/2) &&
		math.Abs(a.Position.Y-b.Position.Y) < (a.Size.Y/2+b.Size.Y/2)
}

// Resolve tests a against b and, on overlap, returns the signed penetration
// depth along each axis. Both components carry the side a sits on relative
// to b and are meant to be subtracted from a's position to separate it along
// that axis.
func Resolve(a, b Rect) (cp.Vector, bool) {
	if !Overlaps(a, b) {
		return cp.Vector{}, false
	}

	dx := a.Position.X - b.Position.X
	dy := a.Position.Y - b.Position.Y

	return cp.Vector{
		X: common.Signum(dx) * (math.Abs(dx) - (a.Size.X/2 + b.Size.X/2)),
		Y: common.Signum(dy) * (math.Abs(dy) - (a.Size.Y/2 + b.Size.Y/2)),
	}, true
}
