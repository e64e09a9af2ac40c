package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// Outline returns an image the size of src holding col on every transparent
// pixel that has an opaque pixel within thickness (Chebyshev distance).
func Outline(src *image.RGBA, thickness int, col color.RGBA) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(b)

	opaque := func(x, y int) bool {
		return image.Pt(x, y).In(b) && src.RGBAAt(x, y).A != 0
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if opaque(x, y) {
				continue
			}
			found := false
			for yy := y - thickness; yy <= y+thickness && !found; yy++ {
				for xx := x - thickness; xx <= x+thickness; xx++ {
					if opaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.SetRGBA(x, y, col)
			}
		}
	}
	return out
}

// withOutline draws src over its own outline.
func withOutline(src *image.RGBA, thickness int, col color.RGBA) *image.RGBA {
	out := Outline(src, thickness, col)
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Over)
	return out
}
