package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/milk9111/jungle/common"
)

// Player sheet layout: one row per animation, fixed-size cells.
const (
	PlayerFrameW = 24
	PlayerFrameH = 40
)

var playerRows = []struct {
	name   string
	frames int
	body   color.RGBA
}{
	{"idle", 12, color.RGBA{R: 0xd9, G: 0x8c, B: 0x3f, A: 0xff}},
	{"run", 8, color.RGBA{R: 0xe0, G: 0x93, B: 0x45, A: 0xff}},
	{"jump", 1, color.RGBA{R: 0xe8, G: 0xa0, B: 0x50, A: 0xff}},
	{"land", 1, color.RGBA{R: 0xc9, G: 0x7f, B: 0x38, A: 0xff}},
	{"air", 2, color.RGBA{R: 0xe8, G: 0xa0, B: 0x50, A: 0xff}},
	{"grab", 6, color.RGBA{R: 0xd0, G: 0x86, B: 0x3c, A: 0xff}},
}

var (
	outline  = color.RGBA{R: 0x22, G: 0x20, B: 0x34, A: 0xff}
	leaf     = color.RGBA{R: 0x37, G: 0x94, B: 0x6e, A: 0xff}
	bark     = color.RGBA{R: 0x66, G: 0x39, B: 0x31, A: 0xff}
	gold     = color.RGBA{R: 0xfb, G: 0xf2, B: 0x36, A: 0xff}
	goldDark = color.RGBA{R: 0xdf, G: 0x71, B: 0x26, A: 0xff}
	stone    = color.RGBA{R: 0x84, G: 0x7e, B: 0x87, A: 0xff}
)

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func playerSheet() *image.RGBA {
	cols := 0
	for _, row := range playerRows {
		cols = max(cols, row.frames)
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*PlayerFrameW, len(playerRows)*PlayerFrameH))

	for r, row := range playerRows {
		for f := 0; f < row.frames; f++ {
			x0, y0 := f*PlayerFrameW, r*PlayerFrameH
			// body fills the 19x31 collision box centred in the cell
			bx, by := x0+(PlayerFrameW-19)/2, y0+(PlayerFrameH-31)/2
			fillRect(img, bx, by, bx+19, by+31, outline)
			fillRect(img, bx+1, by+1, bx+18, by+30, row.body)
			// head
			fillRect(img, bx+5, by+2, bx+14, by+10, outline)
			// swinging limb makes the frames distinguishable
			swing := int(3 * math.Sin(float64(f)/float64(row.frames)*2*math.Pi))
			if row.name == "grab" {
				fillRect(img, bx+2, y0, bx+5, by+4+f, outline)
				fillRect(img, bx+14, y0, bx+17, by+4+f, outline)
				continue
			}
			fillRect(img, bx+4+swing, by+24, bx+8+swing, by+31, outline)
			fillRect(img, bx+11-swing, by+24, bx+15-swing, by+31, outline)
		}
	}
	return img
}

func tileImage() *image.RGBA {
	ts := common.TileSize
	img := image.NewRGBA(image.Rect(0, 0, ts, ts))
	fillRect(img, 0, 0, ts, ts, bark)
	fillRect(img, 0, 0, ts, 4, leaf)
	fillRect(img, 3, 8, 5, 10, outline)
	fillRect(img, 10, 11, 12, 13, outline)
	return img
}

func coinSheet() *image.RGBA {
	const frames, size = 8, 16
	img := image.NewRGBA(image.Rect(0, 0, frames*size, size))
	for f := 0; f < frames; f++ {
		// the visible half-width shrinks and grows as the coin spins
		hw := math.Abs(math.Cos(float64(f)/frames*math.Pi)) * 6
		hw = math.Max(hw, 1)
		cx := float64(f*size) + size/2
		for y := 2; y < size-2; y++ {
			dy := (float64(y) + 0.5 - size/2) / 6
			if dy*dy > 1 {
				continue
			}
			span := hw * math.Sqrt(1-dy*dy)
			x0, x1 := int(math.Round(cx-span)), int(math.Round(cx+span))
			fillRect(img, x0, y, x1, y+1, gold)
			fillRect(img, x1-1, y, x1, y+1, goldDark)
		}
	}
	return withOutline(img, 1, outline)
}

func hookImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	fillRect(img, 0, 0, 16, 3, leaf)
	fillRect(img, 1, 3, 15, 5, bark)
	fillRect(img, 4, 5, 6, 8, leaf)
	fillRect(img, 10, 5, 12, 8, leaf)
	return img
}

func totemImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 19, 27))
	fillRect(img, 2, 0, 17, 27, outline)
	fillRect(img, 3, 1, 16, 26, stone)
	fillRect(img, 5, 5, 8, 8, gold)
	fillRect(img, 11, 5, 14, 8, gold)
	fillRect(img, 6, 14, 13, 16, outline)
	fillRect(img, 0, 20, 19, 22, outline)
	return img
}

func plantImage() *image.RGBA {
	ts := common.TileSize
	img := image.NewRGBA(image.Rect(0, 0, ts, ts))
	fillRect(img, 7, 6, 9, ts, bark)
	for i, h := range []int{9, 5, 3, 6, 10} {
		x := 2 + i*3
		fillRect(img, x, h, x+2, ts, leaf)
	}
	return withOutline(img, 1, outline)
}

// backgroundLayer draws one screen-sized parallax layer. Layer 0 is the sky,
// higher layers are progressively closer, darker hills.
func backgroundLayer(layer int) *image.RGBA {
	w, h := common.WindowWidth, common.WindowHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if layer == 0 {
		for y := 0; y < h; y++ {
			t := float64(y) / float64(h)
			c := color.RGBA{
				R: uint8(common.Lerp(0x5b, 0xcb, t)),
				G: uint8(common.Lerp(0x6e, 0xdb, t)),
				B: uint8(common.Lerp(0xe1, 0xfc, t)),
				A: 0xff,
			}
			fillRect(img, 0, y, w, y+1, c)
		}
		return img
	}

	shade := uint8(0x30 + 0x20*(BackgroundLayers-layer))
	c := color.RGBA{R: shade / 3, G: shade, B: shade / 2, A: 0xff}
	base := float64(h) * (0.35 + 0.1*float64(layer))
	amp := 8 + 4*float64(layer)
	// whole periods across the width keep the copies seamless; the noise is
	// faded out towards both edges for the same reason
	periods := float64(layer + 1)
	noise := perlin.NewPerlin(2, 2, 3, int64(layer))
	for x := 0; x < w; x++ {
		u := float64(x) / float64(w)
		rough := noise.Noise1D(u*8) * amp * 0.5 * math.Sin(math.Pi*u)
		top := base - amp*math.Sin(u*2*math.Pi*periods) + rough
		fillRect(img, x, int(top), x+1, h, c)
	}
	return img
}
