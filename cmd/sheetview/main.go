// Command sheetview plays one animation of a prefab's sprite sheet so the
// generated frames can be checked by eye.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jungle/assets"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/prefabs"
)

const viewSize = 256

type previewGame struct {
	names   []string
	frames  map[string][]*ebiten.Image
	ticks   map[string]int
	anim    int
	current int
	tick    int
	zoom    float64
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.anim = (g.anim + 1) % len(g.names)
		g.current, g.tick = 0, 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.anim = (g.anim + len(g.names) - 1) % len(g.names)
		g.current, g.tick = 0, 0
	}

	frames := g.frames[g.names[g.anim]]
	if len(frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticks[g.names[g.anim]] {
		g.tick = 0
		g.current = (g.current + 1) % len(frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})
	frames := g.frames[g.names[g.anim]]
	if len(frames) == 0 {
		return
	}
	img := frames[g.current]
	fw, fh := float64(img.Bounds().Dx())*g.zoom, float64(img.Bounds().Dy())*g.zoom
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(g.zoom, g.zoom)
	op.GeoM.Translate((viewSize-fw)/2, (viewSize-fh)/2)
	screen.DrawImage(img, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s %d/%d  <- ->", g.names[g.anim], g.current+1, len(frames)))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// cutFrames slices one animation row out of a sheet and converts its frame
// time into ticks.
func cutFrames(sheet *ebiten.Image, def prefabs.AnimationDefComponentSpec) ([]*ebiten.Image, int, error) {
	if def.FrameW <= 0 || def.FrameH <= 0 || def.FrameCount <= 0 {
		return nil, 0, fmt.Errorf("sheetview: invalid frame layout %+v", def)
	}
	b := sheet.Bounds()
	if (def.Row+1)*def.FrameH > b.Dy() || def.FrameCount*def.FrameW > b.Dx() {
		return nil, 0, fmt.Errorf("sheetview: row %d with %d frames exceeds %dx%d sheet", def.Row, def.FrameCount, b.Dx(), b.Dy())
	}

	frames := make([]*ebiten.Image, def.FrameCount)
	for i := range frames {
		r := image.Rect(i*def.FrameW, def.Row*def.FrameH, (i+1)*def.FrameW, (def.Row+1)*def.FrameH)
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}

	ticks := int(def.FrameTime * common.TicksPerSecond)
	if ticks < 1 {
		ticks = 1
	}
	return frames, ticks, nil
}

func loadPreview(prefab string, zoom float64) (*previewGame, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return nil, err
	}
	raw, ok := spec.Components["animation"]
	if !ok {
		return nil, fmt.Errorf("sheetview: %s has no animation component", prefab)
	}
	anim, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return nil, fmt.Errorf("sheetview: decode animation in %s: %w", prefab, err)
	}
	sheet, err := assets.LoadImage(anim.Sheet)
	if err != nil {
		return nil, err
	}

	g := &previewGame{frames: map[string][]*ebiten.Image{}, ticks: map[string]int{}, zoom: zoom}
	for name, def := range anim.Defs {
		frames, ticks, err := cutFrames(sheet, def)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		g.names = append(g.names, name)
		g.frames[name] = frames
		g.ticks[name] = ticks
	}
	if len(g.names) == 0 {
		return nil, fmt.Errorf("sheetview: %s defines no animations", prefab)
	}
	sort.Strings(g.names)
	for i, n := range g.names {
		if n == anim.Current {
			g.anim = i
		}
	}
	return g, nil
}

func main() {
	prefab := flag.String("prefab", "player.yaml", "prefab whose animation component is previewed")
	zoom := flag.Float64("zoom", 4, "pixel zoom")
	flag.Parse()

	g, err := loadPreview(*prefab, *zoom)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("sheetview: " + *prefab)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
