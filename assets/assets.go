// Package assets draws the game's sprite sheets in code and hands them out as
// ebiten images by name.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// BackgroundLayers is how many parallax layers Generate knows how to draw.
const BackgroundLayers = 5

var generators = map[string]func() *image.RGBA{
	"player": playerSheet,
	"tile":   tileImage,
	"coin":   coinSheet,
	"hook":   hookImage,
	"totem":  totemImage,
	"plant":  plantImage,
}

var (
	mu    sync.Mutex
	cache = make(map[string]*ebiten.Image)
)

// Generate draws the named image. Parallax layers are named background0
// (farthest) to background4.
func Generate(name string) (*image.RGBA, error) {
	if gen, ok := generators[name]; ok {
		return gen(), nil
	}
	if after, ok := strings.CutPrefix(name, "background"); ok {
		layer, err := strconv.Atoi(after)
		if err == nil && layer >= 0 && layer < BackgroundLayers {
			return backgroundLayer(layer), nil
		}
	}
	return nil, fmt.Errorf("assets: unknown image %q", name)
}

// LoadImage returns the named image, loading it on first use. A PNG at
// assets/<name>.png replaces the generated image.
func LoadImage(name string) (*ebiten.Image, error) {
	mu.Lock()
	defer mu.Unlock()

	if img, ok := cache[name]; ok {
		return img, nil
	}
	src, err := Load(name)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	cache[name] = img
	return img, nil
}

// Load returns the disk override for name if one exists, otherwise the
// generated image.
func Load(name string) (*image.RGBA, error) {
	b, err := os.ReadFile(filepath.Join("assets", name+".png"))
	if err != nil {
		return Generate(name)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s.png: %w", name, err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// Names lists every image Generate accepts.
func Names() []string {
	names := make([]string, 0, len(generators)+BackgroundLayers)
	for name := range generators {
		names = append(names, name)
	}
	for i := 0; i < BackgroundLayers; i++ {
		names = append(names, "background"+strconv.Itoa(i))
	}
	sort.Strings(names)
	return names
}
