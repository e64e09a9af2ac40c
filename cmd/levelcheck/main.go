// Command levelcheck validates level files and prints what each one places.
//
//	levelcheck            # every embedded level
//	levelcheck level1 ... # named levels, disk copies win over embedded ones
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/jungle/collision"
	"github.com/milk9111/jungle/ecs/entity"
	"github.com/milk9111/jungle/levels"
	"github.com/milk9111/jungle/prefabs"
)

type report struct {
	Name     string
	Layers   []layerReport
	Counts   map[string]int
	Pits     [][2]int
	Warnings []string
}

type layerReport struct {
	Tiles int
	Solid bool
}

// objectSize reads the collision size a prefab gives an entity type.
func objectSize(kind string) (float64, float64, error) {
	spec, err := prefabs.LoadEntityBuildSpec(kind + ".yaml")
	if err != nil {
		return 0, 0, err
	}
	size, err := prefabs.DecodeComponentSpec[prefabs.SizeComponentSpec](spec.Components[kind])
	if err != nil {
		return 0, 0, fmt.Errorf("levelcheck: decode %s size: %w", kind, err)
	}
	return size.Width, size.Height, nil
}

func check(lvl *levels.Level) (*report, error) {
	r := &report{Name: lvl.Name, Counts: map[string]int{}}

	var solid []collision.Rect
	ts := float64(lvl.TileSize)
	for i := range lvl.Layers {
		tiles := lvl.Tiles(i)
		lr := layerReport{Tiles: len(tiles), Solid: lvl.Physics(i)}
		r.Layers = append(r.Layers, lr)
		if !lr.Solid {
			continue
		}
		for _, t := range tiles {
			pos := entity.TilePosition(t.I, t.J, lvl.TileSize, 1)
			solid = append(solid, collision.NewRect(pos.X, pos.Y, ts, ts))
		}
	}
	r.Pits = pits(lvl)

	for _, e := range lvl.Entities {
		r.Counts[e.Type]++
		if e.Type == levels.EntitySpawn {
			continue
		}
		w, h, err := objectSize(e.Type)
		if err != nil {
			return nil, err
		}
		if e.Width > 0 && e.Height > 0 {
			w, h = float64(e.Width), float64(e.Height)
		}
		pos := entity.ObjectPosition(e.X, e.Y, 1)
		rect := collision.NewRect(pos.X, pos.Y, w, h)
		for _, s := range solid {
			if collision.Overlaps(rect, s) {
				r.Warnings = append(r.Warnings, fmt.Sprintf("%s at (%d,%d) is inside solid ground", e.Type, e.X, e.Y))
				break
			}
		}
	}

	if r.Counts[levels.EntitySpawn] == 0 {
		r.Warnings = append(r.Warnings, "no spawn point, the prefab position is used")
	}
	if r.Counts[levels.EntityCheckpoint] == 0 {
		r.Warnings = append(r.Warnings, "no checkpoint, the level cannot be finished")
	}
	return r, nil
}

// pits returns inclusive column ranges with no solid tile in the bottom row.
func pits(lvl *levels.Level) [][2]int {
	bottom := lvl.Height - 1
	var out [][2]int
	start := -1
	for i := 0; i <= lvl.Width; i++ {
		open := i < lvl.Width && !solidAt(lvl, i, bottom)
		switch {
		case open && start < 0:
			start = i
		case !open && start >= 0:
			out = append(out, [2]int{start, i - 1})
			start = -1
		}
	}
	return out
}

func solidAt(lvl *levels.Level, i, j int) bool {
	for l, layer := range lvl.Layers {
		if lvl.Physics(l) && layer[j*lvl.Width+i] != 0 {
			return true
		}
	}
	return false
}

func (r *report) print(w io.Writer) {
	fmt.Fprintf(w, "%s\n", r.Name)
	for i, l := range r.Layers {
		kind := "decoration"
		if l.Solid {
			kind = "solid"
		}
		fmt.Fprintf(w, "  layer %d: %d tiles (%s)\n", i, l.Tiles, kind)
	}
	for _, kind := range []string{levels.EntitySpawn, levels.EntityCoin, levels.EntityHook, levels.EntityCheckpoint} {
		fmt.Fprintf(w, "  %s: %d\n", kind, r.Counts[kind])
	}
	for _, p := range r.Pits {
		fmt.Fprintf(w, "  pit: columns %d-%d\n", p[0], p[1])
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warn)
	}
}

func main() {
	strict := flag.Bool("strict", false, "exit non-zero on warnings")
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		names = levels.Names()
	}

	failed := false
	for _, name := range names {
		lvl, err := levels.LoadLevel(name)
		if err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
			continue
		}
		r, err := check(lvl)
		if err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
			continue
		}
		r.print(os.Stdout)
		if *strict && len(r.Warnings) > 0 {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
