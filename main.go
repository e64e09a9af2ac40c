package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/levels"
)

func main() {
	scale := flag.Int("s", common.DefaultScale, "scale of the game window")
	debug := flag.Bool("debug", false, "enable debug mode (collision boxes, prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/ (basename, .json optional)")
	flag.Parse()

	if *scale <= 0 {
		log.Fatalf("scale must be positive, got %d", *scale)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetTPS(common.TicksPerSecond)
	ebiten.SetWindowSize(common.WindowWidth**scale, common.WindowHeight**scale)
	ebiten.SetWindowTitle("jungle")

	game, err := NewGame(*levelName, float64(*scale), *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
