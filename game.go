package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/entity"
	"github.com/milk9111/jungle/ecs/system"
	"github.com/milk9111/jungle/levels"
	"github.com/milk9111/jungle/prefabs"
	"github.com/milk9111/jungle/session"
)

const dt = 1.0 / common.TicksPerSecond

var clearColor = color.RGBA{R: 3, G: 3, B: 3, A: 0xff}

type Game struct {
	scale float64
	debug bool

	level   *levels.Level
	session *session.Session

	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *ecs.Renderer

	pauseUI  *ebitenui.UI
	finishUI *ebitenui.UI
	watcher  *prefabs.Watcher
	quit     bool
}

func NewGame(levelName string, scale float64, debug bool) (*Game, error) {
	lvl, err := levels.LoadLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		scale:   scale,
		debug:   debug,
		level:   lvl,
		session: session.New(),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// reset rebuilds the world from the level. Session counters are left alone.
func (g *Game) reset() error {
	world := ecs.NewWorld()
	_, err := entity.LoadLevelToWorld(world, g.level, g.scale)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.world = world
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerMovementSystem(dt),
		system.NewPickupCollectSystem(g.session),
		system.NewFallDeathSystem(g.session),
		system.NewRespawnSystem(),
		system.NewCameraSystem(),
		system.NewBackgroundSystem(),
		system.NewAnimationSystem(dt),
		system.NewClockSystem(g.session, dt),
	)

	draws := []ecs.DrawSystem{system.NewRenderSystem(), system.NewHUDSystem(g.session, g.scale)}
	if g.debug {
		draws = append(draws, system.NewDebugOverlay())
	}
	g.renderer = ecs.NewRenderer(draws...)
	g.finishUI = nil
	return nil
}

// Restart starts the level over with a fresh session.
func (g *Game) Restart() {
	g.session.Reset()
	if err := g.reset(); err != nil {
		log.Printf("restart: %v", err)
	}
}

func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.reloadPrefabs()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.TogglePause()
	}

	switch g.session.Phase {
	case session.PhasePaused:
		g.pauseUI.Update()
		return nil
	case session.PhaseFinished:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.Restart()
			return nil
		}
		if g.finishUI == nil {
			g.finishUI = NewFinishUI(g)
		}
		g.finishUI.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	g.logEvents()
	return nil
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}

	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	log.Printf("prefabs changed %v, restarting level", changed)
	g.Restart()
}

func (g *Game) logEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventCheckpointReached:
			log.Printf("level %q finished: %d coins in %.1fs, %d deaths",
				g.level.Name, g.session.Coins, g.session.Elapsed.Seconds(), g.session.Deaths)
		case ecs.EventPlayerDied:
			log.Printf("player %v fell to their death (vy=%v)", evt.Entity, evt.Data)
		default:
			if g.debug {
				log.Printf("event %s entity=%v data=%v", evt.Type, evt.Entity, evt.Data)
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	g.renderer.Draw(g.world, screen)

	switch g.session.Phase {
	case session.PhasePaused:
		g.pauseUI.Draw(screen)
	case session.PhaseFinished:
		if g.finishUI != nil {
			g.finishUI.Draw(screen)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(common.WindowWidth * g.scale), int(common.WindowHeight * g.scale)
}
