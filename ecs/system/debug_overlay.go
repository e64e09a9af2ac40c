package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
	"github.com/milk9111/jungle/kinematics"
)

var (
	debugBlockColor      = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	debugHookColor       = cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
	debugCoinColor       = cp.FColor{R: 1, G: 0.9, B: 0.2, A: 0.9}
	debugCheckPointColor = cp.FColor{R: 0.3, G: 0.6, B: 1, A: 0.9}
	debugPlayerColor     = cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
)

// DebugOverlay outlines every collision rectangle and prints the player's
// kinematic state.
type DebugOverlay struct{}

func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{}
}

func (d *DebugOverlay) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	drawer := &debugDrawer{screen: screen}
	drawer.camX, drawer.camY = cameraPosition(w)

	ecs.ForEach2(w, component.BlockComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Block, t *component.Transform) {
		drawer.drawBB(rectAt(t, b.Size).BB(), debugBlockColor)
	})
	ecs.ForEach2(w, component.HookComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, h *component.Hook, t *component.Transform) {
		drawer.drawBB(rectAt(t, h.Size).BB(), debugHookColor)
	})
	ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Coin, t *component.Transform) {
		drawer.drawBB(rectAt(t, c.Size).BB(), debugCoinColor)
	})
	ecs.ForEach2(w, component.CheckPointComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.CheckPoint, t *component.Transform) {
		drawer.drawBB(rectAt(t, c.Size).BB(), debugCheckPointColor)
	})
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		drawer.drawBB(rectAt(t, p.Size).BB(), debugPlayerColor)
		ebitenutil.DebugPrintAt(screen, playerDebugText(p, t), 10, screen.Bounds().Dy()-80)
	})
}

func playerDebugText(p *component.Player, t *component.Transform) string {
	s := playerState(p, t)
	return fmt.Sprintf("Pos: %.1f, %.1f\nVel: %.1f, %.1f\nInAir: %v\nGrabbing: %v\nAnim: %s",
		s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, s.IsInAir, s.IsGrabbing, kinematics.SelectAnimation(s))
}

type debugDrawer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
}

func (d *debugDrawer) drawBB(bb cp.BB, c cp.FColor) {
	sw, sh := d.screen.Bounds().Dx(), d.screen.Bounds().Dy()
	x, y := worldToScreen(bb.L, bb.T, d.camX, d.camY, sw, sh)
	vector.StrokeRect(d.screen, float32(x), float32(y), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, toNRGBA(c), false)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
