package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/session"
	"golang.org/x/image/font/basicfont"
)

var hudTextColor = color.NRGBA{R: 34, G: 32, B: 52, A: 255}

// HUDSystem prints the coin count and elapsed time in the top-left corner.
type HUDSystem struct {
	session *session.Session
	face    ebtext.Face
	scale   float64
}

func NewHUDSystem(s *session.Session, scale float64) *HUDSystem {
	if scale <= 0 {
		scale = 1
	}
	return &HUDSystem{
		session: s,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		scale:   scale,
	}
}

func (h *HUDSystem) Draw(_ *ecs.World, screen *ebiten.Image) {
	if h == nil || h.session == nil || screen == nil {
		return
	}

	lines := hudLines(h.session)
	lineHeight := 13 * h.scale
	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Scale(h.scale, h.scale)
		op.GeoM.Translate(6*h.scale, 4*h.scale+float64(i)*(lineHeight+2*h.scale))
		op.ColorScale.ScaleWithColor(hudTextColor)
		ebtext.Draw(screen, line, h.face, op)
	}
}

func hudLines(s *session.Session) []string {
	return []string{
		fmt.Sprintf("Coins: %d", s.Coins),
		fmt.Sprintf("Time: %.1f", s.Elapsed.Seconds()),
	}
}
