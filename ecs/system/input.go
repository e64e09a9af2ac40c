package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
)

const stickDeadzone = 0.2

type InputSystem struct {
	prevStickX float64
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	state := component.Input{
		Left:          ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:            ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		LeftReleased:  inpututil.IsKeyJustReleased(ebiten.KeyA) || inpututil.IsKeyJustReleased(ebiten.KeyArrowLeft),
		RightReleased: inpututil.IsKeyJustReleased(ebiten.KeyD) || inpututil.IsKeyJustReleased(ebiten.KeyArrowRight),
	}

	stickX := 0.0
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		if x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); math.Abs(x) > stickDeadzone {
			stickX = x
		}
		state.Left = state.Left || stickX < 0 || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		state.Right = state.Right || stickX > 0 || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		state.Up = state.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		state.LeftReleased = state.LeftReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonLeftLeft)
		state.RightReleased = state.RightReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonLeftRight)
	}
	// the stick has no release edge of its own
	state.LeftReleased = state.LeftReleased || (i.prevStickX < 0 && stickX >= 0)
	state.RightReleased = state.RightReleased || (i.prevStickX > 0 && stickX <= 0)
	i.prevStickX = stickX

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = state
	})
}
