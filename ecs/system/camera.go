package system

import (
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update moves the camera horizontally towards the player. The camera's y
// never changes.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !w.IsAlive(cs.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			cs.camEntity = camEntity
		}
	}

	if !w.IsAlive(cs.targetEntity) {
		if target, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			cs.targetEntity = target
		}
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	smooth := 1.0
	if cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind()); ok && cam.Smoothness > 0 && cam.Smoothness < 1 {
		smooth = cam.Smoothness
	}
	camTransform.X = common.Lerp(camTransform.X, targetTransform.X, smooth)
}

// cameraPosition returns the world position the screen is centred on.
func cameraPosition(w *ecs.World) (float64, float64) {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return 0, 0
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		return t.X, t.Y
	}
	return 0, 0
}

// worldToScreen maps a y-up world point onto a y-down screen of size
// (sw, sh) centred on the camera.
func worldToScreen(x, y, camX, camY float64, sw, sh int) (float64, float64) {
	return float64(sw)/2 + (x - camX), float64(sh)/2 - (y - camY)
}
