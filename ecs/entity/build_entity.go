package entity

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/assets"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/ecs/component"
	"github.com/milk9111/jungle/prefabs"
)

// loadImage is swapped out by tests that run without a graphics context.
var loadImage = assets.LoadImage

// buildContext carries what every component builder needs. Scale converts
// source pixels into world units.
type buildContext struct {
	PrefabPath string
	Scale      float64
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"transform":    addTransform,
	"player":       addPlayer,
	"input":        addInput,
	"block":        addBlock,
	"hook":         addHook,
	"coin":         addCoin,
	"checkpoint":   addCheckPoint,
	"camera":       addCamera,
	"sprite":       addSprite,
	"animation":    addAnimation,
	"render_layer": addRenderLayer,
}

// transform goes before player so the player can record its initial position.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"transform",
	"player",
	"input",
	"block",
	"hook",
	"coin",
	"checkpoint",
	"camera",
	"sprite",
	"animation",
	"render_layer",
}

// BuildEntity creates an entity from the components listed in a prefab.
func BuildEntity(w *ecs.World, prefabPath string, scale float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if scale <= 0 {
		return 0, fmt.Errorf("build entity: %q: scale must be positive, got %v", prefabPath, scale)
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}
	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, unknown)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Scale: scale}
	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityTransform moves e to a world position. Players also take it as
// their respawn point.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{Scale: 1}
	}
	t.X = x
	t.Y = y
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		p.InitialPosition = cp.Vector{X: x, Y: y}
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

// SetEntitySize overrides the collision size of whichever sized component e
// carries. Width and height are world units.
func SetEntitySize(w *ecs.World, e ecs.Entity, width, height float64) {
	size := cp.Vector{X: width, Y: height}
	if b, ok := ecs.Get(w, e, component.BlockComponent.Kind()); ok {
		b.Size = size
	}
	if h, ok := ecs.Get(w, e, component.HookComponent.Kind()); ok {
		h.Size = size
	}
	if c, ok := ecs.Get(w, e, component.CoinComponent.Kind()); ok {
		c.Size = size
	}
	if c, ok := ecs.Get(w, e, component.CheckPointComponent.Kind()); ok {
		c.Size = size
	}
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.Scale == 0 {
		spec.Scale = ctx.Scale
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:     spec.X * ctx.Scale,
		Y:     spec.Y * ctx.Scale,
		Scale: spec.Scale,
	})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %vx%v", spec.Width, spec.Height)
	}

	var initial cp.Vector
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		initial = cp.Vector{X: t.X, Y: t.Y}
	}

	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Size:            cp.Vector{X: spec.Width * ctx.Scale, Y: spec.Height * ctx.Scale},
		InitialPosition: initial,
		IsInAir:         true,
		MoveSpeed:       spec.MoveSpeed,
		JumpSpeed:       spec.JumpSpeed,
		Gravity:         spec.Gravity,
		GrabThreshold:   spec.GrabThreshold,
		FatalFallSpeed:  spec.FatalFallSpeed,
	})
}

type sizeSpec = prefabs.SizeComponentSpec

func decodeSize(raw any, ctx *buildContext) (cp.Vector, error) {
	spec, err := prefabs.DecodeComponentSpec[sizeSpec](raw)
	if err != nil {
		return cp.Vector{}, err
	}
	return cp.Vector{X: spec.Width * ctx.Scale, Y: spec.Height * ctx.Scale}, nil
}

func addBlock(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	size, err := decodeSize(raw, ctx)
	if err != nil {
		return fmt.Errorf("decode block spec: %w", err)
	}
	return ecs.Add(w, e, component.BlockComponent.Kind(), &component.Block{Size: size})
}

func addHook(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	size, err := decodeSize(raw, ctx)
	if err != nil {
		return fmt.Errorf("decode hook spec: %w", err)
	}
	return ecs.Add(w, e, component.HookComponent.Kind(), &component.Hook{Size: size})
}

func addCoin(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	size, err := decodeSize(raw, ctx)
	if err != nil {
		return fmt.Errorf("decode coin spec: %w", err)
	}
	return ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{Size: size})
}

func addCheckPoint(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	size, err := decodeSize(raw, ctx)
	if err != nil {
		return fmt.Errorf("decode checkpoint spec: %w", err)
	}
	return ecs.Add(w, e, component.CheckPointComponent.Kind(), &component.CheckPoint{Size: size})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Smoothness: spec.Smoothness})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := loadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}
	sprite.UseSource = spec.UseSource
	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	sprite.FacingLeft = spec.FacingLeft

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	var sheet *ebiten.Image
	if spec.Sheet != "" {
		sheet, err = loadImage(spec.Sheet)
		if err != nil {
			return fmt.Errorf("load animation sheet %q: %w", spec.Sheet, err)
		}
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        def.Row,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FrameTime:  def.FrameTime,
			Loop:       def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; !ok {
		return fmt.Errorf("animation %q is not defined", spec.Current)
	}

	playing := spec.Playing
	if m, ok := raw.(map[string]any); ok {
		if _, has := m["playing"]; !has {
			playing = true
		}
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sheet:   sheet,
		Defs:    defs,
		Current: spec.Current,
		Frame:   spec.Frame,
		Playing: playing,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}
