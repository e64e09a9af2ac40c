package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// PlayerComponentSpec sizes are source pixels, the rest are world units.
type PlayerComponentSpec struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	Gravity        float64 `yaml:"gravity"`
	GrabThreshold  float64 `yaml:"grab_threshold"`
	FatalFallSpeed float64 `yaml:"fatal_fall_speed"`
}

type TransformComponentSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

type SpriteComponentSpec struct {
	Image      string  `yaml:"image"`
	UseSource  bool    `yaml:"use_source"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	FacingLeft bool    `yaml:"facing_left"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Smoothness float64 `yaml:"smoothness"`
}

// SizeComponentSpec is shared by blocks, hooks, coins and checkpoints. A zero
// size means the level decides.
type SizeComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnimationDefComponentSpec struct {
	Row        int     `yaml:"row"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FrameTime  float64 `yaml:"frame_time"`
	Loop       bool    `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Sheet   string                               `yaml:"sheet"`
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
	Frame   int                                  `yaml:"frame"`
	Playing bool                                 `yaml:"playing"`
}
