package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BackgroundSpec describes the parallax backdrop: Layers images, each drawn
// Copies times side by side. Layer i scrolls at AccelerationStep*(Layers-i).
type BackgroundSpec struct {
	Name             string  `yaml:"name"`
	Layers           int     `yaml:"layers"`
	Copies           int     `yaml:"copies"`
	AccelerationStep float64 `yaml:"acceleration_step"`
	ImagePrefix      string  `yaml:"image_prefix"`
	RenderLayerBase  int     `yaml:"render_layer_base"`
}

func LoadBackgroundSpec() (*BackgroundSpec, error) {
	spec, err := LoadSpec[BackgroundSpec]("background.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Layers <= 0 || spec.Copies <= 0 {
		return nil, fmt.Errorf("prefabs: background.yaml: layers and copies must be positive")
	}
	return &spec, nil
}
