package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

const DefaultLevel = "level1"

// Entity types a level may place.
const (
	EntitySpawn      = "spawn"
	EntityCoin       = "coin"
	EntityHook       = "hook"
	EntityCheckpoint = "checkpoint"
)

var ErrInvalidLevel = errors.New("invalid level")

// Level is a grid of tile layers plus free-standing entities. Tile and
// entity coordinates are source pixels measured from the top-left corner.
type Level struct {
	Name      string      `json:"name"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	TileSize  int         `json:"tile_size"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

type Entity struct {
	Type   string         `json:"type"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Width  int            `json:"width,omitempty"`
	Height int            `json:"height,omitempty"`
	Props  map[string]any `json:"props,omitempty"`
}

// TileRef addresses one non-empty cell of a layer.
type TileRef struct {
	Layer int
	I     int
	J     int
	Value int
}

// LoadLevel reads a level by name, preferring levels/<name>.json on disk over
// the embedded copy.
func LoadLevel(name string) (*Level, error) {
	file := levelFile(name)
	if data, err := os.ReadFile(filepath.Join("levels", file)); err == nil {
		return Parse(file, data)
	}
	return LoadLevelFromFS(file)
}

func LoadLevelFromFS(name string) (*Level, error) {
	file := levelFile(name)
	data, err := fs.ReadFile(LevelsFS, file)
	if err != nil {
		return nil, fmt.Errorf("levels: read %q: %w", file, err)
	}
	return Parse(file, data)
}

// Parse decodes and validates a level. name is only used in errors.
func Parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %q: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %q: %w", name, err)
	}
	return &lvl, nil
}

// Names lists the embedded levels without their extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	if l.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size %d", ErrInvalidLevel, l.TileSize)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("%w: layer %d has %d cells, want %d", ErrInvalidLevel, i, len(layer), l.Width*l.Height)
		}
	}
	if len(l.LayerMeta) > len(l.Layers) {
		return fmt.Errorf("%w: %d layer_meta entries for %d layers", ErrInvalidLevel, len(l.LayerMeta), len(l.Layers))
	}

	spawns := 0
	for i, e := range l.Entities {
		switch e.Type {
		case EntitySpawn:
			spawns++
		case EntityCoin, EntityHook, EntityCheckpoint:
		default:
			return fmt.Errorf("%w: entity %d has unknown type %q", ErrInvalidLevel, i, e.Type)
		}
		if e.Width < 0 || e.Height < 0 {
			return fmt.Errorf("%w: entity %d has negative size", ErrInvalidLevel, i)
		}
	}
	if spawns > 1 {
		return fmt.Errorf("%w: %d spawn points", ErrInvalidLevel, spawns)
	}
	return nil
}

// Physics reports whether tiles of the given layer are solid. Layers without
// metadata default to solid for the first layer only.
func (l *Level) Physics(layer int) bool {
	if layer < len(l.LayerMeta) {
		return l.LayerMeta[layer].Physics
	}
	return layer == 0
}

// Tiles returns the non-empty cells of a layer in row-major order.
func (l *Level) Tiles(layer int) []TileRef {
	if layer < 0 || layer >= len(l.Layers) {
		return nil
	}
	var out []TileRef
	for idx, v := range l.Layers[layer] {
		if v == 0 {
			continue
		}
		out = append(out, TileRef{Layer: layer, I: idx % l.Width, J: idx / l.Width, Value: v})
	}
	return out
}

// Spawn returns the spawn entity, if the level has one.
func (l *Level) Spawn() (Entity, bool) {
	for _, e := range l.Entities {
		if e.Type == EntitySpawn {
			return e, true
		}
	}
	return Entity{}, false
}

// Count returns how many entities of type kind the level places.
func (l *Level) Count(kind string) int {
	n := 0
	for _, e := range l.Entities {
		if e.Type == kind {
			n++
		}
	}
	return n
}

func levelFile(name string) string {
	name = filepath.ToSlash(name)
	name = strings.TrimPrefix(name, "levels/")
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}
