package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/levels"
)

// TilePosition is the world centre of tile (i, j). Row 0 sits at the top of
// the screen.
func TilePosition(i, j, tileSize int, scale float64) cp.Vector {
	return cp.Vector{
		X: float64(tileSize*i) * scale,
		Y: (common.WindowHeight/2 - float64(tileSize*j)) * scale,
	}
}

// ObjectPosition maps a level object's pixel coordinates into the world.
func ObjectPosition(x, y int, scale float64) cp.Vector {
	return cp.Vector{
		X: scale * float64(x),
		Y: scale * (common.WindowHeight/2 - float64(y)),
	}
}

var objectPrefabs = map[string]string{
	levels.EntityCoin:       "coin.yaml",
	levels.EntityHook:       "hook.yaml",
	levels.EntityCheckpoint: "checkpoint.yaml",
}

// LoadLevelToWorld populates the world with the level's tiles and objects,
// the parallax backdrop, the camera and the player. It returns the player.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, scale float64) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("load level: level is nil")
	}

	if _, err := NewBackgrounds(world, scale); err != nil {
		return 0, fmt.Errorf("load level %q: %w", lvl.Name, err)
	}

	for layer := range lvl.Layers {
		prefab := "decoration.yaml"
		if lvl.Physics(layer) {
			prefab = "block.yaml"
		}
		for _, tile := range lvl.Tiles(layer) {
			e, err := BuildEntity(world, prefab, scale)
			if err != nil {
				return 0, fmt.Errorf("load level %q: tile (%d,%d): %w", lvl.Name, tile.I, tile.J, err)
			}
			pos := TilePosition(tile.I, tile.J, lvl.TileSize, scale)
			if err := SetEntityTransform(world, e, pos.X, pos.Y); err != nil {
				return 0, fmt.Errorf("load level %q: tile (%d,%d): %w", lvl.Name, tile.I, tile.J, err)
			}
		}
	}

	for i, obj := range lvl.Entities {
		prefab, ok := objectPrefabs[obj.Type]
		if !ok {
			continue
		}
		e, err := BuildEntity(world, prefab, scale)
		if err != nil {
			return 0, fmt.Errorf("load level %q: entity %d: %w", lvl.Name, i, err)
		}
		pos := ObjectPosition(obj.X, obj.Y, scale)
		if err := SetEntityTransform(world, e, pos.X, pos.Y); err != nil {
			return 0, fmt.Errorf("load level %q: entity %d: %w", lvl.Name, i, err)
		}
		if obj.Width > 0 && obj.Height > 0 {
			SetEntitySize(world, e, float64(obj.Width)*scale, float64(obj.Height)*scale)
		}
	}

	if _, err := NewCamera(world, scale); err != nil {
		return 0, fmt.Errorf("load level %q: %w", lvl.Name, err)
	}

	if spawn, ok := lvl.Spawn(); ok {
		pos := ObjectPosition(spawn.X, spawn.Y, scale)
		player, err := NewPlayerAt(world, scale, pos.X, pos.Y)
		if err != nil {
			return 0, fmt.Errorf("load level %q: %w", lvl.Name, err)
		}
		return player, nil
	}

	player, err := NewPlayer(world, scale)
	if err != nil {
		return 0, fmt.Errorf("load level %q: %w", lvl.Name, err)
	}
	return player, nil
}
