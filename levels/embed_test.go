package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsValidate(t *testing.T) {
	names := Names()
	require.Contains(t, names, DefaultLevel)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(name)
			require.NoError(t, err)
			assert.Positive(t, lvl.Count(EntityCheckpoint))
			assert.NotEmpty(t, lvl.Tiles(0))
			assert.True(t, lvl.Physics(0))
		})
	}
}

func TestDefaultLevelLayout(t *testing.T) {
	lvl, err := LoadLevelFromFS("levels/level1.json")
	require.NoError(t, err)

	assert.Equal(t, 16, lvl.TileSize)
	assert.False(t, lvl.Physics(1))

	spawn, ok := lvl.Spawn()
	require.True(t, ok)
	assert.Equal(t, 24, spawn.X)
	assert.Positive(t, lvl.Count(EntityCoin))
	assert.Positive(t, lvl.Count(EntityHook))
}

func TestTilesRowMajor(t *testing.T) {
	lvl := &Level{
		Width:    3,
		Height:   2,
		TileSize: 16,
		Layers:   [][]int{{0, 1, 0, 2, 0, 3}},
	}
	require.NoError(t, lvl.Validate())

	assert.Equal(t, []TileRef{
		{Layer: 0, I: 1, J: 0, Value: 1},
		{Layer: 0, I: 0, J: 1, Value: 2},
		{Layer: 0, I: 2, J: 1, Value: 3},
	}, lvl.Tiles(0))
	assert.Nil(t, lvl.Tiles(1))
	assert.False(t, lvl.Physics(1))
}

func TestValidateRejects(t *testing.T) {
	base := func() Level {
		return Level{Width: 2, Height: 1, TileSize: 16, Layers: [][]int{{1, 1}}}
	}

	cases := []struct {
		name   string
		mutate func(l *Level)
	}{
		{"zero_width", func(l *Level) { l.Width = 0 }},
		{"zero_tile_size", func(l *Level) { l.TileSize = 0 }},
		{"short_layer", func(l *Level) { l.Layers[0] = []int{1} }},
		{"extra_meta", func(l *Level) { l.LayerMeta = []LayerMeta{{}, {}} }},
		{"unknown_entity", func(l *Level) { l.Entities = []Entity{{Type: "enemy"}} }},
		{"negative_size", func(l *Level) { l.Entities = []Entity{{Type: EntityCoin, Width: -1}} }},
		{"two_spawns", func(l *Level) { l.Entities = []Entity{{Type: EntitySpawn}, {Type: EntitySpawn}} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := base()
			tc.mutate(&l)
			assert.ErrorIs(t, l.Validate(), ErrInvalidLevel)
		})
	}
}

func TestParseWrapsErrors(t *testing.T) {
	_, err := Parse("broken.json", []byte("{"))
	assert.ErrorContains(t, err, `levels: unmarshal "broken.json"`)

	_, err = Parse("empty.json", []byte("{}"))
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = LoadLevelFromFS("nope")
	assert.ErrorContains(t, err, `levels: read "nope.json"`)
}

func TestLoadLevelPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "levels"), 0o755))
	data := []byte(`{"name":"disk","width":1,"height":1,"tile_size":16,"layers":[[1]]}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels", "level1.json"), data, 0o644))
	t.Chdir(dir)

	lvl, err := LoadLevel(DefaultLevel)
	require.NoError(t, err)
	assert.Equal(t, "disk", lvl.Name)
}
