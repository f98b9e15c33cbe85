package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/aggroarea/internal/core/geometry"
)

const sceneJSON = `{
  "name": "farm",
  "chunk": {"base_x": 3136, "base_y": 3136, "size": 104},
  "objects": [{"id": 1, "name": "Gate", "actions": ["Open", "", "", "", ""]}],
  "walls": [
    {"x": 3190, "y": 3190, "plane": 0, "side": "south", "length": 5},
    {"x": 3195, "y": 3190, "plane": 0, "side": "south", "object": 1}
  ],
  "blocks": [{"plane": 0, "min_x": 3210, "min_y": 3210, "max_x": 3211, "max_y": 3212}]
}`

const sceneYAML = `
name: farm
chunk:
  base_x: 3136
  base_y: 3136
  size: 104
objects:
  - id: 1
    name: Gate
    actions: [Open]
walls:
  - {x: 3190, y: 3190, plane: 0, side: s, length: 5}
  - {x: 3195, y: 3190, plane: 0, side: s, object: 1}
blocks:
  - {plane: 0, min_x: 3210, min_y: 3210, max_x: 3211, max_y: 3212}
`

func writeScene(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFormats(t *testing.T) {
	for name, body := range map[string]string{"farm.json": sceneJSON, "farm.yaml": sceneYAML} {
		t.Run(name, func(t *testing.T) {
			s, err := Load(writeScene(t, name, body))
			require.NoError(t, err)

			assert.Equal(t, "farm", s.Name)
			assert.Equal(t, geometry.Chunk{BaseX: 3136, BaseY: 3136, Size: 104}, s.Chunk())

			for x := 3190; x < 3195; x++ {
				f, err := s.Flags(pt(x, 3190, 0))
				require.NoError(t, err)
				assert.Equal(t, BlockSouth, f, "x=%d", x)
			}
			f, err := s.Flags(pt(3195, 3190, 0))
			require.NoError(t, err)
			assert.Equal(t, BlockSouth, f)
			assert.True(t, s.TileHasOpenableObject(pt(3195, 3190, 0)))

			f, err = s.Flags(pt(3211, 3212, 0))
			require.NoError(t, err)
			assert.Equal(t, BlockFull, f)
			f, err = s.Flags(pt(3212, 3212, 0))
			require.NoError(t, err)
			assert.Zero(t, f)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeScene(t, "bad.json", "{"))
	assert.Error(t, err)

	_, err = Load(writeScene(t, "out.json", `{"chunk": {"base_x": 0, "base_y": 0, "size": 10},
		"walls": [{"x": 12, "y": 0, "plane": 0, "side": "north"}]}`))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestValidateSceneData(t *testing.T) {
	chunk := geometry.Chunk{Size: 10}
	cases := map[string]SceneData{
		"tiny chunk":     {Chunk: geometry.Chunk{Size: 2}},
		"bad object id":  {Chunk: chunk, Objects: []ObjectDefinition{{ID: 0}}},
		"duplicate id":   {Chunk: chunk, Objects: []ObjectDefinition{{ID: 1}, {ID: 1}}},
		"bad side":       {Chunk: chunk, Walls: []WallData{{Side: "up"}}},
		"negative run":   {Chunk: chunk, Walls: []WallData{{Side: "n", Length: -1}}},
		"unknown object": {Chunk: chunk, Walls: []WallData{{Side: "n", Object: 4}}},
		"empty block":    {Chunk: chunk, Blocks: []BlockData{{MinX: 2, MaxX: 1}}},
	}
	for name, sd := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, validateSceneData(&sd))
		})
	}
	assert.NoError(t, validateSceneData(&SceneData{Chunk: chunk}))
}

func TestSampleSceneLoads(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "..", "data", "scene.json"))
	require.NoError(t, err)

	// Farm gate on the east fence.
	assert.True(t, s.TileHasOpenableObject(pt(3219, 3197, 0)))
	assert.False(t, s.CanCrossEdge(pt(3219, 3190, 0), pt(3220, 3190, 0)))
	// House door only exists on the ground floor.
	assert.True(t, s.TileHasOpenableObject(pt(3167, 3223, 0)))
	assert.False(t, s.TileHasOpenableObject(pt(3167, 3223, 1)))
}

func TestLoadRejectsDocumentsOutsideSchema(t *testing.T) {
	cases := map[string]string{
		"unknown.json": `{"chunk": {"base_x": 0, "base_y": 0, "size": 10}, "npcs": []}`,
		"side.json":    `{"chunk": {"base_x": 0, "base_y": 0, "size": 10}, "walls": [{"x": 1, "y": 1, "side": "up"}]}`,
		"nochunk.yaml": "name: empty\n",
		"badplane.yml": "chunk: {base_x: 0, base_y: 0, size: 10}\nblocks:\n  - {plane: 7, min_x: 1, min_y: 1, max_x: 1, max_y: 1}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeScene(t, name, body))
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}
