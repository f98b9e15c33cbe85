package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/aggroarea/internal/core/aggro"
	"chosenoffset.com/aggroarea/internal/core/geometry"
)

// WallData places a run of wall on one side of consecutive tiles. Runs on
// the north and south side extend east, runs on the east and west side
// extend north.
type WallData struct {
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Plane  int    `json:"plane" yaml:"plane"`
	Side   string `json:"side" yaml:"side"`
	Length int    `json:"length,omitempty" yaml:"length,omitempty"`
	Object int    `json:"object,omitempty" yaml:"object,omitempty"`
}

// BlockData fully blocks every tile in [MinX, MaxX] x [MinY, MaxY].
type BlockData struct {
	Plane int `json:"plane" yaml:"plane"`
	MinX  int `json:"min_x" yaml:"min_x"`
	MinY  int `json:"min_y" yaml:"min_y"`
	MaxX  int `json:"max_x" yaml:"max_x"`
	MaxY  int `json:"max_y" yaml:"max_y"`
}

// SceneData is the on-disk form of a scene.
type SceneData struct {
	Name    string             `json:"name" yaml:"name"`
	Chunk   geometry.Chunk     `json:"chunk" yaml:"chunk"`
	Objects []ObjectDefinition `json:"objects" yaml:"objects"`
	Walls   []WallData         `json:"walls" yaml:"walls"`
	Blocks  []BlockData        `json:"blocks" yaml:"blocks"`
}

// Load reads a scene from a .json, .yaml or .yml file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	var sd SceneData
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
		}
		if err := validateDocument(gojsonschema.NewGoLoader(doc)); err != nil {
			return nil, fmt.Errorf("invalid scene file %s: %w", path, err)
		}
		err = yaml.Unmarshal(data, &sd)
	default:
		if err := validateDocument(gojsonschema.NewBytesLoader(data)); err != nil {
			return nil, fmt.Errorf("invalid scene file %s: %w", path, err)
		}
		err = json.Unmarshal(data, &sd)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	s, err := Build(&sd)
	if err != nil {
		return nil, fmt.Errorf("invalid scene data in %s: %w", path, err)
	}
	return s, nil
}

// Build validates sd and turns it into a Scene.
func Build(sd *SceneData) (*Scene, error) {
	if err := validateSceneData(sd); err != nil {
		return nil, err
	}

	s := New(sd.Name, sd.Chunk)
	for _, def := range sd.Objects {
		s.Define(def)
	}

	for i, w := range sd.Walls {
		side, dx, dy := parseSide(w.Side)
		n := max(w.Length, 1)
		for k := 0; k < n; k++ {
			p := aggro.WorldPoint{X: w.X + k*dx, Y: w.Y + k*dy, Plane: w.Plane}
			if err := s.SetFlags(p, side); err != nil {
				return nil, fmt.Errorf("wall %d at (%d, %d, %d): %w", i, p.X, p.Y, p.Plane, err)
			}
			if w.Object != 0 {
				if err := s.PlaceWall(p, w.Object); err != nil {
					return nil, fmt.Errorf("wall %d object: %w", i, err)
				}
			}
		}
	}

	for i, b := range sd.Blocks {
		for y := b.MinY; y <= b.MaxY; y++ {
			for x := b.MinX; x <= b.MaxX; x++ {
				p := aggro.WorldPoint{X: x, Y: y, Plane: b.Plane}
				if err := s.SetFlags(p, BlockFull); err != nil {
					return nil, fmt.Errorf("block %d at (%d, %d, %d): %w", i, x, y, b.Plane, err)
				}
			}
		}
	}

	return s, nil
}

// parseSide returns the wall flag of a side and the direction a run of that
// wall extends in.
func parseSide(side string) (Flags, int, int) {
	switch strings.ToLower(side) {
	case "north", "n":
		return BlockNorth, 1, 0
	case "south", "s":
		return BlockSouth, 1, 0
	case "east", "e":
		return BlockEast, 0, 1
	case "west", "w":
		return BlockWest, 0, 1
	}
	return 0, 0, 0
}

// validateSceneData checks if the scene data is valid
func validateSceneData(sd *SceneData) error {
	if sd.Chunk.Size <= 2 {
		return fmt.Errorf("invalid chunk size: %d", sd.Chunk.Size)
	}

	ids := make(map[int]bool, len(sd.Objects))
	for _, def := range sd.Objects {
		if def.ID <= 0 {
			return fmt.Errorf("object %q has invalid id %d", def.Name, def.ID)
		}
		if ids[def.ID] {
			return fmt.Errorf("duplicate object id %d", def.ID)
		}
		ids[def.ID] = true
	}

	for i, w := range sd.Walls {
		if f, _, _ := parseSide(w.Side); f == 0 {
			return fmt.Errorf("wall %d has invalid side %q", i, w.Side)
		}
		if w.Length < 0 {
			return fmt.Errorf("wall %d has negative length %d", i, w.Length)
		}
		if w.Object != 0 && !ids[w.Object] {
			return fmt.Errorf("wall %d references unknown object %d", i, w.Object)
		}
	}

	for i, b := range sd.Blocks {
		if b.MinX > b.MaxX || b.MinY > b.MaxY {
			return fmt.Errorf("block %d is empty", i)
		}
	}

	return nil
}
