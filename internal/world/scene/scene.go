// Package scene holds a loaded chunk of the world: per plane collision
// flags and the wall objects standing on each tile.
package scene

import (
	"errors"
	"strings"

	"chosenoffset.com/aggroarea/internal/core/aggro"
	"chosenoffset.com/aggroarea/internal/core/geometry"
)

// ErrOutOfBounds is returned for tiles outside the chunk.
var ErrOutOfBounds = errors.New("tile out of bounds")

// Flags are the movement restrictions of one tile.
type Flags uint8

const (
	BlockNorth Flags = 1 << iota
	BlockEast
	BlockSouth
	BlockWest
	BlockFull
)

// ObjectDefinition describes a kind of object. Actions may hold empty slots.
type ObjectDefinition struct {
	ID      int      `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Actions []string `json:"actions" yaml:"actions"`
}

// Openable reports whether any action is "open", ignoring case.
func (d *ObjectDefinition) Openable() bool {
	if d == nil {
		return false
	}
	for _, a := range d.Actions {
		if strings.ToLower(a) == "open" {
			return true
		}
	}
	return false
}

// Scene is one loaded chunk. It implements aggro.World.
type Scene struct {
	Name  string
	chunk geometry.Chunk

	flags   [aggro.MaxPlanes][]Flags
	walls   [aggro.MaxPlanes][]int // object id per tile, 0 for none
	objects map[int]*ObjectDefinition
}

var _ aggro.World = (*Scene)(nil)

// New creates an open scene with no walls and no objects.
func New(name string, chunk geometry.Chunk) *Scene {
	s := &Scene{
		Name:    name,
		chunk:   chunk,
		objects: map[int]*ObjectDefinition{},
	}
	n := chunk.Size * chunk.Size
	for p := range aggro.MaxPlanes {
		s.flags[p] = make([]Flags, n)
		s.walls[p] = make([]int, n)
	}
	return s
}

// Chunk returns the chunk the scene covers.
func (s *Scene) Chunk() geometry.Chunk {
	return s.chunk
}

func (s *Scene) index(p aggro.WorldPoint) (int, bool) {
	if p.Plane < 0 || p.Plane >= aggro.MaxPlanes || !s.chunk.Contains(p.Coord()) {
		return 0, false
	}
	return (p.Y-s.chunk.BaseY)*s.chunk.Size + (p.X - s.chunk.BaseX), true
}

// Flags returns the collision flags of a tile.
func (s *Scene) Flags(p aggro.WorldPoint) (Flags, error) {
	i, ok := s.index(p)
	if !ok {
		return 0, ErrOutOfBounds
	}
	return s.flags[p.Plane][i], nil
}

// SetFlags adds flags to a tile.
func (s *Scene) SetFlags(p aggro.WorldPoint, f Flags) error {
	i, ok := s.index(p)
	if !ok {
		return ErrOutOfBounds
	}
	s.flags[p.Plane][i] |= f
	return nil
}

// Define registers an object definition.
func (s *Scene) Define(def ObjectDefinition) {
	d := def
	s.objects[def.ID] = &d
}

// Object returns a registered object definition.
func (s *Scene) Object(id int) (*ObjectDefinition, bool) {
	d, ok := s.objects[id]
	return d, ok
}

// PlaceWall puts the wall object id on a tile. The wall itself is set with
// SetFlags.
func (s *Scene) PlaceWall(p aggro.WorldPoint, id int) error {
	i, ok := s.index(p)
	if !ok {
		return ErrOutOfBounds
	}
	s.walls[p.Plane][i] = id
	return nil
}

// WallObject returns the definition of the wall object on a tile.
func (s *Scene) WallObject(p aggro.WorldPoint) (*ObjectDefinition, bool) {
	i, ok := s.index(p)
	if !ok {
		return nil, false
	}
	id := s.walls[p.Plane][i]
	if id == 0 {
		return nil, false
	}
	return s.Object(id)
}

// TileHasOpenableObject reports whether the wall object on the tile has an
// "open" action.
func (s *Scene) TileHasOpenableObject(p aggro.WorldPoint) bool {
	def, ok := s.WallObject(p)
	return ok && def.Openable()
}

// CanCrossEdge reports whether a 1x1 mover can step between two orthogonally
// adjacent tiles. A wall on either side of the shared edge blocks, as does a
// fully blocked destination. Tiles outside the chunk are never reachable.
func (s *Scene) CanCrossEdge(from, to aggro.WorldPoint) bool {
	if from.Plane != to.Plane {
		return false
	}
	fi, ok := s.index(from)
	if !ok {
		return false
	}
	ti, ok := s.index(to)
	if !ok {
		return false
	}

	var leaving, entering Flags
	switch dx, dy := to.X-from.X, to.Y-from.Y; {
	case dx == 1 && dy == 0:
		leaving, entering = BlockEast, BlockWest
	case dx == -1 && dy == 0:
		leaving, entering = BlockWest, BlockEast
	case dx == 0 && dy == 1:
		leaving, entering = BlockNorth, BlockSouth
	case dx == 0 && dy == -1:
		leaving, entering = BlockSouth, BlockNorth
	default:
		return false
	}

	plane := s.flags[from.Plane]
	return plane[fi]&leaving == 0 && plane[ti]&(entering|BlockFull) == 0
}
