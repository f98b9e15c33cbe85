// Package aggro derives the boundary lines of the NPC aggression area: the
// union of the squares around the last two safe spots the player moved
// through, clipped to the loaded chunk and filtered for walkability.
package aggro

//go:generate mockgen -destination=mocks/terrain.go -package=mocks chosenoffset.com/aggroarea/internal/core/aggro TerrainQuery,World

import (
	"chosenoffset.com/aggroarea/internal/core/geometry"
)

const (
	// Radius is the aggression radius in tiles.
	Radius = 10

	// MaxPlanes is the number of vertical map levels.
	MaxPlanes = 4
)

// WorldPoint is a tile position on a plane.
type WorldPoint struct {
	X, Y, Plane int
}

// Coord drops the plane.
func (p WorldPoint) Coord() geometry.Coord {
	return geometry.Coord{X: p.X, Y: p.Y}
}

// DistanceTo2D is the Chebyshev distance between p and o, ignoring planes.
func (p WorldPoint) DistanceTo2D(o WorldPoint) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// TerrainQuery answers the two questions the collision filter asks about the
// loaded world.
type TerrainQuery interface {
	// TileHasOpenableObject reports whether the tile holds an object with an
	// "open" action. Unknown tiles report false.
	TileHasOpenableObject(p WorldPoint) bool
	// CanCrossEdge reports whether a 1x1 mover can step from one tile to the
	// orthogonally adjacent other.
	CanCrossEdge(from, to WorldPoint) bool
}

// World is the loaded chunk together with its terrain.
type World interface {
	TerrainQuery
	Chunk() geometry.Chunk
}

// Lines holds the render lines of every plane. A value is never mutated
// after it has been published.
type Lines [MaxPlanes][]geometry.RenderLine

// Count returns the total number of lines across planes.
func (l *Lines) Count() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, plane := range l {
		n += len(plane)
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
