package aggro

import (
	"chosenoffset.com/aggroarea/internal/core/geometry"
)

// CollisionFilter drops boundary segments that cannot be walked across on
// one plane.
type CollisionFilter struct {
	Terrain TerrainQuery
	Plane   int
}

// Keep reports whether the segment marks an edge the player can actually
// cross in both directions.
func (f CollisionFilter) Keep(s geometry.Segment) bool {
	n := s.Normalized()
	dx := n.B.X - n.A.X
	dy := n.B.Y - n.A.Y

	near := WorldPoint{X: n.A.X, Y: n.A.Y, Plane: f.Plane}
	far := WorldPoint{X: n.A.X - dy, Y: n.A.Y - dx, Plane: f.Plane}

	// Doors and gates are assumed passable: collision data is not refreshed
	// when they are opened or closed.
	if f.Terrain.TileHasOpenableObject(near) || f.Terrain.TileHasOpenableObject(far) {
		return true
	}

	// near steps by (-dy, -dx) onto far, far steps back by (dy, dx).
	return f.Terrain.CanCrossEdge(near, far) && f.Terrain.CanCrossEdge(far, near)
}
