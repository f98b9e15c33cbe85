package aggro

import (
	"chosenoffset.com/aggroarea/internal/core/geometry"
)

// Params is everything one recomputation reads.
type Params struct {
	Centers            []WorldPoint
	CollisionDetection bool
	World              World
}

// BuildArea unions the squares of the given radius around every center.
func BuildArea(centers []WorldPoint, radius int) *geometry.Area {
	area := geometry.NewArea()
	for _, c := range centers {
		area.Add(geometry.Square(c.Coord(), radius))
	}
	return area
}

// Compute derives the render lines of every plane. The area outline does
// not depend on the plane, so it is traced once and each plane only runs the
// unit split, the collision filter and the projection.
func Compute(p Params) *Lines {
	lines := &Lines{}
	if p.World == nil {
		return lines
	}

	chunk := p.World.Chunk()
	outline := BuildArea(p.Centers, Radius).Outline()
	clipped := geometry.Clip(outline, chunk.ClipRect())
	projection := geometry.NewProjection(chunk)

	for plane := range MaxPlanes {
		segments := geometry.Unitify(clipped, plane)
		if p.CollisionDetection {
			filter := CollisionFilter{Terrain: p.World, Plane: plane}
			segments = geometry.Filter(segments, filter.Keep)
		}
		lines[plane] = geometry.Transform(segments, projection)
	}
	return lines
}
