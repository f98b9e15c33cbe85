package geometry

// LocalTileSize is the number of local (rendering) units per tile.
const LocalTileSize = 128

// RenderPoint is a position in local rendering units relative to the chunk
// origin.
type RenderPoint struct {
	X, Y int
}

// RenderLine is a Segment reprojected into rendering units.
type RenderLine struct {
	A, B  RenderPoint
	Plane int
}

// Projection maps world tile coordinates of one chunk into local units.
type Projection struct {
	BaseX, BaseY int
	TileSize     int
}

// NewProjection creates the projection for a chunk.
func NewProjection(c Chunk) Projection {
	return Projection{BaseX: c.BaseX, BaseY: c.BaseY, TileSize: LocalTileSize}
}

// Local returns the local position of the centre of tile c.
func (p Projection) Local(c Coord) RenderPoint {
	return RenderPoint{
		X: (c.X-p.BaseX)*p.TileSize + p.TileSize/2,
		Y: (c.Y-p.BaseY)*p.TileSize + p.TileSize/2,
	}
}

// Point returns the local position of grid vertex c: the tile centre moved
// back by half a tile so lines run along tile edges.
func (p Projection) Point(c Coord) RenderPoint {
	lp := p.Local(c)
	lp.X -= p.TileSize / 2
	lp.Y -= p.TileSize / 2
	return lp
}

// World inverts Point. rp must lie on a grid vertex.
func (p Projection) World(rp RenderPoint) Coord {
	return Coord{
		X: rp.X/p.TileSize + p.BaseX,
		Y: rp.Y/p.TileSize + p.BaseY,
	}
}

// Line projects a segment.
func (p Projection) Line(s Segment) RenderLine {
	return RenderLine{A: p.Point(s.A), B: p.Point(s.B), Plane: s.Plane}
}

// Transform projects every segment, preserving order.
func Transform(segments []Segment, p Projection) []RenderLine {
	lines := make([]RenderLine, 0, len(segments))
	for _, s := range segments {
		lines = append(lines, p.Line(s))
	}
	return lines
}
