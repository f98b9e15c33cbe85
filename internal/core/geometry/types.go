package geometry

// Coord is an integer grid coordinate. As a tile it names the tile whose
// south-west corner is at (X, Y); as a vertex it names a grid-line crossing.
// Y grows northwards.
type Coord struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Rect is an axis-aligned rectangle on grid lines. Read as tiles it covers
// MinX <= x < MaxX and MinY <= y < MaxY.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Empty reports whether the rectangle covers no tiles.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Contains reports whether tile c lies inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X < r.MaxX && c.Y >= r.MinY && c.Y < r.MaxY
}

// TileCount returns the number of tiles covered.
func (r Rect) TileCount() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Intersect returns the overlap of two rectangles (possibly empty).
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// union returns the bounding rectangle of r and o.
func (r Rect) union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Segment is a unit-length, grid-aligned boundary edge on one plane.
type Segment struct {
	A, B  Coord
	Plane int
}

// Normalized returns the segment with its endpoints ordered so that A is
// not greater than B on either axis.
func (s Segment) Normalized() Segment {
	if s.A.X > s.B.X {
		s.A.X, s.B.X = s.B.X, s.A.X
	}
	if s.A.Y > s.B.Y {
		s.A.Y, s.B.Y = s.B.Y, s.A.Y
	}
	return s
}

// Horizontal reports whether the segment runs along the X axis.
func (s Segment) Horizontal() bool {
	return s.A.Y == s.B.Y
}

// Polyline is a run of connected axis-aligned edges. A closed loop repeats
// its first vertex at the end.
type Polyline []Coord

// Closed reports whether the polyline ends where it starts.
func (l Polyline) Closed() bool {
	return len(l) > 2 && l[0] == l[len(l)-1]
}

// Path is a possibly disconnected set of polylines.
type Path []Polyline

// Chunk describes the currently loaded square slice of the world map.
type Chunk struct {
	BaseX int `json:"base_x" yaml:"base_x"`
	BaseY int `json:"base_y" yaml:"base_y"`
	Size  int `json:"size" yaml:"size"`
}

// Contains reports whether tile c is inside the chunk.
func (c Chunk) Contains(t Coord) bool {
	return t.X >= c.BaseX && t.X < c.BaseX+c.Size && t.Y >= c.BaseY && t.Y < c.BaseY+c.Size
}

// ClipRect returns the chunk shrunk by one tile on every side. Lines are
// never drawn on the outermost ring because the neighbouring chunk's tiles
// are unknown there.
func (c Chunk) ClipRect() Rect {
	return Rect{
		MinX: c.BaseX + 1,
		MinY: c.BaseY + 1,
		MaxX: c.BaseX + c.Size - 1,
		MaxY: c.BaseY + c.Size - 1,
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
