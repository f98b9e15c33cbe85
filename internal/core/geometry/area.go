package geometry

import "sort"

// Area is a union of grid-aligned rectangles. Membership is decided per
// tile, so overlapping rectangles need no explicit merge step.
type Area struct {
	rects []Rect
}

// NewArea creates an empty area.
func NewArea() *Area {
	return &Area{}
}

// Square returns the rectangle covering every tile within radius of center
// on both axes. The far edges sit one grid line past the radius so the
// tiles at exactly radius distance are included.
func Square(center Coord, radius int) Rect {
	return Rect{
		MinX: center.X - radius,
		MinY: center.Y - radius,
		MaxX: center.X + radius + 1,
		MaxY: center.Y + radius + 1,
	}
}

// Add unions r into the area. Empty rectangles are ignored.
func (a *Area) Add(r Rect) {
	if r.Empty() {
		return
	}
	a.rects = append(a.rects, r)
}

// Empty reports whether the area covers no tiles.
func (a *Area) Empty() bool {
	return a == nil || len(a.rects) == 0
}

// Contains reports whether tile c is covered by any rectangle.
func (a *Area) Contains(c Coord) bool {
	if a == nil {
		return false
	}
	for _, r := range a.rects {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// Bounds returns the bounding rectangle of the area.
func (a *Area) Bounds() Rect {
	var b Rect
	if a == nil {
		return b
	}
	for _, r := range a.rects {
		b = b.union(r)
	}
	return b
}

// TileCount returns the number of distinct tiles covered.
func (a *Area) TileCount() int {
	if a.Empty() {
		return 0
	}
	count := 0
	for i, r := range a.rects {
		for y := r.MinY; y < r.MaxY; y++ {
			for x := r.MinX; x < r.MaxX; x++ {
				if !a.coveredBefore(i, Coord{X: x, Y: y}) {
					count++
				}
			}
		}
	}
	return count
}

// coveredBefore reports whether a rectangle earlier than index i owns c.
func (a *Area) coveredBefore(i int, c Coord) bool {
	for _, r := range a.rects[:i] {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// Outline traces the boundary of the area as closed loops with the covered
// side on the left. Collinear runs are merged so every vertex is a corner.
// Loops start at the lowest, then leftmost, unused edge which keeps the
// output stable for identical input.
func (a *Area) Outline() Path {
	edges := a.boundaryEdges()
	if len(edges) == 0 {
		return nil
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A.Y != edges[j].A.Y {
			return edges[i].A.Y < edges[j].A.Y
		}
		if edges[i].A.X != edges[j].A.X {
			return edges[i].A.X < edges[j].A.X
		}
		if edges[i].B.Y != edges[j].B.Y {
			return edges[i].B.Y < edges[j].B.Y
		}
		return edges[i].B.X < edges[j].B.X
	})

	outgoing := make(map[Coord][]int, len(edges))
	for i, e := range edges {
		outgoing[e.A] = append(outgoing[e.A], i)
	}

	used := make([]bool, len(edges))
	next := func(from Coord) int {
		for _, idx := range outgoing[from] {
			if !used[idx] {
				return idx
			}
		}
		return -1
	}

	var path Path
	for i := range edges {
		if used[i] {
			continue
		}
		start := edges[i].A
		loop := Polyline{start}
		for idx := i; idx >= 0; {
			used[idx] = true
			end := edges[idx].B
			loop = append(loop, end)
			if end == start {
				break
			}
			idx = next(end)
		}
		path = append(path, mergeCollinear(loop))
	}
	return path
}

// boundaryEdges collects every unit edge between a covered and an uncovered
// tile. Only tiles on a rectangle's rim can border an uncovered tile.
func (a *Area) boundaryEdges() []Segment {
	if a.Empty() {
		return nil
	}
	seen := make(map[Coord]bool)
	var edges []Segment
	visit := func(c Coord) {
		if seen[c] {
			return
		}
		seen[c] = true
		x, y := c.X, c.Y
		if !a.Contains(Coord{X: x, Y: y - 1}) {
			edges = append(edges, Segment{A: Coord{x, y}, B: Coord{x + 1, y}})
		}
		if !a.Contains(Coord{X: x + 1, Y: y}) {
			edges = append(edges, Segment{A: Coord{x + 1, y}, B: Coord{x + 1, y + 1}})
		}
		if !a.Contains(Coord{X: x, Y: y + 1}) {
			edges = append(edges, Segment{A: Coord{x + 1, y + 1}, B: Coord{x, y + 1}})
		}
		if !a.Contains(Coord{X: x - 1, Y: y}) {
			edges = append(edges, Segment{A: Coord{x, y + 1}, B: Coord{x, y}})
		}
	}
	for _, r := range a.rects {
		for x := r.MinX; x < r.MaxX; x++ {
			visit(Coord{X: x, Y: r.MinY})
			visit(Coord{X: x, Y: r.MaxY - 1})
		}
		for y := r.MinY + 1; y < r.MaxY-1; y++ {
			visit(Coord{X: r.MinX, Y: y})
			visit(Coord{X: r.MaxX - 1, Y: y})
		}
	}
	return edges
}

// mergeCollinear drops the vertices of a closed unit loop that do not turn.
func mergeCollinear(loop Polyline) Polyline {
	n := len(loop) - 1
	if n < 3 {
		return loop
	}
	var corners Polyline
	for i := 0; i < n; i++ {
		prev := loop[(i-1+n)%n]
		cur := loop[i]
		nxt := loop[(i+1)%n]
		inX, inY := sign(cur.X-prev.X), sign(cur.Y-prev.Y)
		outX, outY := sign(nxt.X-cur.X), sign(nxt.Y-cur.Y)
		if inX != outX || inY != outY {
			corners = append(corners, cur)
		}
	}
	if len(corners) == 0 {
		return loop
	}
	return append(corners, corners[0])
}
