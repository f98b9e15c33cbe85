package geometry

// Clip restricts a path of axis-aligned edges to the rectangle r. An edge
// survives only where its perpendicular coordinate lies strictly inside r;
// along its own axis it is clamped to r. Edges lying on the border of r are
// therefore dropped. Surviving pieces that still touch are kept in one
// polyline, so a closed loop cut open by r stays a single run where it can.
func Clip(p Path, r Rect) Path {
	var out Path
	for _, line := range p {
		pieces := clipPolyline(line, r)
		if line.Closed() && len(pieces) > 1 {
			first, last := pieces[0], pieces[len(pieces)-1]
			if last[len(last)-1] == first[0] {
				joined := append(append(Polyline{}, last...), first[1:]...)
				pieces = append(pieces[1:len(pieces)-1], joined)
			}
		}
		out = append(out, pieces...)
	}
	return out
}

func clipPolyline(line Polyline, r Rect) []Polyline {
	var pieces []Polyline
	var cur Polyline
	flush := func() {
		if len(cur) > 1 {
			pieces = append(pieces, cur)
		}
		cur = nil
	}
	for i := 0; i+1 < len(line); i++ {
		a, b, ok := clipEdge(line[i], line[i+1], r)
		if !ok {
			flush()
			continue
		}
		if len(cur) > 0 && cur[len(cur)-1] == a {
			cur = append(cur, b)
			continue
		}
		flush()
		cur = Polyline{a, b}
	}
	flush()
	return pieces
}

// clipEdge clips one axis-aligned edge. Diagonal or degenerate edges are
// rejected.
func clipEdge(a, b Coord, r Rect) (Coord, Coord, bool) {
	switch {
	case a == b:
		return a, b, false
	case a.Y == b.Y:
		if a.Y <= r.MinY || a.Y >= r.MaxY {
			return a, b, false
		}
		a.X = clamp(a.X, r.MinX, r.MaxX)
		b.X = clamp(b.X, r.MinX, r.MaxX)
	case a.X == b.X:
		if a.X <= r.MinX || a.X >= r.MaxX {
			return a, b, false
		}
		a.Y = clamp(a.Y, r.MinY, r.MaxY)
		b.Y = clamp(b.Y, r.MinY, r.MaxY)
	default:
		return a, b, false
	}
	return a, b, a != b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
