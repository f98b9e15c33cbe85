package geometry

// Unitify breaks every edge of the path into unit steps, in path order,
// tagging each with plane. Edges that are not axis-aligned are skipped.
func Unitify(p Path, plane int) []Segment {
	var segments []Segment
	for _, line := range p {
		for i := 0; i+1 < len(line); i++ {
			a, b := line[i], line[i+1]
			if a.X != b.X && a.Y != b.Y {
				continue
			}
			dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
			for a != b {
				next := a.Add(dx, dy)
				segments = append(segments, Segment{A: a, B: next, Plane: plane})
				a = next
			}
		}
	}
	return segments
}

// Filter returns the segments for which keep returns true, preserving order.
func Filter(segments []Segment, keep func(Segment) bool) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
