package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareCoversRadiusInclusive(t *testing.T) {
	r := Square(Coord{X: 100, Y: 100}, 10)

	assert.Equal(t, Rect{MinX: 90, MinY: 90, MaxX: 111, MaxY: 111}, r)
	assert.Equal(t, 21*21, r.TileCount())
	assert.True(t, r.Contains(Coord{X: 110, Y: 110}))
	assert.False(t, r.Contains(Coord{X: 111, Y: 100}))
}

func TestEmptyAreaHasNoOutline(t *testing.T) {
	a := NewArea()

	assert.True(t, a.Empty())
	assert.Equal(t, 0, a.TileCount())
	assert.Nil(t, a.Outline())
}

func TestSingleSquareOutline(t *testing.T) {
	a := NewArea()
	a.Add(Square(Coord{X: 100, Y: 100}, 10))

	path := a.Outline()
	require.Len(t, path, 1)

	want := Polyline{{90, 90}, {111, 90}, {111, 111}, {90, 111}, {90, 90}}
	assert.Equal(t, want, path[0])
	assert.True(t, path[0].Closed())
}

func TestUnionAreaInclusionExclusion(t *testing.T) {
	cases := []struct {
		name string
		a, b Coord
	}{
		{"overlapping", Coord{100, 100}, Coord{112, 105}},
		{"corner overlap", Coord{100, 100}, Coord{115, 115}},
		{"touching", Coord{100, 100}, Coord{121, 100}},
		{"apart", Coord{100, 100}, Coord{150, 130}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ra, rb := Square(tc.a, 10), Square(tc.b, 10)
			area := NewArea()
			area.Add(ra)
			area.Add(rb)

			want := ra.TileCount() + rb.TileCount() - ra.Intersect(rb).TileCount()
			assert.Equal(t, want, area.TileCount())
		})
	}
}

func TestDisjointSquaresAreaIsExactSum(t *testing.T) {
	area := NewArea()
	area.Add(Square(Coord{0, 0}, 10))
	area.Add(Square(Coord{22, 0}, 10))

	assert.Equal(t, 2*21*21, area.TileCount())
	assert.Len(t, area.Outline(), 2)
}

func TestOverlappingSquaresOutlineIsOneLoop(t *testing.T) {
	area := NewArea()
	area.Add(Square(Coord{100, 100}, 10))
	area.Add(Square(Coord{110, 110}, 10))

	path := area.Outline()
	require.Len(t, path, 1)
	// An L-shaped union of two offset squares has eight corners.
	assert.Len(t, path[0], 9)

	segments := Unitify(path, 0)
	// Perimeter of the union: two full perimeters minus twice the overlap perimeter.
	overlap := Square(Coord{100, 100}, 10).Intersect(Square(Coord{110, 110}, 10))
	overlapPerimeter := 2 * ((overlap.MaxX - overlap.MinX) + (overlap.MaxY - overlap.MinY))
	assert.Len(t, segments, 84+84-overlapPerimeter)
}

func TestOutlineKeepsCoveredSideOnTheLeft(t *testing.T) {
	area := NewArea()
	area.Add(Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1})
	area.Add(Rect{MinX: 1, MinY: 1, MaxX: 2, MaxY: 3})

	for _, s := range Unitify(area.Outline(), 0) {
		var left Coord
		switch {
		case s.B.X > s.A.X:
			left = Coord{X: s.A.X, Y: s.A.Y}
		case s.B.Y > s.A.Y:
			left = Coord{X: s.A.X - 1, Y: s.A.Y}
		case s.B.X < s.A.X:
			left = Coord{X: s.A.X - 1, Y: s.A.Y - 1}
		default:
			left = Coord{X: s.A.X, Y: s.A.Y - 1}
		}
		assert.True(t, area.Contains(left), "segment %v should have the area on its left", s)
	}
}

func TestOutlineIsDeterministic(t *testing.T) {
	build := func() Path {
		area := NewArea()
		area.Add(Square(Coord{40, 40}, 10))
		area.Add(Square(Coord{55, 48}, 10))
		return area.Outline()
	}

	assert.Equal(t, build(), build())
}
