package overlay

import (
	"math"

	"chosenoffset.com/aggroarea/internal/core/geometry"
)

// Camera maps world tile coordinates onto the screen. North is up, so the
// world y axis is flipped.
type Camera struct {
	CenterX, CenterY float64 // world tile coordinate at the screen centre
	TilePixels       float64
	Width, Height    int
}

// ToScreen converts a world position in tiles to screen pixels.
func (c Camera) ToScreen(wx, wy float64) (float32, float32) {
	sx := (wx-c.CenterX)*c.TilePixels + float64(c.Width)/2
	sy := float64(c.Height)/2 - (wy-c.CenterY)*c.TilePixels
	return float32(sx), float32(sy)
}

// TileRect returns the screen rectangle covering tile t.
func (c Camera) TileRect(t geometry.Coord) (x, y, w, h float32) {
	x, y = c.ToScreen(float64(t.X), float64(t.Y+1))
	size := float32(c.TilePixels)
	return x, y, size, size
}

// TileAt returns the tile under a screen pixel.
func (c Camera) TileAt(sx, sy int) geometry.Coord {
	wx := (float64(sx)-float64(c.Width)/2)/c.TilePixels + c.CenterX
	wy := (float64(c.Height)/2-float64(sy))/c.TilePixels + c.CenterY
	return geometry.Coord{X: int(math.Floor(wx)), Y: int(math.Floor(wy))}
}

// LocalToWorld converts a point in local rendering units of chunk back to
// world tile coordinates.
func LocalToWorld(chunk geometry.Chunk, p geometry.RenderPoint) (float64, float64) {
	return float64(chunk.BaseX) + float64(p.X)/geometry.LocalTileSize,
		float64(chunk.BaseY) + float64(p.Y)/geometry.LocalTileSize
}
