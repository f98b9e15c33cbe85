package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/aggroarea/internal/config"
	"chosenoffset.com/aggroarea/internal/core/aggro"
	"chosenoffset.com/aggroarea/internal/core/geometry"
	"chosenoffset.com/aggroarea/internal/render"
)

type stroke struct {
	x0, y0, x1, y1 float32
	clr            color.Color
}

type fakeRenderer struct {
	strokes []stroke
}

func (r *fakeRenderer) NewImage(width, height int) render.Image { return &fakeImage{w: width, h: height} }
func (r *fakeRenderer) StrokeLine(_ render.Image, x0, y0, x1, y1 float32, _ float32, clr color.Color) {
	r.strokes = append(r.strokes, stroke{x0, y0, x1, y1, clr})
}
func (r *fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {}
func (r *fakeRenderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {}
func (r *fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {}
func (r *fakeRenderer) DrawText(render.Image, string, int, int, color.Color, float64) {}
func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) { return len(text) * 6, 13 }

type fakeImage struct{ w, h int }

func (i *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, i.w, i.h) }
func (i *fakeImage) Size() (int, int) { return i.w, i.h }
func (i *fakeImage) Fill(color.Color) {}
func (i *fakeImage) Clear() {}
func (i *fakeImage) Dispose() {}

type fakeSource struct {
	lines    *aggro.Lines
	centers  []aggro.WorldPoint
	settings config.Overlay
}

func (s *fakeSource) Lines() *aggro.Lines { return s.lines }
func (s *fakeSource) Centers() []aggro.WorldPoint { return s.centers }
func (s *fakeSource) Settings() config.Overlay { return s.settings }

var testChunk = geometry.Chunk{BaseX: 3136, BaseY: 3136, Size: 104}

func newSource() *fakeSource {
	lines := &aggro.Lines{}
	lines[0] = []geometry.RenderLine{{
		A: geometry.RenderPoint{X: 64 * 128, Y: 64 * 128},
		B: geometry.RenderPoint{X: 65 * 128, Y: 64 * 128},
	}}
	lines[1] = []geometry.RenderLine{{}, {}}
	settings := config.DefaultOverlay()
	settings.ShowArea = true
	return &fakeSource{
		lines:    lines,
		centers:  []aggro.WorldPoint{{X: 3200, Y: 3200}},
		settings: settings,
	}
}

func TestCameraFlipsY(t *testing.T) {
	cam := Camera{CenterX: 3200, CenterY: 3200, TilePixels: 8, Width: 200, Height: 100}
	x, y := cam.ToScreen(3200, 3200)
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(50), y)

	x, y = cam.ToScreen(3201, 3201)
	assert.Equal(t, float32(108), x)
	assert.Equal(t, float32(42), y)

	assert.Equal(t, geometry.Coord{X: 3200, Y: 3200}, cam.TileAt(101, 49))
	assert.Equal(t, geometry.Coord{X: 3199, Y: 3199}, cam.TileAt(99, 51))

	rx, ry, w, h := cam.TileRect(geometry.Coord{X: 3200, Y: 3200})
	assert.Equal(t, []float32{100, 42, 8, 8}, []float32{rx, ry, w, h})
}

func TestOverlayDrawsCurrentPlane(t *testing.T) {
	r := &fakeRenderer{}
	src := newSource()
	o := New(r, src)
	cam := Camera{CenterX: 3200, CenterY: 3200, TilePixels: 8, Width: 200, Height: 100}

	n := o.Draw(&fakeImage{w: 200, h: 100}, cam, testChunk, 0)
	assert.Equal(t, 1, n)
	require.Len(t, r.strokes, 1)
	assert.Equal(t, stroke{100, 50, 108, 50, src.settings.Color}, r.strokes[0])

	r.strokes = nil
	assert.Equal(t, 2, o.Draw(&fakeImage{}, cam, testChunk, 1))
	assert.Len(t, r.strokes, 2)
}

func TestOverlayGating(t *testing.T) {
	cam := Camera{TilePixels: 8}

	hidden := newSource()
	hidden.settings.ShowArea = false
	assert.Zero(t, New(&fakeRenderer{}, hidden).Draw(&fakeImage{}, cam, testChunk, 0))

	noCenters := newSource()
	noCenters.centers = nil
	assert.Zero(t, New(&fakeRenderer{}, noCenters).Draw(&fakeImage{}, cam, testChunk, 0))

	noLines := newSource()
	noLines.lines = nil
	assert.Zero(t, New(&fakeRenderer{}, noLines).Draw(&fakeImage{}, cam, testChunk, 0))

	assert.Zero(t, New(&fakeRenderer{}, newSource()).Draw(&fakeImage{}, cam, testChunk, aggro.MaxPlanes))
}
