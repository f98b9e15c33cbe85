// Package overlay draws the published aggro lines of the player's plane.
package overlay

import (
	"chosenoffset.com/aggroarea/internal/config"
	"chosenoffset.com/aggroarea/internal/core/aggro"
	"chosenoffset.com/aggroarea/internal/core/geometry"
	"chosenoffset.com/aggroarea/internal/render"
)

// Source is what the overlay reads each frame. *aggro.Manager implements it.
type Source interface {
	Lines() *aggro.Lines
	Centers() []aggro.WorldPoint
	Settings() config.Overlay
}

// Overlay renders aggro lines through a render.Renderer.
type Overlay struct {
	renderer    render.Renderer
	source      Source
	StrokeWidth float32
}

// New creates an overlay reading from source.
func New(r render.Renderer, source Source) *Overlay {
	return &Overlay{renderer: r, source: source, StrokeWidth: 1}
}

// Draw strokes the lines of plane and returns how many were drawn. Nothing is
// drawn while the area is hidden or before a safe center is known.
func (o *Overlay) Draw(dst render.Image, cam Camera, chunk geometry.Chunk, plane int) int {
	settings := o.source.Settings()
	if !settings.ShowArea || len(o.source.Centers()) == 0 {
		return 0
	}
	lines := o.source.Lines()
	if lines == nil || plane < 0 || plane >= aggro.MaxPlanes {
		return 0
	}

	for _, l := range lines[plane] {
		ax, ay := cam.ToScreen(LocalToWorld(chunk, l.A))
		bx, by := cam.ToScreen(LocalToWorld(chunk, l.B))
		o.renderer.StrokeLine(dst, ax, ay, bx, by, o.StrokeWidth, settings.Color)
	}
	return len(lines[plane])
}
