package viewer

import (
	"fmt"
	"image/color"

	"chosenoffset.com/aggroarea/internal/core/aggro"
	"chosenoffset.com/aggroarea/internal/core/geometry"
	"chosenoffset.com/aggroarea/internal/render"
	"chosenoffset.com/aggroarea/internal/render/overlay"
	"chosenoffset.com/aggroarea/internal/world/scene"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 28, B: 24, A: 255}
	outsideColor    = color.RGBA{R: 8, G: 8, B: 8, A: 255}
	blockedColor    = color.RGBA{R: 70, G: 60, B: 50, A: 255}
	wallColor       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	doorColor       = color.RGBA{R: 180, G: 120, B: 40, A: 255}
	centerColor     = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	playerColor     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	textColor       = color.White
)

// Draw renders the scene, the aggro lines and the HUD.
func (v *Viewer) Draw(screen render.Image) {
	screen.Fill(outsideColor)
	cam := v.Camera()

	v.drawScene(screen, cam)
	v.drawCenters(screen, cam)
	v.Overlay.Draw(screen, cam, v.Scene.Chunk(), v.Player.Plane)
	v.drawPlayer(screen, cam)
	v.drawHUD(screen)
	v.drawMessages(screen)
}

// visibleTiles returns the chunk tiles on screen as [min, max) bounds.
func (v *Viewer) visibleTiles(cam overlay.Camera) geometry.Rect {
	lo := cam.TileAt(0, v.ScreenHeight)
	hi := cam.TileAt(v.ScreenWidth, 0)
	view := geometry.Rect{MinX: lo.X, MinY: lo.Y, MaxX: hi.X + 1, MaxY: hi.Y + 1}
	c := v.Scene.Chunk()
	return view.Intersect(geometry.Rect{MinX: c.BaseX, MinY: c.BaseY, MaxX: c.BaseX + c.Size, MaxY: c.BaseY + c.Size})
}

func (v *Viewer) drawScene(screen render.Image, cam overlay.Camera) {
	visible := v.visibleTiles(cam)
	if visible.Empty() {
		return
	}
	size := float32(cam.TilePixels)

	for y := visible.MinY; y < visible.MaxY; y++ {
		for x := visible.MinX; x < visible.MaxX; x++ {
			p := aggro.WorldPoint{X: x, Y: y, Plane: v.Player.Plane}
			flags, err := v.Scene.Flags(p)
			if err != nil {
				continue
			}
			sx, sy, w, h := cam.TileRect(p.Coord())
			if flags&scene.BlockFull != 0 {
				v.Renderer.FillRect(screen, sx, sy, w, h, blockedColor)
			} else {
				v.Renderer.FillRect(screen, sx, sy, w, h, backgroundColor)
			}

			clr := color.Color(wallColor)
			if v.Scene.TileHasOpenableObject(p) {
				clr = doorColor
			}
			if flags&scene.BlockNorth != 0 {
				v.Renderer.StrokeLine(screen, sx, sy, sx+size, sy, 2, clr)
			}
			if flags&scene.BlockSouth != 0 {
				v.Renderer.StrokeLine(screen, sx, sy+size, sx+size, sy+size, 2, clr)
			}
			if flags&scene.BlockWest != 0 {
				v.Renderer.StrokeLine(screen, sx, sy, sx, sy+size, 2, clr)
			}
			if flags&scene.BlockEast != 0 {
				v.Renderer.StrokeLine(screen, sx+size, sy, sx+size, sy+size, 2, clr)
			}
		}
	}
}

func (v *Viewer) drawCenters(screen render.Image, cam overlay.Camera) {
	if !v.Manager.Settings().ShowArea {
		return
	}
	for _, c := range v.Manager.Centers() {
		sx, sy := cam.ToScreen(float64(c.X)+0.5, float64(c.Y)+0.5)
		v.Renderer.StrokeRect(screen, sx-3, sy-3, 6, 6, 1, centerColor)
	}
}

func (v *Viewer) drawPlayer(screen render.Image, cam overlay.Camera) {
	sx, sy := cam.ToScreen(float64(v.Player.X)+0.5, float64(v.Player.Y)+0.5)
	v.Renderer.FillCircle(screen, sx, sy, float32(cam.TilePixels)/2, playerColor)
}

func (v *Viewer) drawHUD(screen render.Image) {
	settings := v.Manager.Settings()
	session := "login screen"
	if v.LoggedIn {
		session = "logged in, session " + v.SessionID[:8]
	}

	lines := []string{
		fmt.Sprintf("%s  %s", v.Scene.Name, session),
		fmt.Sprintf("Player (%d, %d, %d)", v.Player.X, v.Player.Y, v.Player.Plane),
		fmt.Sprintf("Safe centers: %d", len(v.Manager.Centers())),
		fmt.Sprintf("[V] show area: %s  [C] collision: %s", onOff(settings.ShowArea), onOff(settings.CollisionDetection)),
		fmt.Sprintf("Lines: %d", v.Manager.Lines().Count()),
	}
	if v.Stats != nil {
		lines = append(lines, fmt.Sprintf("Recomputes: %d (last %s)", v.Stats.Total(), v.Stats.Last()))
	}
	lines = append(lines, "[WASD] move  [PgUp/PgDn] plane  [T] teleport  [L] log in/out  [Esc] quit")

	for i, text := range lines {
		v.Renderer.DrawText(screen, text, 8, 8+i*16, textColor, 1)
	}
}

func (v *Viewer) drawMessages(screen render.Image) {
	for i, m := range v.Messages {
		w, _ := v.Renderer.MeasureText(m.Text, 1)
		v.Renderer.DrawText(screen, m.Text, (v.ScreenWidth-w)/2, v.ScreenHeight-40-i*16, textColor, 1)
	}
}
