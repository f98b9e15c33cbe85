// Package viewer is an interactive window that walks a player around a
// loaded scene and draws the aggro area as it is recomputed.
package viewer

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chosenoffset.com/aggroarea/internal/config"
	"chosenoffset.com/aggroarea/internal/core/aggro"
	"chosenoffset.com/aggroarea/internal/render"
	"chosenoffset.com/aggroarea/internal/render/overlay"
	"chosenoffset.com/aggroarea/internal/world/scene"
)

// Viewer holds all viewer state and implements render.Game.
type Viewer struct {
	ScreenWidth  int
	ScreenHeight int
	TilePixels   float64

	Renderer render.Renderer
	InputMgr render.InputManager

	Scene   *scene.Scene
	Manager *aggro.Manager
	Store   *config.Store
	Overlay *overlay.Overlay
	Stats   Stats

	Player     aggro.WorldPoint
	LoggedIn   bool
	Teleported bool
	SessionID  string

	// Frames between game ticks
	TickFrames int

	Messages []Message
	Logger   *zap.Logger
	session  *zap.Logger

	FrameCount int
}

// New creates a logged out viewer. Call Login to start the session.
func New(cfg config.Viewer, r render.Renderer, input render.InputManager, sc *scene.Scene,
	mgr *aggro.Manager, store *config.Store, logger *zap.Logger) *Viewer {
	if logger == nil {
		logger = zap.NewNop()
	}
	tickFrames := cfg.TickMillis * FramesPerSecond / 1000
	return &Viewer{
		ScreenWidth:  cfg.Width,
		ScreenHeight: cfg.Height,
		TilePixels:   float64(max(cfg.TilePixels, 1)),
		Renderer:     r,
		InputMgr:     input,
		Scene:        sc,
		Manager:      mgr,
		Store:        store,
		Overlay:      overlay.New(r, mgr),
		Player:       aggro.WorldPoint{X: cfg.StartX, Y: cfg.StartY},
		TickFrames:   max(tickFrames, 1),
		Logger:       logger,
		session:      logger,
	}
}

// Login runs the session through loading into the logged in state.
func (v *Viewer) Login() {
	v.SessionID = uuid.NewString()
	v.session = v.Logger.With(zap.String("session", v.SessionID))
	v.session.Info("logging in", zap.String("scene", v.Scene.Name))

	v.Manager.SetWorld(v.Scene)
	v.Manager.Handle(aggro.SessionEvent(aggro.SessionLoading))
	v.Manager.Handle(aggro.SessionEvent(aggro.SessionLoggedIn))
	v.LoggedIn = true
	v.ShowMessage("Logged in")
}

// Logout returns to the login screen, which forgets the safe centers.
func (v *Viewer) Logout() {
	v.session.Info("logging out")
	v.Manager.Handle(aggro.SessionEvent(aggro.SessionLoginScreen))
	v.LoggedIn = false
	v.ShowMessage("Logged out")
}

// Update handles input and emits a game tick every TickFrames frames.
func (v *Viewer) Update() error {
	dt := 1.0 / FramesPerSecond
	v.updateMessages(dt)
	v.FrameCount++

	if v.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return ErrQuit
	}

	if v.InputMgr.IsKeyJustPressed(render.KeyL) {
		if v.LoggedIn {
			v.Logout()
		} else {
			v.Login()
		}
	}
	if v.InputMgr.IsKeyJustPressed(render.KeyV) {
		v.toggle(config.KeyShowArea)
	}
	if v.InputMgr.IsKeyJustPressed(render.KeyC) {
		v.toggle(config.KeyCollisionDetection)
	}

	if !v.LoggedIn {
		return nil
	}

	v.handleMovement()

	if v.FrameCount%v.TickFrames == 0 {
		v.Manager.Handle(aggro.TickEvent(v.Player))
	}
	return nil
}

func (v *Viewer) handleMovement() {
	var dx, dy int
	switch {
	case v.InputMgr.IsKeyJustPressed(render.KeyW), v.InputMgr.IsKeyJustPressed(render.KeyUp):
		dy = 1
	case v.InputMgr.IsKeyJustPressed(render.KeyS), v.InputMgr.IsKeyJustPressed(render.KeyDown):
		dy = -1
	case v.InputMgr.IsKeyJustPressed(render.KeyA), v.InputMgr.IsKeyJustPressed(render.KeyLeft):
		dx = -1
	case v.InputMgr.IsKeyJustPressed(render.KeyD), v.InputMgr.IsKeyJustPressed(render.KeyRight):
		dx = 1
	}
	if dx != 0 || dy != 0 {
		next := aggro.WorldPoint{X: v.Player.X + dx, Y: v.Player.Y + dy, Plane: v.Player.Plane}
		if v.Scene.CanCrossEdge(v.Player, next) {
			v.Player = next
		}
	}

	if v.InputMgr.IsKeyJustPressed(render.KeyPageUp) && v.Player.Plane < aggro.MaxPlanes-1 {
		v.Player.Plane++
	}
	if v.InputMgr.IsKeyJustPressed(render.KeyPageDown) && v.Player.Plane > 0 {
		v.Player.Plane--
	}

	if v.InputMgr.IsKeyJustPressed(render.KeyT) {
		v.teleport()
	}
}

func (v *Viewer) teleport() {
	dist := TeleportDistance
	if v.Teleported {
		dist = -dist
	}
	dest := v.Player
	dest.X += dist
	if !v.Scene.Chunk().Contains(dest.Coord()) {
		v.ShowMessage("Teleport destination is outside the scene")
		return
	}
	v.Player = dest
	v.Teleported = !v.Teleported
	v.session.Info("teleported", zap.Int("x", dest.X), zap.Int("y", dest.Y), zap.Int("plane", dest.Plane))
}

func (v *Viewer) toggle(key string) {
	o, err := v.Store.Toggle(key)
	if err != nil {
		v.session.Error("failed to toggle setting", zap.String("key", key), zap.Error(err))
		return
	}
	v.Manager.Handle(aggro.ConfigChangedEvent(key, o))
	switch key {
	case config.KeyShowArea:
		v.ShowMessage(fmt.Sprintf("Show aggro area: %s", onOff(o.ShowArea)))
	case config.KeyCollisionDetection:
		v.ShowMessage(fmt.Sprintf("Collision detection: %s", onOff(o.CollisionDetection)))
	}
}

// ShowMessage displays a message for a few seconds.
func (v *Viewer) ShowMessage(text string) {
	v.Messages = append(v.Messages, Message{Text: text, TimeLeft: 3, MaxTime: 3})
}

func (v *Viewer) updateMessages(dt float64) {
	kept := v.Messages[:0]
	for _, m := range v.Messages {
		m.TimeLeft -= dt
		if m.TimeLeft > 0 {
			kept = append(kept, m)
		}
	}
	v.Messages = kept
}

// Camera centers the view on the player.
func (v *Viewer) Camera() overlay.Camera {
	return overlay.Camera{
		CenterX:    float64(v.Player.X) + 0.5,
		CenterY:    float64(v.Player.Y) + 0.5,
		TilePixels: v.TilePixels,
		Width:      v.ScreenWidth,
		Height:     v.ScreenHeight,
	}
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.ScreenWidth, v.ScreenHeight
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
