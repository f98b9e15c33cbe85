package aggro

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"chosenoffset.com/aggroarea/internal/config"
)

// Metrics receives one observation per recomputation.
type Metrics interface {
	ObserveRecompute(trigger string, elapsed time.Duration, perPlane []int)
}

type noopMetrics struct{}

func (noopMetrics) ObserveRecompute(string, time.Duration, []int) {}

// Manager owns the tracker and the published lines. Events are handled one
// at a time; readers of Lines always get a complete set for all planes.
type Manager struct {
	mu       sync.Mutex
	tracker  *Tracker
	settings config.Overlay
	world    World

	lines atomic.Pointer[Lines]

	logger  *zap.Logger
	metrics Metrics
}

// Option configures a Manager.
type Option func(*Manager)

// WithMetrics reports recomputations to m.
func WithMetrics(m Metrics) Option {
	return func(mgr *Manager) {
		if m != nil {
			mgr.metrics = m
		}
	}
}

// WithWorld sets the initially loaded world.
func WithWorld(w World) Option {
	return func(mgr *Manager) {
		mgr.world = w
	}
}

// NewManager creates a manager with no centers and no lines.
func NewManager(settings config.Overlay, logger *zap.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		tracker:  NewTracker(),
		settings: settings,
		logger:   logger,
		metrics:  noopMetrics{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetWorld swaps the loaded chunk. Lines are recomputed on the next trigger
// that asks for it, normally the logged-in transition after loading.
func (m *Manager) SetWorld(w World) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.world = w
}

// Handle processes one event synchronously.
func (m *Manager) Handle(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch ev.Trigger {
	case TriggerTick:
		if m.tracker.Observe(ev.Position) == TrackerCenterSet {
			m.logger.Info("aggro center set",
				zap.Int("x", ev.Position.X),
				zap.Int("y", ev.Position.Y),
				zap.Int("plane", ev.Position.Plane))
			m.recompute(ev.Trigger)
		}
	case TriggerConfigChanged:
		m.settings = ev.Settings
		if ev.Key == config.KeyCollisionDetection || ev.Key == config.KeyShowArea {
			m.recompute(ev.Trigger)
		}
	case TriggerSessionState:
		switch ev.State {
		case SessionLoggedIn:
			m.recompute(ev.Trigger)
		case SessionLoginScreen:
			m.tracker.Reset()
			m.logger.Info("aggro centers cleared", zap.Stringer("state", ev.State))
		}
	default:
		m.logger.Warn("ignoring unknown trigger", zap.Int("trigger", int(ev.Trigger)))
	}
}

// recompute runs the full pipeline and publishes the result. Callers hold mu.
func (m *Manager) recompute(trigger Trigger) {
	if m.world == nil {
		m.logger.Debug("no chunk loaded, keeping previous lines", zap.Stringer("trigger", trigger))
		return
	}

	start := time.Now()
	lines := Compute(Params{
		Centers:            m.tracker.Centers(),
		CollisionDetection: m.settings.CollisionDetection,
		World:              m.world,
	})
	m.lines.Store(lines)
	elapsed := time.Since(start)

	perPlane := make([]int, MaxPlanes)
	for i := range lines {
		perPlane[i] = len(lines[i])
	}
	m.metrics.ObserveRecompute(trigger.String(), elapsed, perPlane)
	m.logger.Debug("recomputed aggro lines",
		zap.Stringer("trigger", trigger),
		zap.Ints("lines", perPlane),
		zap.Duration("elapsed", elapsed))
}

// Lines returns the last published lines, or nil before the first pass.
func (m *Manager) Lines() *Lines {
	return m.lines.Load()
}

// Centers returns the current safe centers, previous first.
func (m *Manager) Centers() []WorldPoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tracker.Centers()
}

// Settings returns the overlay settings last delivered to the manager.
func (m *Manager) Settings() config.Overlay {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}
