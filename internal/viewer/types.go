package viewer

import (
	"errors"
	"time"
)

// ErrQuit is returned from Update when the user closes the viewer.
var ErrQuit = errors.New("viewer closed")

// FramesPerSecond is the logic update rate of the engine.
const FramesPerSecond = 60

// TeleportDistance is how far T moves the player, more than four aggro radii
// so the first safe center is placed.
const TeleportDistance = 45

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Stats reports recomputation counters for the HUD.
type Stats interface {
	Total() uint64
	Last() time.Duration
}
