package aggro

// TrackerEvent tells the caller what an observation changed.
type TrackerEvent int

const (
	// TrackerNone means the centers are unchanged.
	TrackerNone TrackerEvent = iota
	// TrackerCenterSet means a new center was placed and the lines are stale.
	TrackerCenterSet
)

// Tracker keeps the two most recent safe centers. The first center is only
// placed after the player jumps more than four radii between two
// observations; from then on a new center is placed whenever the player
// leaves the radius of both known centers.
type Tracker struct {
	centers [2]*WorldPoint // [0] previous, [1] current
	last    *WorldPoint
}

// NewTracker creates a tracker with no centers.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe records the player position for one tick.
func (t *Tracker) Observe(pos WorldPoint) TrackerEvent {
	event := TrackerNone
	p := pos

	if t.last != nil && t.centers[1] == nil && p.DistanceTo2D(*t.last) > Radius*4 {
		t.centers[1] = &p
		event = TrackerCenterSet
	}

	if t.centers[1] != nil && !t.inRange(p) {
		t.centers[0] = t.centers[1]
		t.centers[1] = &p
		event = TrackerCenterSet
	}

	t.last = &p
	return event
}

// inRange reports whether p is within the radius of any center.
func (t *Tracker) inRange(p WorldPoint) bool {
	for _, c := range t.centers {
		if c != nil && c.DistanceTo2D(p) <= Radius {
			return true
		}
	}
	return false
}

// Reset forgets all centers and the last position.
func (t *Tracker) Reset() {
	t.centers = [2]*WorldPoint{}
	t.last = nil
}

// Centers returns the set centers, previous first.
func (t *Tracker) Centers() []WorldPoint {
	var out []WorldPoint
	for _, c := range t.centers {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// Current returns the most recent center.
func (t *Tracker) Current() (WorldPoint, bool) {
	if t.centers[1] == nil {
		return WorldPoint{}, false
	}
	return *t.centers[1], true
}

// Previous returns the center before the current one.
func (t *Tracker) Previous() (WorldPoint, bool) {
	if t.centers[0] == nil {
		return WorldPoint{}, false
	}
	return *t.centers[0], true
}
