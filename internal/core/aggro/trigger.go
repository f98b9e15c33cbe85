package aggro

import (
	"chosenoffset.com/aggroarea/internal/config"
)

// Trigger identifies what caused an event.
type Trigger int

const (
	// TriggerTick is the periodic world tick carrying the player position.
	TriggerTick Trigger = iota
	// TriggerConfigChanged is a change of one overlay setting.
	TriggerConfigChanged
	// TriggerSessionState is a session state transition.
	TriggerSessionState
)

func (t Trigger) String() string {
	switch t {
	case TriggerTick:
		return "tick"
	case TriggerConfigChanged:
		return "config_changed"
	case TriggerSessionState:
		return "session_state"
	default:
		return "unknown"
	}
}

// SessionState mirrors the client's connection states.
type SessionState int

const (
	SessionUnknown SessionState = iota
	SessionLoginScreen
	SessionLoggingIn
	SessionLoading
	SessionLoggedIn
	SessionConnectionLost
	SessionHopping
)

func (s SessionState) String() string {
	switch s {
	case SessionLoginScreen:
		return "login_screen"
	case SessionLoggingIn:
		return "logging_in"
	case SessionLoading:
		return "loading"
	case SessionLoggedIn:
		return "logged_in"
	case SessionConnectionLost:
		return "connection_lost"
	case SessionHopping:
		return "hopping"
	default:
		return "unknown"
	}
}

// Event is one signal delivered to the Manager. Only the fields belonging
// to its Trigger are read.
type Event struct {
	Trigger Trigger

	// TriggerTick
	Position WorldPoint

	// TriggerConfigChanged
	Key      string
	Settings config.Overlay

	// TriggerSessionState
	State SessionState
}

// TickEvent builds a world tick event.
func TickEvent(pos WorldPoint) Event {
	return Event{Trigger: TriggerTick, Position: pos}
}

// ConfigChangedEvent builds a config change event carrying the settings as
// they are after the change.
func ConfigChangedEvent(key string, settings config.Overlay) Event {
	return Event{Trigger: TriggerConfigChanged, Key: key, Settings: settings}
}

// SessionEvent builds a session state event.
func SessionEvent(state SessionState) Event {
	return Event{Trigger: TriggerSessionState, State: state}
}
