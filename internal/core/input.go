package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionSteerLeft         // Left arrow, A
	ActionSteerRight        // Right arrow, D
	ActionStart             // Enter, Space - start a run from idle
	ActionRestart           // R, Enter - leave the game over screen
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Steering merges keyboard and touch signals into one steering value.
//
// Press state is edge-triggered: Press and Release flip it, and the change is
// visible to the very next Value call. There is no debouncing.
type Steering struct {
	left  bool
	right bool
	touch float64
}

// NewSteering creates an aggregator with nothing pressed.
func NewSteering() *Steering {
	return &Steering{}
}

// Press marks a steer action as held. Non-steer actions are ignored.
func (s *Steering) Press(a Action) {
	switch a {
	case ActionSteerLeft:
		s.left = true
	case ActionSteerRight:
		s.right = true
	}
}

// Release marks a steer action as no longer held.
func (s *Steering) Release(a Action) {
	switch a {
	case ActionSteerLeft:
		s.left = false
	case ActionSteerRight:
		s.right = false
	}
}

// Held reports whether a steer action is currently held.
func (s *Steering) Held(a Action) bool {
	switch a {
	case ActionSteerLeft:
		return s.left
	case ActionSteerRight:
		return s.right
	}
	return false
}

// SetTouch sets the signed touch-drag direction (-1 left half, 1 right half).
func (s *Steering) SetTouch(dir float64) {
	s.touch = dir
}

// ClearTouch ends the touch gesture.
func (s *Steering) ClearTouch() {
	s.touch = 0
}

// Reset releases everything.
func (s *Steering) Reset() {
	*s = Steering{}
}

// Value returns (left ? -1 : 0) + (right ? 1 : 0) + touch.
// The sum is not clamped: holding a key and touching the same side yields 2,
// which steers harder than either source alone.
func (s *Steering) Value() float64 {
	v := s.touch
	if s.left {
		v--
	}
	if s.right {
		v++
	}
	return v
}
