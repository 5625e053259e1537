package core

// Action represents a semantic action, abstracted from physical key presses.
// Scenes react to actions the same way they react to button presses.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space - start game from the menu
	ActionRestart        // R - restart after game over
	ActionMenu           // M, Escape - back to the main menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerPhase is the phase of a touch sequence.
type PointerPhase int

const (
	PointerBegin PointerPhase = iota // finger down / button pressed
	PointerMove                      // moved while down
	PointerEnd                       // finger up / button released
)

// String returns a human-readable name for the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerBegin:
		return "Begin"
	case PointerMove:
		return "Move"
	case PointerEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// PointerEvent is a single sample of the primary pointer in world space.
type PointerEvent struct {
	Phase PointerPhase
	Pos   Vec2
}

// InputFrame represents the input for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the primary pointer sample for this frame, if any.
	// At most one sample is delivered per frame.
	Pointer *PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pointer sample for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}

// PointerQueue buffers pointer samples that arrive between ticks so that
// each tick consumes at most one. Consecutive moves are coalesced into the
// latest one; begin and end samples are never dropped.
type PointerQueue struct {
	events []PointerEvent
}

// Push appends a sample.
func (q *PointerQueue) Push(ev PointerEvent) {
	if ev.Phase == PointerMove && len(q.events) > 0 {
		last := &q.events[len(q.events)-1]
		if last.Phase == PointerMove {
			last.Pos = ev.Pos
			return
		}
	}
	q.events = append(q.events, ev)
}

// Pop removes and returns the oldest sample.
func (q *PointerQueue) Pop() (PointerEvent, bool) {
	if len(q.events) == 0 {
		return PointerEvent{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of pending samples.
func (q *PointerQueue) Len() int {
	return len(q.events)
}

// Reset drops all pending samples.
func (q *PointerQueue) Reset() {
	q.events = q.events[:0]
}
