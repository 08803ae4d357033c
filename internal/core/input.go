package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, h, a
	ActionUp           // Up arrow, k, w
	ActionRight        // Right arrow, l, d
	ActionDown         // Down arrow, j, s
	ActionQuit         // q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// directionPriority is the order in which held directional actions are
// resolved when more than one is active. First match wins.
var directionPriority = [...]struct {
	action Action
	dir    Direction
}{
	{ActionLeft, DirLeft},
	{ActionDown, DirDown},
	{ActionUp, DirUp},
	{ActionRight, DirRight},
}

// InputFrame represents the input state sampled during one frame.
type InputFrame struct {
	Actions map[Action]bool
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

// Empty returns true if no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Direction resolves the frame to at most one requested heading.
// Priority when several are held: Left > Down > Up > Right.
func (f InputFrame) Direction() (Direction, bool) {
	for _, p := range directionPriority {
		if f.Has(p.action) {
			return p.dir, true
		}
	}
	return 0, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
