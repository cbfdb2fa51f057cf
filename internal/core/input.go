package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionConfirm        // Enter, Space - color the region under the cursor
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - rewind to the prefilled board
	ActionNewGame        // N key - fresh board and prefill
	ActionSolve          // X key - let the computer color the rest
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionColor1         // 1..8 pick a palette entry; keep these last
	ActionColor2
	ActionColor3
	ActionColor4
	ActionColor5
	ActionColor6
	ActionColor7
	ActionColor8
)

// MaxPaletteActions is the number of palette slots reachable from the keyboard.
const MaxPaletteActions = int(ActionColor8-ActionColor1) + 1

// ColorAction returns the action selecting palette slot i (0-based).
// Returns ActionNone if i is out of range.
func ColorAction(i int) Action {
	if i < 0 || i >= MaxPaletteActions {
		return ActionNone
	}
	return ActionColor1 + Action(i)
}

// ColorIndex returns the palette slot selected by a color action.
func (a Action) ColorIndex() (int, bool) {
	if a < ActionColor1 || a > ActionColor8 {
		return 0, false
	}
	return int(a - ActionColor1), true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if i, ok := a.ColorIndex(); ok {
		return "Color" + string(rune('1'+i))
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNewGame:
		return "NewGame"
	case ActionSolve:
		return "Solve"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

// PickedColor returns the lowest palette slot picked this frame, if any.
func (f InputFrame) PickedColor() (int, bool) {
	for i := range MaxPaletteActions {
		if f.Has(ColorAction(i)) {
			return i, true
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
