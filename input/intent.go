package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentAdvance    // Enter, Space, n, Right arrow
	IntentReset      // r
	IntentToggleMute // m
	IntentResize     // Terminal resize event
	IntentMouseClick // Left button press
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentAdvance:    "advance",
	IntentReset:      "reset",
	IntentToggleMute: "toggle_mute",
	IntentResize:     "resize",
	IntentMouseClick: "mouse_click",
}

func (t IntentType) String() string {
	if int(t) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[t]
}

// Intent is a parsed input event
// X and Y carry the cell of a click, or the new size on resize
type Intent struct {
	Type IntentType
	X, Y int
}
