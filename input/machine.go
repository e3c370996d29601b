package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into intents
// Mouse events are edge-detected so a held button clicks once
type Machine struct {
	keys       *KeyTable
	buttonDown bool
}

// NewMachine creates a parser over the given key table, nil uses the defaults
func NewMachine(keys *KeyTable) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keys: keys}
}

// Process parses a tcell event and returns an Intent
// Returns nil for events without a binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, X: w, Y: h}
	case *tcell.EventKey:
		if t := m.keys.Lookup(ev); t != IntentNone {
			return &Intent{Type: t}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !m.buttonDown
	m.buttonDown = down
	if !pressed {
		return nil
	}
	x, y := ev.Position()
	return &Intent{Type: IntentMouseClick, X: x, Y: y}
}
