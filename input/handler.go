package input

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/birthday-surprise/render"
	"github.com/lixenwraith/birthday-surprise/scene"
)

// Controls is the part of the scene controller driven by input
type Controls interface {
	Advance()
	Reset()
	Snapshot() scene.Snapshot
}

// MuteToggle flips audio mute and returns the new state
type MuteToggle interface {
	ToggleMuted() bool
}

// Handler dispatches parsed input to the controller, audio and renderer
type Handler struct {
	machine  *Machine
	controls Controls
	layout   *render.Layout
	mute     MuteToggle
	onResize func(width, height int)
	logger   *zap.Logger
}

// NewHandler creates an input handler, mute and onResize may be nil
func NewHandler(controls Controls, layout *render.Layout, mute MuteToggle, onResize func(width, height int), logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if layout == nil {
		layout = render.NewLayout()
	}
	return &Handler{
		machine:  NewMachine(nil),
		controls: controls,
		layout:   layout,
		mute:     mute,
		onResize: onResize,
		logger:   logger.Named("input"),
	}
}

// HandleEvent applies one terminal event, returns false when the user quits
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	intent := h.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case IntentQuit:
		h.logger.Info("quit requested")
		return false
	case IntentAdvance:
		h.advance()
	case IntentReset:
		h.controls.Reset()
	case IntentToggleMute:
		if h.mute != nil {
			muted := h.mute.ToggleMuted()
			h.logger.Debug("mute toggled", zap.Bool("muted", muted))
		}
	case IntentResize:
		if h.onResize != nil {
			h.onResize(intent.X, intent.Y)
		}
	case IntentMouseClick:
		h.click(intent.X, intent.Y)
	}
	return true
}

// advance forwards to the controller only while the next control is enabled
func (h *Handler) advance() {
	if !h.controls.Snapshot().NextEnabled() {
		return
	}
	h.controls.Advance()
}

func (h *Handler) click(x, y int) {
	switch {
	case h.layout.NextButton().Contains(x, y):
		h.advance()
	case h.layout.RestartButton().Contains(x, y):
		if h.controls.Snapshot().RestartVisible() {
			h.controls.Reset()
		}
	}
}
