package render

import (
	"time"

	"github.com/lixenwraith/birthday-surprise/scene"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now      time.Time
	Snapshot scene.Snapshot

	// Screen dimensions (terminal size)
	Width  int
	Height int

	Muted     bool
	Recipient string
	Age       int
}

// CenterX returns the column at which a run of n cells is horizontally centered
func (ctx RenderContext) CenterX(n int) int {
	x := (ctx.Width - n) / 2
	if x < 0 {
		return 0
	}
	return x
}

// Frac maps a fraction in [0,1] of the screen width to a column
func (ctx RenderContext) Frac(f float64) int {
	return int(f * float64(ctx.Width))
}

// FracY maps a fraction in [0,1] of the screen height to a row
func (ctx RenderContext) FracY(f float64) int {
	return int(f * float64(ctx.Height))
}
