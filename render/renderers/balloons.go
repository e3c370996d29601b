package renderers

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/render"
	"github.com/lixenwraith/birthday-surprise/scene"
)

type balloon struct {
	x     float64
	rise  time.Duration
	delay time.Duration
	sway  float64
}

// BalloonsRenderer floats balloons upward on every step after the welcome
type BalloonsRenderer struct {
	balloons []balloon
}

// NewBalloonsRenderer creates the balloons from the given seed
func NewBalloonsRenderer(seed int64) *BalloonsRenderer {
	rng := rand.New(rand.NewSource(seed))
	balloons := make([]balloon, constants.BalloonCount)
	for i := range balloons {
		balloons[i] = balloon{
			x:     0.05 + 0.9*float64(i)/float64(constants.BalloonCount-1),
			rise:  constants.BalloonMinRise + time.Duration(rng.Int63n(int64(constants.BalloonRiseJitter))),
			delay: time.Duration(i) * constants.BalloonDelay,
			sway:  rng.Float64() * 2 * math.Pi,
		}
	}
	return &BalloonsRenderer{balloons: balloons}
}

// IsVisible implements VisibilityToggle
func (r *BalloonsRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.Step > scene.StepWelcome
}

// Render implements SystemRenderer
func (r *BalloonsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	shown := ctx.Snapshot.SinceStep(ctx.Now)
	if ctx.Snapshot.Step > scene.StepDecorate {
		// Balloons launched on decorate keep rising through later steps
		shown = wallClock(ctx.Now)
	}

	for i, b := range r.balloons {
		t := shown - b.delay
		if t < 0 {
			continue
		}
		progress := cycle(t, b.rise, 0)
		span := float64(ctx.Height + 3)
		y := ctx.Height - int(progress*span)
		x := ctx.Frac(b.x) + int(math.Round(math.Sin(seconds(t)+b.sway)))

		color := render.BalloonColors[i%len(render.BalloonColors)]
		buf.SetFg(x, y, constants.GlyphBalloon, color)
		buf.SetFg(x, y+1, constants.GlyphBalloonString, render.RgbTextDim)
	}
}
