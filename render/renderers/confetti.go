package renderers

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/render"
)

type confettiPiece struct {
	x     float64 // screen fraction
	speed float64 // rows per second
	delay float64 // seconds after celebration start
	sway  float64
	color int
}

// ConfettiRenderer rains confetti while the celebration is active
type ConfettiRenderer struct {
	pieces []confettiPiece
}

// NewConfettiRenderer creates the confetti from the given seed
func NewConfettiRenderer(seed int64) *ConfettiRenderer {
	rng := rand.New(rand.NewSource(seed))
	pieces := make([]confettiPiece, constants.ConfettiPieces)
	for i := range pieces {
		pieces[i] = confettiPiece{
			x:     rng.Float64(),
			speed: constants.ConfettiMinSpeed + rng.Float64()*(constants.ConfettiMaxSpeed-constants.ConfettiMinSpeed),
			delay: rng.Float64() * constants.ConfettiMaxDelaySeconds,
			sway:  rng.Float64() * 2 * math.Pi,
			color: rng.Intn(len(render.ConfettiColors)),
		}
	}
	return &ConfettiRenderer{pieces: pieces}
}

// IsVisible implements VisibilityToggle
func (r *ConfettiRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.CelebrationActive
}

// Render implements SystemRenderer
func (r *ConfettiRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Height <= 0 {
		return
	}
	t := seconds(ctx.Snapshot.SinceCelebration(ctx.Now))
	for _, p := range r.pieces {
		local := t - p.delay
		if local < 0 {
			continue
		}
		y := int(math.Mod(p.speed*local, float64(ctx.Height)))
		x := ctx.Frac(p.x) + int(math.Round(1.5*math.Sin(2*local+p.sway)))
		buf.SetFg(x, y, constants.GlyphConfetti, render.ConfettiColors[p.color])
	}
}
