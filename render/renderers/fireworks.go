package renderers

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/render"
)

// fireworkBursts is the number of fireworks launched per cycle
const fireworkBursts = 6

// FireworksRenderer re-fires a volley of bursts every cycle while the celebration is active
// Each cycle opens with a short dark gap
type FireworksRenderer struct {
	seed int64
}

// NewFireworksRenderer creates a fireworks renderer, burst positions derive from seed and cycle number
func NewFireworksRenderer(seed int64) *FireworksRenderer {
	return &FireworksRenderer{seed: seed}
}

// IsVisible implements VisibilityToggle
func (r *FireworksRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.CelebrationActive
}

// burstPhase returns the cycle number and the burst-local elapsed time of burst k
// ok is false while the burst is not on screen
func burstPhase(since time.Duration, k int) (n int64, local time.Duration, ok bool) {
	n = int64(since / constants.FireworkCycle)
	inCycle := since % constants.FireworkCycle
	if inCycle < constants.FireworkGap {
		return n, 0, false
	}
	local = inCycle - constants.FireworkGap - time.Duration(k)*constants.FireworkStagger
	if local < 0 || local >= constants.FireworkBurstDuration {
		return n, 0, false
	}
	return n, local, true
}

// Render implements SystemRenderer
func (r *FireworksRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	since := ctx.Snapshot.SinceCelebration(ctx.Now)

	for k := 0; k < fireworkBursts; k++ {
		n, local, ok := burstPhase(since, k)
		if !ok {
			continue
		}
		rng := rand.New(rand.NewSource(r.seed + n*fireworkBursts + int64(k)))
		cx := ctx.Frac(0.15 + 0.7*rng.Float64())
		cy := ctx.FracY(0.1 + 0.35*rng.Float64())
		color := render.FireworkColors[rng.Intn(len(render.FireworkColors))]

		p := float64(local) / float64(constants.FireworkBurstDuration)
		fade := render.Dim(color, 1-p)
		for j := 0; j < constants.FireworkParticles; j++ {
			angle := 2 * math.Pi * float64(j) / constants.FireworkParticles
			x := cx + int(math.Round(math.Cos(angle)*constants.FireworkRadiusX*p))
			y := cy + int(math.Round(math.Sin(angle)*constants.FireworkRadiusY*p))
			buf.SetFg(x, y, constants.GlyphSpark, fade)
		}
	}
}
