package renderers

import (
	"math/rand"

	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/render"
)

type streak struct {
	y      float64 // screen fraction
	offset float64 // head start in screen widths
}

// WindRenderer sweeps streaks across the screen during the wind gust
type WindRenderer struct {
	streaks []streak
}

// NewWindRenderer creates the streaks from the given seed
func NewWindRenderer(seed int64) *WindRenderer {
	rng := rand.New(rand.NewSource(seed))
	streaks := make([]streak, constants.WindStreaks)
	for i := range streaks {
		streaks[i] = streak{
			y:      0.3 + 0.5*rng.Float64(),
			offset: 0.5 * rng.Float64(),
		}
	}
	return &WindRenderer{streaks: streaks}
}

// IsVisible implements VisibilityToggle
func (r *WindRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.WindActive
}

// Render implements SystemRenderer
func (r *WindRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	elapsed := ctx.Now.Sub(ctx.Snapshot.BlowStartedAt)
	progress := float64(elapsed) / float64(constants.WindDuration)
	if progress < 0 {
		progress = 0
	}
	span := float64(ctx.Width + constants.WindStreakLength)

	for _, s := range r.streaks {
		head := int((progress+s.offset)*span) - constants.WindStreakLength
		y := ctx.FracY(s.y)
		for k := 0; k < constants.WindStreakLength; k++ {
			// Tail fades out behind the head
			level := float64(k+1) / float64(constants.WindStreakLength)
			buf.SetFg(head+k, y, constants.GlyphWind, render.Dim(render.RgbWind, level))
		}
	}
}
