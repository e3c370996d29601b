package renderers

import (
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/render"
)

type sparkle struct {
	x, y  float64 // screen fractions
	phase float64
}

// BackgroundRenderer paints the gradient backdrop and the twinkling sparkles
type BackgroundRenderer struct {
	sparkles []sparkle
}

// NewBackgroundRenderer places the sparkles from the given seed
func NewBackgroundRenderer(seed int64) *BackgroundRenderer {
	rng := rand.New(rand.NewSource(seed))
	sparkles := make([]sparkle, constants.SparkleCount)
	for i := range sparkles {
		sparkles[i] = sparkle{x: rng.Float64(), y: rng.Float64(), phase: rng.Float64()}
	}
	return &BackgroundRenderer{sparkles: sparkles}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for y := 0; y < ctx.Height; y++ {
		bg := render.BackdropColor(y, ctx.Height)
		style := tcell.StyleDefault.Background(bg)
		for x := 0; x < ctx.Width; x++ {
			buf.Set(x, y, ' ', style)
		}
	}

	t := wallClock(ctx.Now)
	for _, s := range r.sparkles {
		// Brightness follows a sine over the twinkle period
		level := 0.5 + 0.5*math.Sin(2*math.Pi*cycle(t, constants.SparklePeriod, s.phase))
		glyph := constants.GlyphSparkleDim
		if level > 0.6 {
			glyph = constants.GlyphSparkle
		}
		buf.SetFg(ctx.Frac(s.x), ctx.FracY(s.y), glyph, render.Dim(render.RgbSparkle, 0.3+0.7*level))
	}
}
