package renderers

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/render"
)

type floater struct {
	glyph rune
	color tcell.Color
	x     float64
	rise  time.Duration
	phase float64
}

// FloatersRenderer lets hearts and musical notes drift upward while celebrating
type FloatersRenderer struct {
	floaters []floater
}

// NewFloatersRenderer creates hearts and notes from the given seed
func NewFloatersRenderer(seed int64) *FloatersRenderer {
	rng := rand.New(rand.NewSource(seed))
	floaters := make([]floater, 0, constants.HeartCount+constants.NoteCount)
	for i := 0; i < constants.HeartCount; i++ {
		floaters = append(floaters, floater{
			glyph: constants.GlyphHeart,
			color: render.RgbHeart,
			x:     rng.Float64(),
			rise:  constants.HeartRise,
			phase: rng.Float64(),
		})
	}
	for i := 0; i < constants.NoteCount; i++ {
		floaters = append(floaters, floater{
			glyph: constants.GlyphNote,
			color: render.RgbNote,
			x:     rng.Float64(),
			rise:  constants.NoteRise,
			phase: rng.Float64(),
		})
	}
	return &FloatersRenderer{floaters: floaters}
}

// IsVisible implements VisibilityToggle
func (r *FloatersRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.CelebrationActive
}

// Render implements SystemRenderer
func (r *FloatersRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	t := ctx.Snapshot.SinceCelebration(ctx.Now)
	for _, f := range r.floaters {
		p := cycle(t, f.rise, f.phase)
		y := ctx.Height - 1 - int(p*float64(ctx.Height))
		x := ctx.Frac(f.x) + int(math.Round(2*math.Sin(2*math.Pi*p)))
		buf.SetFg(x, y, f.glyph, render.Dim(f.color, 1-0.6*p))
	}
}
