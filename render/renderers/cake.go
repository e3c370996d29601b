package renderers

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/render"
)

// CakeRenderer draws the layered cake, its candles, flames and smoke
type CakeRenderer struct{}

// NewCakeRenderer creates a cake renderer
func NewCakeRenderer() *CakeRenderer {
	return &CakeRenderer{}
}

// IsVisible implements VisibilityToggle
func (r *CakeRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.CakeVisible()
}

// cakeOrigin returns the left column and the plate row of the cake
func cakeOrigin(width, height int) (int, int) {
	x := (width - constants.CakeWidth) / 2
	if x < 0 {
		x = 0
	}
	return x, height - constants.ButtonBottomMargin - 2
}

// candleColumn returns the screen column of candle i
func candleColumn(cakeX, i int) int {
	spacing := (constants.CakeWidth - 1) / constants.CandleCount
	return cakeX + spacing/2 + i*spacing
}

// Render implements SystemRenderer
func (r *CakeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	x0, plateY := cakeOrigin(ctx.Width, ctx.Height)

	plate := tcell.StyleDefault.Foreground(render.RgbCakePlate).Background(render.BackdropColor(plateY, ctx.Height))
	for x := x0 - 1; x <= x0+constants.CakeWidth; x++ {
		buf.Set(x, plateY, constants.GlyphPlate, plate)
	}

	sponge := tcell.StyleDefault.Foreground(render.RgbCakeCream).Background(render.RgbCakeSponge)
	for row := 1; row <= constants.CakeSpongeRows; row++ {
		y := plateY - row
		glyph := ' '
		if row == constants.CakeSpongeRows/2+1 {
			glyph = constants.GlyphCream
		}
		for x := x0; x < x0+constants.CakeWidth; x++ {
			buf.Set(x, y, glyph, sponge)
		}
	}

	frostingY := plateY - constants.CakeSpongeRows - 1
	frosting := tcell.StyleDefault.Foreground(render.RgbCakeCream).Background(render.RgbCakeFrosting)
	for x := x0; x < x0+constants.CakeWidth; x++ {
		buf.Set(x, frostingY, constants.GlyphFrosting, frosting)
	}

	if !ctx.Snapshot.CandlesVisible() {
		return
	}
	for i := 0; i < constants.CandleCount; i++ {
		r.renderCandle(ctx, buf, i, candleColumn(x0, i), frostingY-1)
	}
}

// renderCandle draws one candle standing on baseY, with its flame or smoke above the wick
func (r *CakeRenderer) renderCandle(ctx render.RenderContext, buf *render.RenderBuffer, i, x, baseY int) {
	for h := 0; h < constants.CandleHeight; h++ {
		color := render.RgbCandle
		if h%2 == 1 {
			color = render.RgbCandleStripe
		}
		buf.SetFg(x, baseY-h, constants.GlyphCandle, color)
	}
	wickY := baseY - constants.CandleHeight
	buf.SetFg(x, wickY, constants.GlyphWick, render.RgbWick)

	flameY := wickY - 1
	snap := ctx.Snapshot
	if snap.CandleLit(i, ctx.Now) {
		flick := (wallClock(ctx.Now)/constants.FlameFlickerInterval+time.Duration(i))%2 == 0
		glyph, color := constants.GlyphFlame, render.RgbFlameOuter
		if flick {
			glyph, color = constants.GlyphFlameFlick, render.RgbFlameCore
		}
		buf.SetFg(x, flameY, glyph, color)
		return
	}

	out, ok := snap.CandleOutFor(i, ctx.Now)
	if !ok || out >= constants.SmokeDuration {
		return
	}
	p := float64(out) / float64(constants.SmokeDuration)
	y := flameY - int(p*constants.SmokeRise)
	buf.SetFg(x, y, constants.GlyphSmoke, render.Dim(render.RgbSmoke, 1-p))
}
