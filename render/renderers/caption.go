package renderers

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/render"
	"github.com/lixenwraith/birthday-surprise/scene"
)

// wishInterval is how long each wish stays on screen while celebrating
const wishInterval = 2 * time.Second

// CaptionRenderer draws per-step text, the controls, the step indicator and the mute flag
// Button rectangles of the frame are published to the layout for mouse hit-testing
type CaptionRenderer struct {
	layout *render.Layout
}

// NewCaptionRenderer creates a caption renderer publishing into layout
func NewCaptionRenderer(layout *render.Layout) *CaptionRenderer {
	return &CaptionRenderer{layout: layout}
}

// Title returns the heading of a step, the celebrate heading carries the recipient name
func Title(step scene.Step, recipient string) string {
	if !step.Valid() {
		return ""
	}
	title := constants.StepContent[step.Index()].Title
	if step.IsTerminal() {
		return fmt.Sprintf(title, strings.ToUpper(recipient))
	}
	return title
}

// Banner returns the celebration banner line
func Banner(recipient string, age int) string {
	if age <= 0 {
		return fmt.Sprintf("~ Cheers to %s ~", recipient)
	}
	return fmt.Sprintf("~ %s turns %s today ~", recipient, Ordinal(age))
}

// Ordinal formats n as 1st, 2nd, 3rd, 4th, 11th, 21st
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Render implements SystemRenderer
func (r *CaptionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	if !snap.Step.Valid() {
		return
	}
	content := constants.StepContent[snap.Step.Index()]

	r.centered(ctx, buf, constants.TitleRow, Title(snap.Step, ctx.Recipient),
		tcell.StyleDefault.Foreground(render.RgbGold).Bold(true))
	r.centered(ctx, buf, constants.SubtitleRow, content.Subtitle,
		tcell.StyleDefault.Foreground(render.RgbTextDim))

	if snap.Step.IsTerminal() {
		r.centered(ctx, buf, constants.SubtitleRow+2, Banner(ctx.Recipient, ctx.Age),
			tcell.StyleDefault.Foreground(render.RgbText).Bold(true))
		if snap.CelebrationActive && len(constants.Wishes) > 0 {
			idx := int(snap.SinceCelebration(ctx.Now)/wishInterval) % len(constants.Wishes)
			r.centered(ctx, buf, constants.SubtitleRow+3, "Wishing you "+constants.Wishes[idx],
				tcell.StyleDefault.Foreground(render.RgbHeart).Italic(true))
		}
	}

	buttonY := ctx.Height - constants.ButtonBottomMargin + 1
	var next, restart render.Rect
	if content.Button != "" {
		bg := render.RgbButtonBg
		if !snap.NextEnabled() {
			bg = render.RgbButtonDisabledBg
		}
		next = r.button(ctx, buf, buttonY, content.Button, bg)
	}
	if snap.RestartVisible() {
		restart = r.button(ctx, buf, buttonY, constants.RestartButtonText, render.RgbButtonRestartBg)
	}
	r.layout.SetButtons(next, restart)

	r.indicator(ctx, buf, snap.Step)

	if ctx.Muted {
		text := constants.MuteIndicatorText
		x := ctx.Width - utf8.RuneCountInString(text) - 1
		buf.SetString(x, 0, text, tcell.StyleDefault.Foreground(render.RgbText).Background(render.RgbMuted))
	}
}

// centered writes text horizontally centered on row y, keeping the backdrop
func (r *CaptionRenderer) centered(ctx render.RenderContext, buf *render.RenderBuffer, y int, text string, style tcell.Style) {
	if text == "" {
		return
	}
	style = style.Background(render.BackdropColor(y, ctx.Height))
	buf.SetString(ctx.CenterX(utf8.RuneCountInString(text)), y, text, style)
}

// button draws a padded label on bg and returns its rectangle
func (r *CaptionRenderer) button(ctx render.RenderContext, buf *render.RenderBuffer, y int, label string, bg tcell.Color) render.Rect {
	pad := strings.Repeat(" ", constants.ButtonPadding)
	text := pad + label + pad
	w := utf8.RuneCountInString(text)
	x := ctx.CenterX(w)
	buf.SetString(x, y, text, tcell.StyleDefault.Foreground(render.RgbButtonText).Background(bg).Bold(true))
	return render.Rect{X: x, Y: y, W: w, H: 1}
}

// indicator draws one dot per step, the current one filled
func (r *CaptionRenderer) indicator(ctx render.RenderContext, buf *render.RenderBuffer, current scene.Step) {
	steps := scene.Steps()
	w := len(steps)*2 - 1
	x := ctx.CenterX(w)
	y := ctx.Height - constants.IndicatorBottomMargin
	for i, s := range steps {
		glyph, color := constants.GlyphDotInactive, render.RgbDotInactive
		if s == current {
			glyph, color = constants.GlyphDotActive, render.RgbDotActive
		}
		buf.SetFg(x+i*2, y, glyph, color)
	}
}
