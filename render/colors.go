package render

import "github.com/gdamore/tcell/v2"

// Base palette
var (
	RgbBackground = tcell.NewRGBColor(26, 16, 56)    // Deep indigo
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbTextDim    = tcell.NewRGBColor(200, 190, 230) // Lavender
	RgbGold       = tcell.NewRGBColor(255, 215, 0)   // Banner gold
	RgbBlack      = tcell.NewRGBColor(0, 0, 0)

	RgbButtonBg         = tcell.NewRGBColor(236, 72, 153)  // Pink
	RgbButtonDisabledBg = tcell.NewRGBColor(90, 80, 110)   // Muted purple
	RgbButtonRestartBg  = tcell.NewRGBColor(168, 85, 247)  // Purple
	RgbButtonText       = tcell.NewRGBColor(255, 255, 255) // White

	RgbDotActive   = tcell.NewRGBColor(255, 255, 255)
	RgbDotInactive = tcell.NewRGBColor(120, 110, 150)
	RgbMuted       = tcell.NewRGBColor(255, 80, 80)
)

// Cake palette
var (
	RgbCakeSponge   = tcell.NewRGBColor(222, 184, 135) // Burlywood
	RgbCakeFrosting = tcell.NewRGBColor(255, 182, 193) // Light pink
	RgbCakeCream    = tcell.NewRGBColor(255, 248, 220) // Cornsilk
	RgbCakePlate    = tcell.NewRGBColor(210, 210, 220)
	RgbCandle       = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbCandleStripe = tcell.NewRGBColor(255, 255, 255)
	RgbWick         = tcell.NewRGBColor(60, 60, 60)
	RgbFlameCore    = tcell.NewRGBColor(255, 240, 120)
	RgbFlameOuter   = tcell.NewRGBColor(255, 140, 0)
	RgbSmoke        = tcell.NewRGBColor(170, 170, 180)
	RgbWind         = tcell.NewRGBColor(200, 230, 255)
	RgbSparkle      = tcell.NewRGBColor(255, 250, 205)
	RgbHeart        = tcell.NewRGBColor(255, 105, 180)
	RgbNote         = tcell.NewRGBColor(173, 216, 230)
)

// BalloonColors cycle over balloons by index
var BalloonColors = [...]tcell.Color{
	tcell.NewHexColor(0xFF6B6B),
	tcell.NewHexColor(0x4ECDC4),
	tcell.NewHexColor(0xFFD93D),
	tcell.NewHexColor(0x6BCB77),
	tcell.NewHexColor(0xFF9F1C),
	tcell.NewHexColor(0x9B59B6),
	tcell.NewHexColor(0x3498DB),
	tcell.NewHexColor(0xE91E63),
}

// ConfettiColors are picked per piece
var ConfettiColors = [...]tcell.Color{
	tcell.NewHexColor(0xFF6B6B),
	tcell.NewHexColor(0xFFD93D),
	tcell.NewHexColor(0x6BCB77),
	tcell.NewHexColor(0x4ECDC4),
	tcell.NewHexColor(0xFF9F1C),
	tcell.NewHexColor(0xE91E63),
}

// FireworkColors are picked per burst
var FireworkColors = [...]tcell.Color{
	tcell.NewHexColor(0xFF4D4D),
	tcell.NewHexColor(0xFFD700),
	tcell.NewHexColor(0x00E5FF),
	tcell.NewHexColor(0x76FF03),
	tcell.NewHexColor(0xFF40FF),
	tcell.NewHexColor(0xFFFFFF),
}

// backdrop stops, top to bottom
var backdropStops = [...]tcell.Color{
	tcell.NewRGBColor(49, 46, 129), // Indigo
	tcell.NewRGBColor(88, 28, 135), // Purple
	tcell.NewRGBColor(131, 24, 67), // Pink
}

// Lerp interpolates between two colors, t is clamped to [0,1]
func Lerp(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 {
		return x + int32(float64(y-x)*t)
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}

// Dim scales a color toward black, factor 1 keeps it, 0 is black
func Dim(c tcell.Color, factor float64) tcell.Color {
	return Lerp(RgbBlack, c, factor)
}

// BackdropColor returns the vertical gradient color for row y of height rows
func BackdropColor(y, height int) tcell.Color {
	if height <= 1 {
		return backdropStops[0]
	}
	t := float64(y) / float64(height-1)
	segments := len(backdropStops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		return backdropStops[segments]
	}
	return Lerp(backdropStops[i], backdropStops[i+1], pos-float64(i))
}
