package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpEndpoints(t *testing.T) {
	assert.Equal(t, RgbBlack, Lerp(RgbBlack, RgbText, -1))
	assert.Equal(t, RgbText, Lerp(RgbBlack, RgbText, 2))

	r, g, b := Lerp(RgbBlack, RgbText, 0.5).RGB()
	assert.InDelta(t, 127, r, 1)
	assert.InDelta(t, 127, g, 1)
	assert.InDelta(t, 127, b, 1)
}

func TestBackdropGradient(t *testing.T) {
	assert.Equal(t, backdropStops[0], BackdropColor(0, 24))
	assert.Equal(t, backdropStops[len(backdropStops)-1], BackdropColor(23, 24))
	assert.Equal(t, backdropStops[0], BackdropColor(0, 1), "single row uses the top stop")

	// Red rises from indigo to pink
	prev, _, _ := BackdropColor(0, 24).RGB()
	for y := 1; y < 24; y++ {
		r, _, _ := BackdropColor(y, 24).RGB()
		assert.GreaterOrEqual(t, r, prev, "row %d", y)
		prev = r
	}
}

func TestBalloonPalette(t *testing.T) {
	assert.Len(t, BalloonColors, 8)
	r, g, b := BalloonColors[0].RGB()
	assert.Equal(t, [3]int32{0xFF, 0x6B, 0x6B}, [3]int32{r, g, b})
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 1}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 3))
	assert.False(t, r.Contains(6, 3))
	assert.False(t, r.Contains(2, 4))
	assert.False(t, Rect{}.Contains(0, 0), "empty rect contains nothing")

	l := NewLayout()
	l.SetButtons(r, Rect{})
	assert.Equal(t, r, l.NextButton())
	assert.True(t, l.RestartButton().Empty())
}
