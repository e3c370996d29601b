package constants

// UI Layout Constants
const (
	// ButtonPadding is the horizontal padding inside a button
	ButtonPadding = 2

	// TitleRow and SubtitleRow are offsets from the top of the screen
	TitleRow    = 2
	SubtitleRow = 4

	// ButtonBottomMargin is the distance between the primary button and the step indicator
	ButtonBottomMargin = 5

	// IndicatorBottomMargin is the row offset of the step indicator from the bottom
	IndicatorBottomMargin = 2

	// MuteIndicatorText is drawn in the top-right corner while muted
	MuteIndicatorText = " MUTED "
)

// Glyphs
const (
	GlyphSparkle     = '✦'
	GlyphSparkleDim  = '·'
	GlyphFlame       = '▲'
	GlyphFlameFlick  = '♦'
	GlyphSmoke       = '~'
	GlyphWick        = '╵'
	GlyphCandle      = '█'
	GlyphWind        = '≈'
	GlyphConfetti    = '▪'
	GlyphSpark       = '*'
	GlyphHeart       = '♥'
	GlyphNote        = '♪'
	GlyphDotActive   = '●'
	GlyphDotInactive = '○'
)

// Decoration Glyphs
const (
	GlyphBalloon       = '◉'
	GlyphBalloonString = '│'
	GlyphFrosting      = '░'
	GlyphCream         = '-'
	GlyphPlate         = '▀'
)

// Cake Geometry
const (
	// CakeWidth is the cake width in cells, candles are spaced evenly across it
	CakeWidth = 21

	// CakeSpongeRows is the number of sponge rows between frosting and plate
	CakeSpongeRows = 2

	// CandleHeight is the candle body height in rows, excluding wick and flame
	CandleHeight = 2

	// SmokeRise is how many rows smoke climbs above the wick before fading
	SmokeRise = 3
)

// Effect Geometry
const (
	// WindStreaks is the number of wind streak lines
	WindStreaks = 10

	// WindStreakLength is the length of one streak in cells
	WindStreakLength = 6

	// FireworkRadiusX and FireworkRadiusY are the burst radii, terminal cells are ~2:1
	FireworkRadiusX = 8.0
	FireworkRadiusY = 4.0

	// ConfettiMaxDelay spreads confetti start times
	ConfettiMaxDelaySeconds = 3.0
)
