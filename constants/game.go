package constants

import "time"

// Frame Loop Timing Constants
const (
	// FrameUpdateInterval is the default rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 10
	MaxFPS = 240
)

// Blow Sequence Timing Constants
// WindDuration < CandlesOutDelay is enforced at compile time by package scene
const (
	// WindDuration is how long the wind gust plays after the user blows
	WindDuration = 1000 * time.Millisecond

	// CandlesOutDelay is measured from the start of the blow sequence
	// Every candle must be out before it elapses
	CandlesOutDelay = 1500 * time.Millisecond

	// CelebrationDuration is measured from the start of the celebration
	CelebrationDuration = 15 * time.Second
)

// Candle Constants
const (
	// CandleCount is the number of candles on the cake
	CandleCount = 5

	// CandleStagger is the per-candle extinguish offset from the start of the blow sequence
	CandleStagger = 150 * time.Millisecond

	// SmokeDuration is how long smoke rises from a candle after its flame goes out
	SmokeDuration = 2 * time.Second

	// FlameFlickerInterval is the period of the flame flicker animation
	FlameFlickerInterval = 200 * time.Millisecond
)

// Celebration Effect Constants
const (
	// FireworkCycle is the interval between firework re-bursts
	FireworkCycle = 2 * time.Second

	// FireworkGap is the dark window at the start of every firework cycle
	FireworkGap = 100 * time.Millisecond

	// FireworkBurstDuration is how long a single burst expands and fades
	FireworkBurstDuration = 1500 * time.Millisecond

	// FireworkStagger is the launch offset between consecutive fireworks
	FireworkStagger = 300 * time.Millisecond

	// FireworkParticles is the number of sparks per burst
	FireworkParticles = 12

	// ConfettiPieces is the target number of live confetti pieces while celebrating
	ConfettiPieces = 400

	// ConfettiMinSpeed and ConfettiMaxSpeed bound the fall speed in rows per second
	ConfettiMinSpeed = 4.0
	ConfettiMaxSpeed = 12.0
)

// Decoration Constants
const (
	// BalloonCount is the number of balloons shown after the welcome step
	BalloonCount = 8

	// BalloonMinRise and BalloonRiseJitter define the rise period of one balloon
	BalloonMinRise    = 15 * time.Second
	BalloonRiseJitter = 10 * time.Second

	// BalloonDelay is the launch offset between consecutive balloons
	BalloonDelay = 1500 * time.Millisecond

	// SparkleCount is the number of background sparkles
	SparkleCount = 25

	// SparklePeriod is the twinkle period of a background sparkle
	SparklePeriod = 2 * time.Second

	// HeartCount and NoteCount are the floating hearts and musical notes while celebrating
	HeartCount = 10
	NoteCount  = 6

	// HeartRise and NoteRise are the float periods of hearts and notes
	HeartRise = 8 * time.Second
	NoteRise  = 4 * time.Second
)
