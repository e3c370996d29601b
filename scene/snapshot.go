package scene

import (
	"time"

	"github.com/lixenwraith/birthday-surprise/constants"
)

// TransitionState holds the flags that overlap during the blow sequence
// WindActive implies IsBlowing; IsBlowing and CelebrationActive never hold together
type TransitionState struct {
	IsBlowing         bool
	WindActive        bool
	CelebrationActive bool
}

// Snapshot is the read-only view of the controller consumed by renderers and audio
type Snapshot struct {
	Step Step
	TransitionState

	// Generation changes on every reset; timers from older generations are inert
	Generation uint64

	// Transition timestamps for animations relative to state changes
	StepEnteredAt        time.Time
	BlowStartedAt        time.Time
	CelebrationStartedAt time.Time
}

// IsInitial reports whether the visible state equals the session start state
func (s Snapshot) IsInitial() bool {
	return s.Step == StepWelcome && s.TransitionState == TransitionState{}
}

// CandlesVisible reports whether candles stand on the cake
func (s Snapshot) CandlesVisible() bool {
	return s.Step == StepCandles || s.Step == StepBlow
}

// CakeVisible reports whether the cake is on screen
func (s Snapshot) CakeVisible() bool {
	return s.Step >= StepCake
}

// CandleLit reports whether candle i still burns at now
// During the blow sequence candle i goes out i*CandleStagger after the sequence started
func (s Snapshot) CandleLit(i int, now time.Time) bool {
	if !s.CandlesVisible() {
		return false
	}
	if !s.IsBlowing {
		return true
	}
	return now.Sub(s.BlowStartedAt) < candleOutOffset(i)
}

// CandleOutFor returns how long candle i has been out, false while it burns or is hidden
func (s Snapshot) CandleOutFor(i int, now time.Time) (time.Duration, bool) {
	if !s.CandlesVisible() || !s.IsBlowing {
		return 0, false
	}
	out := now.Sub(s.BlowStartedAt) - candleOutOffset(i)
	if out < 0 {
		return 0, false
	}
	return out, true
}

// NextEnabled reports whether the "next" control accepts input
func (s Snapshot) NextEnabled() bool {
	return !s.Step.IsTerminal() && !s.IsBlowing
}

// RestartVisible reports whether the "restart" control is shown
func (s Snapshot) RestartVisible() bool {
	return s.Step == StepCelebrate
}

// SinceStep returns the time spent in the current step
func (s Snapshot) SinceStep(now time.Time) time.Duration {
	return nonNegative(now.Sub(s.StepEnteredAt))
}

// SinceCelebration returns the time since the celebration started, zero before it
func (s Snapshot) SinceCelebration(now time.Time) time.Duration {
	if s.CelebrationStartedAt.IsZero() {
		return 0
	}
	return nonNegative(now.Sub(s.CelebrationStartedAt))
}

func candleOutOffset(i int) time.Duration {
	return time.Duration(i) * constants.CandleStagger
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
