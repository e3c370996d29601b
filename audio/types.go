package audio

import "time"

// SoundType represents different sound effects
type SoundType int

const (
	SoundChime  SoundType = iota // Step advance
	SoundWind                    // Wind gust while blowing
	SoundPuff                    // One candle going out
	SoundPop                     // Firework burst
	SoundMelody                  // Birthday song at celebration start
	soundTypeCount
)

var soundNames = [...]string{
	SoundChime:  "chime",
	SoundWind:   "wind",
	SoundPuff:   "puff",
	SoundPop:    "pop",
	SoundMelody: "melody",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Cue is a sound scheduled relative to the state change that triggered it
type Cue struct {
	Sound SoundType
	Delay time.Duration
}
