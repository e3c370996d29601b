package audio

import "github.com/lixenwraith/birthday-surprise/constants"

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.6,
		SampleRate:   constants.SampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundChime:  0.5,
			SoundWind:   0.4,
			SoundPuff:   0.5,
			SoundPop:    0.45,
			SoundMelody: 0.6,
		},
	}
}

// volume returns the effective volume of a sound
func (c *AudioConfig) volume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
