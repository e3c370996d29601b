package constants

import "time"

// Audio Engine Settings
const (
	// SampleRate is the default output sample rate
	SampleRate = 48000

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Chime Sound Timing (step advance)
const (
	ChimeSoundDuration = 400 * time.Millisecond
	ChimeSoundAttack   = 5 * time.Millisecond
	ChimeSoundRelease  = 350 * time.Millisecond
)

// Wind Sound Timing (matches the wind gust)
const (
	WindSoundAttack  = 250 * time.Millisecond
	WindSoundRelease = 500 * time.Millisecond
)

// Puff Sound Timing (one candle going out)
const (
	PuffSoundDuration = 120 * time.Millisecond
	PuffSoundAttack   = 10 * time.Millisecond
	PuffSoundRelease  = 90 * time.Millisecond
)

// Pop Sound Timing (firework burst)
const (
	PopSoundDuration = 180 * time.Millisecond
	PopSoundAttack   = 2 * time.Millisecond
	PopSoundRelease  = 160 * time.Millisecond
)

// Melody Timing
const (
	// MelodyBeat is the duration of one quarter note of the birthday song
	MelodyBeat = 400 * time.Millisecond

	// MelodyNoteRelease is the fade at the end of every note
	MelodyNoteRelease = 60 * time.Millisecond
)
