package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/birthday-surprise/constants"
)

// melodyNote is one note of a tune, Beats in quarter notes
type melodyNote struct {
	MIDI  int
	Beats float64
}

// birthdaySong is "Happy Birthday" in C major
var birthdaySong = []melodyNote{
	{67, 0.75}, {67, 0.25}, {69, 1}, {67, 1}, {72, 1}, {71, 2},
	{67, 0.75}, {67, 0.25}, {69, 1}, {67, 1}, {74, 1}, {72, 2},
	{67, 0.75}, {67, 0.25}, {79, 1}, {76, 1}, {72, 1}, {71, 1}, {69, 2},
	{77, 0.75}, {77, 0.25}, {76, 1}, {72, 1}, {74, 1}, {72, 2},
}

// MelodyDuration returns the total length of the birthday song
func MelodyDuration() time.Duration {
	var total time.Duration
	for _, n := range birthdaySong {
		total += noteLength(n)
	}
	return total
}

func noteLength(n melodyNote) time.Duration {
	return time.Duration(n.Beats * float64(constants.MelodyBeat))
}

// CreateMelody sequences the birthday song as soft square-wave notes
func CreateMelody(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(birthdaySong))
	for _, n := range birthdaySong {
		d := noteLength(n)
		lead := tone(NoteFreq(n.MIDI), WaveSine, d, constants.ChimeSoundAttack, constants.MelodyNoteRelease, rate)
		body := tone(NoteFreq(n.MIDI), WaveSquare, d, constants.ChimeSoundAttack, constants.MelodyNoteRelease, rate)
		notes = append(notes, beep.Mix(newVolume(lead, 0.8), newVolume(body, 0.1)))
	}

	return newVolume(beep.Seq(notes...), cfg.volume(SoundMelody))
}
