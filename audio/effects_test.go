package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the number of samples and the peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
			peak = math.Max(peak, math.Abs(buf[j][1]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never drained")
	return 0, 0
}

// TestOscillatorRange verifies every wave shape stays within [-1, 1] for its duration
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: peak %f out of range", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("Expected no error, got: %v", osc.Err())
		}
	}
}

// TestEnvelopeShape verifies the envelope starts silent and ends silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Attack should start at 0, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Sustain should be full volume, got %f", samples[50][0])
	}
	if samples[99][0] > 0.1 {
		t.Errorf("Release should end near 0, got %f", samples[99][0])
	}
}

// TestSoundEffectsDrain verifies every sound effect is finite and bounded
func TestSoundEffectsDrain(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	rate := beep.SampleRate(cfg.SampleRate)

	for s := SoundType(0); s < soundTypeCount; s++ {
		streamer := GetSoundEffect(s, cfg)
		if streamer == nil {
			t.Fatalf("%s: nil streamer", s)
		}
		n, peak := drain(t, streamer)
		if n == 0 {
			t.Errorf("%s: produced no samples", s)
		}
		if peak > 1.0 {
			t.Errorf("%s: peak %f exceeds 1.0", s, peak)
		}
		if s == SoundWind && n != rate.N(1000*time.Millisecond) {
			t.Errorf("Wind should last the gust, got %d samples", n)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Unknown sound type should return nil")
	}
}

// TestMelody verifies the song length and note range
func TestMelody(t *testing.T) {
	var beats float64
	for _, n := range birthdaySong {
		beats += n.Beats
		if NoteFreq(n.MIDI) <= 0 {
			t.Errorf("Note %d has no frequency", n.MIDI)
		}
	}
	if beats != 25 {
		t.Errorf("Expected 25 beats, got %f", beats)
	}
	if MelodyDuration() != 10*time.Second {
		t.Errorf("Expected 10s melody at 400ms per beat, got %v", MelodyDuration())
	}
}

// TestNoteFreq verifies equal temperament reference points
func TestNoteFreq(t *testing.T) {
	cases := []struct {
		midi int
		want float64
	}{
		{69, 440},
		{81, 880},
		{60, 261.63},
	}
	for _, c := range cases {
		if got := NoteFreq(c.midi); math.Abs(got-c.want) > 0.01 {
			t.Errorf("NoteFreq(%d) = %f, want %f", c.midi, got, c.want)
		}
	}
	if NoteFreq(-1) != 0 || NoteFreq(128) != 0 {
		t.Error("Out of range notes should be 0")
	}
}
