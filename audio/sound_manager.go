package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/scene"
)

// fireworkPops is the number of pops played when the celebration opens
const fireworkPops = 6

// SoundManager plays the scene's sound effects through the beep speaker
// Every operation is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	logger      *zap.Logger
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager, a nil config uses defaults
func NewSoundManager(cfg *AudioConfig, logger *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		cfg:    cfg,
		logger: logger.Named("audio"),
		mixer:  &beep.Mixer{},
	}
}

// Initialize sets up the speaker, a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("speaker initialized", zap.Int("sample_rate", sm.cfg.SampleRate))
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// IsInitialized reports whether the speaker is running
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted mutes or unmutes, muting cuts sounds already playing
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted {
		sm.clearLocked()
	}
}

// ToggleMuted flips the mute state and returns the new state
func (sm *SoundManager) ToggleMuted() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()

	sm.SetMuted(muted)
	return muted
}

// IsMuted reports whether sounds are suppressed
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts a sound after delay
func (sm *SoundManager) Play(sound SoundType, delay time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := GetSoundEffect(sound, sm.cfg)
	if s == nil {
		return
	}
	if delay > 0 {
		rate := beep.SampleRate(sm.cfg.SampleRate)
		s = beep.Seq(beep.Silence(rate.N(delay)), s)
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// OnSnapshot plays the cues of the transition from prev to next
func (sm *SoundManager) OnSnapshot(prev, next scene.Snapshot) {
	if next.Generation != prev.Generation {
		sm.mu.Lock()
		sm.clearLocked()
		sm.mu.Unlock()
	}

	for _, cue := range Cues(prev, next) {
		sm.logger.Debug("cue", zap.Stringer("sound", cue.Sound), zap.Duration("delay", cue.Delay))
		sm.Play(cue.Sound, cue.Delay)
	}
}

// clearLocked drops every playing sound, sm.mu must be held
func (sm *SoundManager) clearLocked() {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// Cues returns the sounds triggered by the transition from prev to next
// A reset produces no cues
func Cues(prev, next scene.Snapshot) []Cue {
	if next.Generation != prev.Generation {
		return nil
	}

	var cues []Cue
	if next.Step > prev.Step && next.Step != scene.StepCelebrate {
		cues = append(cues, Cue{Sound: SoundChime})
	}

	if next.WindActive && !prev.WindActive {
		cues = append(cues, Cue{Sound: SoundWind})
		for i := 0; i < constants.CandleCount; i++ {
			cues = append(cues, Cue{Sound: SoundPuff, Delay: time.Duration(i) * constants.CandleStagger})
		}
	}

	if next.CelebrationActive && !prev.CelebrationActive {
		cues = append(cues, Cue{Sound: SoundMelody})
		for k := 0; k < fireworkPops; k++ {
			cues = append(cues, Cue{Sound: SoundPop, Delay: constants.FireworkGap + time.Duration(k)*constants.FireworkStagger})
		}
	}
	return cues
}
