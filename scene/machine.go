package scene

import (
	"time"

	"github.com/lixenwraith/birthday-surprise/constants"
	"github.com/lixenwraith/birthday-surprise/engine"
	"go.uber.org/zap"
)

// Blow sequence ordering, checked at compile time: a negative value overflows uint64
const (
	_ = uint64(constants.CandlesOutDelay - constants.WindDuration - 1)
	_ = uint64(constants.CandlesOutDelay - (constants.CandleCount-1)*constants.CandleStagger - 1)
	_ = uint64(constants.CelebrationDuration - 1)
)

// stage identifies a deferred step of the blow sequence
type stage int

const (
	stageWindEnd stage = iota
	stageCelebrate
	stageAutoStop
)

func (st stage) String() string {
	switch st {
	case stageWindEnd:
		return "wind-end"
	case stageCelebrate:
		return "celebrate"
	case stageAutoStop:
		return "auto-stop"
	default:
		return "unknown"
	}
}

// Machine is the authoritative step and transition state
// Not safe for concurrent use: every call, including timer callbacks, must be serialized
// by the owner (Controller does this; tests drive it from one goroutine with a mock clock)
type Machine struct {
	sched    engine.Scheduler
	logger   *zap.Logger
	snap     Snapshot
	pending  []engine.Timer
	onChange func(Snapshot)
}

// NewMachine creates a machine in the initial state
func NewMachine(sched engine.Scheduler, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Machine{
		sched:  sched,
		logger: logger,
	}
	m.snap = Snapshot{Step: StepWelcome, StepEnteredAt: sched.Now()}
	return m
}

// OnChange registers fn to receive every new snapshot after a mutation
func (m *Machine) OnChange(fn func(Snapshot)) {
	m.onChange = fn
}

// Snapshot returns the current state
func (m *Machine) Snapshot() Snapshot {
	return m.snap
}

// Advance moves to the next step, or starts the blow sequence at StepBlow
func (m *Machine) Advance() {
	switch {
	case m.snap.Step == StepBlow:
		if m.snap.IsBlowing {
			m.logger.Debug("advance ignored, blow sequence in progress",
				zap.Uint64("generation", m.snap.Generation))
			return
		}
		m.beginBlowSequence()

	case m.snap.Step.IsTerminal():
		m.logger.Debug("advance ignored at terminal step")

	default:
		from := m.snap.Step
		m.snap.Step = from.Next()
		m.snap.StepEnteredAt = m.sched.Now()
		m.logTransition(from, m.snap.Step)
		m.notify()
	}
}

// Reset cancels any blow sequence in flight and restores the initial state
func (m *Machine) Reset() {
	for _, t := range m.pending {
		t.Stop()
	}
	m.pending = m.pending[:0]

	from := m.snap.Step
	m.snap = Snapshot{
		Step:          StepWelcome,
		Generation:    m.snap.Generation + 1,
		StepEnteredAt: m.sched.Now(),
	}
	m.logger.Info("scene reset",
		zap.Stringer("from", from),
		zap.Uint64("generation", m.snap.Generation))
	m.notify()
}

// beginBlowSequence raises the wind and schedules the rest of the sequence
// Both timers are measured from now, so stage ordering follows from WindDuration < CandlesOutDelay
func (m *Machine) beginBlowSequence() {
	now := m.sched.Now()
	m.snap.IsBlowing = true
	m.snap.WindActive = true
	m.snap.BlowStartedAt = now

	m.schedule(constants.WindDuration, stageWindEnd)
	m.schedule(constants.CandlesOutDelay, stageCelebrate)

	m.logger.Info("blow sequence started", zap.Uint64("generation", m.snap.Generation))
	m.notify()
}

// schedule arms a single-shot timer bound to the current generation
func (m *Machine) schedule(d time.Duration, st stage) {
	gen := m.snap.Generation
	t := m.sched.AfterFunc(d, func() { m.fire(gen, st) })
	m.pending = append(m.pending, t)
}

// fire applies a stage unless its generation was superseded
func (m *Machine) fire(gen uint64, st stage) {
	if gen != m.snap.Generation {
		m.logger.Debug("stale timer dropped",
			zap.Stringer("stage", st),
			zap.Uint64("timer_generation", gen),
			zap.Uint64("generation", m.snap.Generation))
		return
	}

	switch st {
	case stageWindEnd:
		if !m.snap.WindActive {
			return
		}
		m.snap.WindActive = false
		m.logger.Debug("wind ended", zap.Uint64("generation", gen))

	case stageCelebrate:
		if !m.snap.IsBlowing {
			return
		}
		now := m.sched.Now()
		from := m.snap.Step
		m.snap.Step = StepCelebrate
		m.snap.StepEnteredAt = now
		m.snap.IsBlowing = false
		m.snap.WindActive = false
		m.snap.CelebrationActive = true
		m.snap.CelebrationStartedAt = now
		m.schedule(constants.CelebrationDuration, stageAutoStop)
		m.logTransition(from, m.snap.Step)

	case stageAutoStop:
		if !m.snap.CelebrationActive {
			return
		}
		m.snap.CelebrationActive = false
		m.logger.Info("celebration ended", zap.Uint64("generation", gen))
	}

	m.notify()
}

func (m *Machine) logTransition(from, to Step) {
	m.logger.Info("scene transition",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Uint64("generation", m.snap.Generation))
}

func (m *Machine) notify() {
	if m.onChange != nil {
		m.onChange(m.snap)
	}
}
