package scene

// Step is one scene of the greeting, in presentation order
type Step int

const (
	StepWelcome Step = iota
	StepDecorate
	StepCake
	StepCandles
	StepBlow
	StepCelebrate
)

var stepNames = [...]string{
	StepWelcome:   "welcome",
	StepDecorate:  "decorate",
	StepCake:      "cake",
	StepCandles:   "candles",
	StepBlow:      "blow",
	StepCelebrate: "celebrate",
}

// StepCount is the number of steps in the progression
const StepCount = len(stepNames)

// String returns the lowercase step name
func (s Step) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stepNames[s]
}

// Valid reports whether s is one of the defined steps
func (s Step) Valid() bool {
	return s >= StepWelcome && s <= StepCelebrate
}

// Next returns the following step, clamped at StepCelebrate
func (s Step) Next() Step {
	if s >= StepCelebrate {
		return StepCelebrate
	}
	return s + 1
}

// IsTerminal reports whether no step follows s
func (s Step) IsTerminal() bool {
	return s == StepCelebrate
}

// Index returns the zero-based position of s in the progression
func (s Step) Index() int {
	return int(s)
}

// Steps returns every step in order
func Steps() []Step {
	steps := make([]Step, StepCount)
	for i := range steps {
		steps[i] = Step(i)
	}
	return steps
}
