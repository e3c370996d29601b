package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepOrder(t *testing.T) {
	want := []string{"welcome", "decorate", "cake", "candles", "blow", "celebrate"}

	steps := Steps()
	if assert.Len(t, steps, len(want)) {
		for i, s := range steps {
			assert.Equal(t, want[i], s.String())
			assert.Equal(t, i, s.Index())
		}
	}
}

func TestStepNextClamps(t *testing.T) {
	assert.Equal(t, StepDecorate, StepWelcome.Next())
	assert.Equal(t, StepCelebrate, StepBlow.Next())
	assert.Equal(t, StepCelebrate, StepCelebrate.Next())

	assert.True(t, StepCelebrate.IsTerminal())
	assert.False(t, StepBlow.IsTerminal())
}

func TestStepInvalid(t *testing.T) {
	assert.False(t, Step(-1).Valid())
	assert.False(t, Step(StepCount).Valid())
	assert.Equal(t, "unknown", Step(42).String())
}
