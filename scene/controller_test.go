package scene

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/birthday-surprise/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func startController(t *testing.T) (*Controller, *engine.MockTimeProvider, context.Context) {
	t.Helper()
	clock := engine.NewMockTimeProvider(testEpoch)
	c := NewController(clock, zaptest.NewLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	t.Cleanup(func() {
		c.Stop()
		cancel()
		<-done
	})
	return c, clock, ctx
}

// step advances the mock clock and waits for the queued timer effects to apply
// The clock moves in small increments so each fired stage is applied before the next is due
func step(t *testing.T, c *Controller, clock *engine.MockTimeProvider, ctx context.Context, d time.Duration) Snapshot {
	t.Helper()
	clock.Advance(d)
	snap, err := c.Sync(ctx)
	require.NoError(t, err)
	return snap
}

func TestControllerInitialSnapshot(t *testing.T) {
	c := NewController(engine.NewMockTimeProvider(testEpoch), nil)
	assert.True(t, c.Snapshot().IsInitial())
}

func TestControllerBlowSequence(t *testing.T) {
	c, clock, ctx := startController(t)

	for i := 0; i < 4; i++ {
		_, err := c.AdvanceSync(ctx)
		require.NoError(t, err)
	}
	require.Equal(t, StepBlow, c.Snapshot().Step)

	snap, err := c.AdvanceSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, TransitionState{IsBlowing: true, WindActive: true}, snap.TransitionState)

	snap = step(t, c, clock, ctx, d1)
	assert.Equal(t, TransitionState{IsBlowing: true}, snap.TransitionState)

	snap = step(t, c, clock, ctx, d2-d1)
	assert.Equal(t, StepCelebrate, snap.Step)
	assert.Equal(t, TransitionState{CelebrationActive: true}, snap.TransitionState)

	snap = step(t, c, clock, ctx, d3)
	assert.Equal(t, StepCelebrate, snap.Step)
	assert.Equal(t, TransitionState{}, snap.TransitionState)

	assert.Equal(t, snap, c.Snapshot(), "published snapshot matches machine state")
}

func TestControllerFireAndForget(t *testing.T) {
	c, _, ctx := startController(t)

	c.Advance()
	c.Advance()
	snap, err := c.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepCake, snap.Step)

	c.Reset()
	snap, err = c.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, snap.IsInitial())
}

func TestControllerResetMidSequence(t *testing.T) {
	c, clock, ctx := startController(t)

	for i := 0; i < 5; i++ {
		c.Advance()
	}
	_, err := c.Sync(ctx)
	require.NoError(t, err)

	step(t, c, clock, ctx, d2+time.Millisecond)
	require.True(t, c.Snapshot().CelebrationActive)

	snap, err := c.ResetSync(ctx)
	require.NoError(t, err)
	assert.True(t, snap.IsInitial())

	snap = step(t, c, clock, ctx, d3)
	assert.True(t, snap.IsInitial(), "auto-stop from the old sequence must not apply")
}

func TestControllerSubscribe(t *testing.T) {
	c, _, ctx := startController(t)

	updates, cancel := c.Subscribe()
	defer cancel()

	c.Advance()
	c.Advance()
	c.Advance()
	_, err := c.Sync(ctx)
	require.NoError(t, err)

	select {
	case snap := <-updates:
		assert.Equal(t, StepCandles, snap.Step, "slow subscriber sees the latest state")
	case <-ctx.Done():
		t.Fatal("no snapshot delivered")
	}

	cancel()
	_, open := <-updates
	assert.False(t, open, "cancel closes the channel")
	assert.NotPanics(t, cancel, "cancel is idempotent")
}

func TestControllerStop(t *testing.T) {
	clock := engine.NewMockTimeProvider(testEpoch)
	c := NewController(clock, nil)

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	_, err := c.AdvanceSync(context.Background())
	require.NoError(t, err)

	c.Stop()
	require.NoError(t, <-done)

	_, err = c.AdvanceSync(context.Background())
	assert.ErrorIs(t, err, ErrStopped)
	assert.NotPanics(t, c.Stop)
	assert.NotPanics(t, c.Advance, "posting after stop does not block")
}

func TestControllerRunTwice(t *testing.T) {
	c, _, ctx := startController(t)

	_, err := c.Sync(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Run(ctx), ErrAlreadyRunning)
}

func TestControllerContextCancel(t *testing.T) {
	c := NewController(engine.NewMockTimeProvider(testEpoch), nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
}

// TestControllerRealClock runs one short wall-clock sequence to exercise timer queuing
func TestControllerRealClock(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock test")
	}
	c := NewController(engine.NewTimeProvider(), nil)
	ctx, cancel := context.WithTimeout(context.Background(), d2+5*time.Second)
	defer cancel()
	go c.Run(ctx)
	defer c.Stop()

	updates, unsubscribe := c.Subscribe()
	defer unsubscribe()

	for i := 0; i < 5; i++ {
		c.Advance()
	}

	for {
		select {
		case snap := <-updates:
			if snap.Step == StepCelebrate {
				assert.True(t, snap.CelebrationActive)
				assert.False(t, snap.IsBlowing)
				return
			}
		case <-ctx.Done():
			t.Fatal("celebration never started")
		}
	}
}
