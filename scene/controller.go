package scene

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/birthday-surprise/engine"
	"go.uber.org/zap"
)

var (
	// ErrStopped is returned by synchronous calls after the controller stopped
	ErrStopped = errors.New("scene: controller stopped")

	// ErrAlreadyRunning is returned when Run is called twice
	ErrAlreadyRunning = errors.New("scene: controller already running")
)

const mailboxSize = 64

// Controller owns a Machine on a single goroutine
// User commands and timer firings are queued on one mailbox and applied in order
// Snapshots are published lock-free for the render loop and fanned out to subscribers
type Controller struct {
	machine *Machine
	logger  *zap.Logger

	mailbox chan func()
	current atomic.Pointer[Snapshot]

	subsMu sync.Mutex
	subs   map[chan Snapshot]struct{}

	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// queuedScheduler defers timer callbacks onto the controller mailbox
type queuedScheduler struct {
	engine.Scheduler
	post func(func())
}

func (q queuedScheduler) AfterFunc(d time.Duration, f func()) engine.Timer {
	return q.Scheduler.AfterFunc(d, func() { q.post(f) })
}

// NewController creates a controller in the initial state, call Run to start processing
func NewController(sched engine.Scheduler, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		logger:   logger,
		mailbox:  make(chan func(), mailboxSize),
		subs:     make(map[chan Snapshot]struct{}),
		stopChan: make(chan struct{}),
	}
	c.machine = NewMachine(queuedScheduler{Scheduler: sched, post: c.post}, logger)
	c.machine.OnChange(c.publish)

	initial := c.machine.Snapshot()
	c.current.Store(&initial)
	return c
}

// Run processes the mailbox until ctx is cancelled or Stop is called
func (c *Controller) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	c.logger.Debug("scene controller started")
	defer c.logger.Debug("scene controller stopped")

	for {
		select {
		case <-ctx.Done():
			c.Stop()
			return ctx.Err()
		case <-c.stopChan:
			return nil
		case fn := <-c.mailbox:
			fn()
		}
	}
}

// Stop halts Run and unblocks pending posts
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

// Advance queues an advance of the step or the start of the blow sequence
func (c *Controller) Advance() {
	c.post(c.machine.Advance)
}

// Reset queues a reset to the initial state
func (c *Controller) Reset() {
	c.post(c.machine.Reset)
}

// AdvanceSync applies an advance and returns the resulting snapshot
func (c *Controller) AdvanceSync(ctx context.Context) (Snapshot, error) {
	return c.call(ctx, c.machine.Advance)
}

// ResetSync applies a reset and returns the resulting snapshot
func (c *Controller) ResetSync(ctx context.Context) (Snapshot, error) {
	return c.call(ctx, c.machine.Reset)
}

// Sync waits until everything queued before it has been applied
func (c *Controller) Sync(ctx context.Context) (Snapshot, error) {
	return c.call(ctx, func() {})
}

// Snapshot returns the most recently published state
func (c *Controller) Snapshot() Snapshot {
	return *c.current.Load()
}

// Subscribe returns a channel receiving the latest snapshot after each change
// The channel holds one value; a slow reader sees only the newest state
// The returned cancel func unregisters and closes the channel
func (c *Controller) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	c.subsMu.Lock()
	c.subs[ch] = struct{}{}
	c.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.subsMu.Lock()
			delete(c.subs, ch)
			c.subsMu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// post enqueues fn unless the controller stopped
func (c *Controller) post(fn func()) {
	select {
	case c.mailbox <- fn:
	case <-c.stopChan:
	}
}

func (c *Controller) call(ctx context.Context, op func()) (Snapshot, error) {
	done := make(chan Snapshot, 1)
	fn := func() {
		op()
		done <- c.machine.Snapshot()
	}

	select {
	case c.mailbox <- fn:
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-c.stopChan:
		return Snapshot{}, ErrStopped
	}

	select {
	case snap := <-done:
		return snap, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-c.stopChan:
		return Snapshot{}, ErrStopped
	}
}

// publish runs on the controller goroutine after every mutation
func (c *Controller) publish(snap Snapshot) {
	c.current.Store(&snap)

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for ch := range c.subs {
		select {
		case ch <- snap:
		default:
			// Replace the stale value, only this goroutine sends
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
