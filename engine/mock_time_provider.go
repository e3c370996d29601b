package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Timers fire synchronously on the goroutine calling Advance
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         uint64
}

type mockTimer struct {
	owner    *MockTimeProvider
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool // fired or stopped
}

// Stop cancels the timer if it has not fired yet
func (t *mockTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// AfterFunc registers f to run once the mocked time reaches now+d
func (m *MockTimeProvider) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	t := &mockTimer{
		owner:    m,
		deadline: m.currentTime.Add(d),
		seq:      m.seq,
		fn:       f,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d, firing due timers in deadline order
// Ties fire in scheduling order. Now() reports each timer's deadline while its callback runs
// Timers scheduled by a callback fire within the same call if they fall due
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.currentTime.Add(d)

	for {
		next := m.nextDueLocked(target)
		if next == nil {
			break
		}
		next.done = true
		if next.deadline.After(m.currentTime) {
			m.currentTime = next.deadline
		}

		m.mu.Unlock()
		next.fn()
		m.mu.Lock()
	}

	m.currentTime = target
	m.compactLocked()
	m.mu.Unlock()
}

// Pending returns the number of timers that have neither fired nor been stopped
func (m *MockTimeProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, t := range m.timers {
		if !t.done {
			count++
		}
	}
	return count
}

// nextDueLocked returns the earliest live timer with deadline <= target
func (m *MockTimeProvider) nextDueLocked(target time.Time) *mockTimer {
	var next *mockTimer
	for _, t := range m.timers {
		if t.done || t.deadline.After(target) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) ||
			(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// compactLocked drops finished timers, keeping live ones in scheduling order
func (m *MockTimeProvider) compactLocked() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}
