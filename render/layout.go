package render

import "sync"

// Rect is a screen-space rectangle, W and H in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Layout holds the clickable regions drawn in the last frame
// Written by the caption renderer on the frame loop, read by the input handler on the event goroutine
type Layout struct {
	mu      sync.RWMutex
	next    Rect
	restart Rect
}

// NewLayout returns an empty layout
func NewLayout() *Layout {
	return &Layout{}
}

// SetButtons records the primary and restart button rectangles, empty when hidden
func (l *Layout) SetButtons(next, restart Rect) {
	l.mu.Lock()
	l.next = next
	l.restart = restart
	l.mu.Unlock()
}

// NextButton returns the primary button rectangle
func (l *Layout) NextButton() Rect {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.next
}

// RestartButton returns the restart button rectangle
func (l *Layout) RestartButton() Rect {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.restart
}
