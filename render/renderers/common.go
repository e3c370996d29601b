package renderers

import (
	"math"
	"time"
)

// seconds converts a duration to fractional seconds
func seconds(d time.Duration) float64 {
	return d.Seconds()
}

// cycle returns the position of t inside a repeating period as a fraction in [0,1)
func cycle(t, period time.Duration, offset float64) float64 {
	if period <= 0 {
		return 0
	}
	f := float64(t%period)/float64(period) + offset
	return f - math.Floor(f)
}

// wallClock maps a frame time to a monotonically growing duration used for ambient loops
func wallClock(now time.Time) time.Duration {
	return time.Duration(now.UnixNano())
}
