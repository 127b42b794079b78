package sensors

import (
	"time"

	"github.com/samber/lo"
)

// MovingAverage smooths a noisy signal over a fixed window of samples.
type MovingAverage struct {
	window  int
	samples []float64
}

func NewMovingAverage(window int) *MovingAverage {
	if window < 1 {
		window = 1
	}
	return &MovingAverage{window: window}
}

// Add folds a sample into the window and returns the new average.
func (a *MovingAverage) Add(sample float64) float64 {
	a.samples = append(a.samples, sample)
	if len(a.samples) > a.window {
		a.samples = a.samples[1:]
	}
	return a.Value()
}

// Value returns the average over the current window, zero when empty.
func (a *MovingAverage) Value() float64 {
	if len(a.samples) == 0 {
		return 0
	}
	return lo.Sum(a.samples) / float64(len(a.samples))
}

// Debouncer accepts at most one event per quiet interval.
type Debouncer struct {
	quiet time.Duration
	last  time.Time
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Accept reports whether the event at t passes the debounce, and records
// it when it does.
func (d *Debouncer) Accept(t time.Time) bool {
	if !d.last.IsZero() && t.Sub(d.last) < d.quiet {
		return false
	}
	d.last = t
	return true
}
