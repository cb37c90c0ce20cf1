package widget

import (
	"time"

	"github.com/genricoloni/onair/internal/domain"
)

// RealClock schedules callbacks with time.AfterFunc
type RealClock struct{}

// NewRealClock returns the wall clock
func NewRealClock() RealClock {
	return RealClock{}
}

// AfterFunc calls f in its own goroutine after d
func (RealClock) AfterFunc(d time.Duration, f func()) domain.Timer {
	return time.AfterFunc(d, f)
}
