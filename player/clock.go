package player

import "time"

// TimerHandle is an owned, cancellable single-shot timer. Stop reports
// whether the call prevented the timer from firing.
type TimerHandle interface {
	Stop() bool
}

// Clock abstracts timer scheduling so playback tests can drive simulated
// time. Production code uses SystemClock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) TimerHandle
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) TimerHandle {
	return time.AfterFunc(d, f)
}

// SystemClock schedules on the runtime timer heap.
var SystemClock Clock = systemClock{}
