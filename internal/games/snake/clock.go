package snake

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Clock schedules callbacks. The engine uses it for the acceleration
// window so tests can control time.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// realClock schedules on the runtime timer.
type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
