// Package schedule abstracts repeating and one-shot timers so state machines
// driven by time can be tested without a wall clock.
//
// Callbacks never run on a timer goroutine. The real Clock queues them on a
// channel that the owning event loop drains; Fake runs them synchronously
// from Advance.
package schedule

import "time"

// Task is a scheduled callback. Cancel stops future runs and may be called
// any number of times.
type Task interface {
	Cancel()
	Canceled() bool
}

// Scheduler creates tasks.
type Scheduler interface {
	// Every runs fn once per interval until the task is canceled.
	Every(interval time.Duration, fn func()) Task
	// After runs fn once after delay unless the task is canceled first.
	After(delay time.Duration, fn func()) Task
}
