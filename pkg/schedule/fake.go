package schedule

import "time"

// Fake is a virtual-time Scheduler for tests. Nothing happens until Advance
// is called; due callbacks then run synchronously in time order.
type Fake struct {
	now   time.Duration
	seq   int
	tasks []*fakeTask
}

// NewFake returns a Fake at virtual time zero.
func NewFake() *Fake {
	return &Fake{}
}

// Now returns the virtual time elapsed since NewFake.
func (f *Fake) Now() time.Duration {
	return f.now
}

// Every implements Scheduler.
func (f *Fake) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return f.add(&fakeTask{next: f.now + interval, interval: interval, fn: fn})
}

// After implements Scheduler.
func (f *Fake) After(delay time.Duration, fn func()) Task {
	return f.add(&fakeTask{next: f.now + delay, fn: fn})
}

// Advance moves virtual time forward by d, running every callback that falls
// due on the way. Callbacks may schedule or cancel other tasks.
func (f *Fake) Advance(d time.Duration) {
	target := f.now + d
	for {
		t := f.nextDue(target)
		if t == nil {
			break
		}
		f.now = t.next
		if t.interval > 0 {
			t.next += t.interval
		} else {
			t.done = true
		}
		t.fn()
	}
	f.now = target
	f.compact()
}

// Pending returns the number of live tasks.
func (f *Fake) Pending() int {
	n := 0
	for _, t := range f.tasks {
		if t.live() {
			n++
		}
	}
	return n
}

func (f *Fake) add(t *fakeTask) *fakeTask {
	f.seq++
	t.seq = f.seq
	f.tasks = append(f.tasks, t)
	return t
}

func (f *Fake) nextDue(target time.Duration) *fakeTask {
	var best *fakeTask
	for _, t := range f.tasks {
		if !t.live() || t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (f *Fake) compact() {
	live := f.tasks[:0]
	for _, t := range f.tasks {
		if t.live() {
			live = append(live, t)
		}
	}
	f.tasks = live
}

type fakeTask struct {
	seq      int
	next     time.Duration
	interval time.Duration
	fn       func()
	canceled bool
	done     bool

	// Cancels counts every Cancel call, including repeats.
	cancels int
}

func (t *fakeTask) Cancel() {
	t.cancels++
	t.canceled = true
}

func (t *fakeTask) Canceled() bool {
	return t.canceled
}

func (t *fakeTask) live() bool {
	return !t.canceled && !t.done
}

// CancelCount reports how many times Cancel was called on a task created by
// a Fake. It returns -1 for tasks from other schedulers.
func CancelCount(t Task) int {
	ft, ok := t.(*fakeTask)
	if !ok {
		return -1
	}
	return ft.cancels
}
