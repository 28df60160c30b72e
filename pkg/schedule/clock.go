package schedule

import (
	"sync"
	"time"
)

// Clock is a wall-clock Scheduler. Timer goroutines only enqueue work; the
// owner must receive from Fired and call each function on its event loop.
type Clock struct {
	fired chan func()
	done  chan struct{}

	mu      sync.Mutex
	tasks   map[*clockTask]struct{}
	stopped bool
	once    sync.Once
}

// NewClock returns a Clock whose fired queue holds up to buffer callbacks.
func NewClock(buffer int) *Clock {
	if buffer < 1 {
		buffer = 1
	}
	return &Clock{
		fired: make(chan func(), buffer),
		done:  make(chan struct{}),
		tasks: make(map[*clockTask]struct{}),
	}
}

// Fired delivers callbacks whose time has come.
func (c *Clock) Fired() <-chan func() {
	return c.fired
}

// Done is closed once Stop has been called.
func (c *Clock) Done() <-chan struct{} {
	return c.done
}

// Every implements Scheduler. A non-positive interval is treated as 1ns.
func (c *Clock) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	t := c.newTask()
	if t.Canceled() {
		return t
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !c.enqueue(t, fn) {
					return
				}
			case <-t.stop:
				return
			}
		}
	}()
	return t
}

// After implements Scheduler.
func (c *Clock) After(delay time.Duration, fn func()) Task {
	t := c.newTask()
	if t.Canceled() {
		return t
	}
	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
			c.enqueue(t, fn)
			c.forget(t)
		case <-t.stop:
		}
	}()
	return t
}

// Stop cancels every outstanding task and closes Done.
func (c *Clock) Stop() {
	c.once.Do(func() {
		c.mu.Lock()
		c.stopped = true
		tasks := make([]*clockTask, 0, len(c.tasks))
		for t := range c.tasks {
			tasks = append(tasks, t)
		}
		c.mu.Unlock()

		for _, t := range tasks {
			t.Cancel()
		}
		close(c.done)
	})
}

// Pending returns the number of tasks that have not finished or been canceled.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tasks)
}

func (c *Clock) newTask() *clockTask {
	t := &clockTask{stop: make(chan struct{})}
	t.onCancel = func() { c.forget(t) }

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		t.cancelLocked()
		return t
	}
	c.tasks[t] = struct{}{}
	return t
}

func (c *Clock) forget(t *clockTask) {
	c.mu.Lock()
	delete(c.tasks, t)
	c.mu.Unlock()
}

// enqueue hands fn to the event loop wrapped so that a task canceled while
// its callback sat in the queue does not run. It reports false once the task
// or clock is stopped.
func (c *Clock) enqueue(t *clockTask, fn func()) bool {
	run := func() {
		if !t.Canceled() {
			fn()
		}
	}
	select {
	case c.fired <- run:
		return true
	case <-t.stop:
		return false
	case <-c.done:
		return false
	}
}

type clockTask struct {
	mu       sync.Mutex
	canceled bool
	stop     chan struct{}
	onCancel func()
}

func (t *clockTask) Cancel() {
	t.mu.Lock()
	if t.canceled {
		t.mu.Unlock()
		return
	}
	t.cancelLocked()
	t.mu.Unlock()
	if t.onCancel != nil {
		t.onCancel()
	}
}

func (t *clockTask) cancelLocked() {
	t.canceled = true
	close(t.stop)
}

func (t *clockTask) Canceled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.canceled
}
