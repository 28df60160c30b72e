// Package loading simulates the dashboard's start-up load: a progress value
// that climbs from 0 to 100 in random steps on a repeating timer, then flips
// to ready after a short delay.
package loading

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/econlens/gdp_viewer/pkg/schedule"
)

// State is the sequencer's phase.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateFinishing
	StateReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateFinishing:
		return "finishing"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Options configures a Sequencer.
type Options struct {
	Interval    time.Duration // time between ticks
	MinStep     int           // smallest increment per tick, inclusive
	MaxStep     int           // largest increment per tick, inclusive
	FinishDelay time.Duration // wait between reaching 100 and ready

	// Rand supplies increments. Nil uses a randomly seeded generator.
	Rand *rand.Rand
}

// DefaultOptions returns the standard dashboard timing.
func DefaultOptions() Options {
	return Options{
		Interval:    150 * time.Millisecond,
		MinStep:     5,
		MaxStep:     20,
		FinishDelay: 500 * time.Millisecond,
	}
}

// Sequencer drives progress from 0 to 100 and then to ready. It must only be
// used from the goroutine that runs scheduled callbacks.
type Sequencer struct {
	sched schedule.Scheduler
	opts  Options
	rng   *rand.Rand

	state    State
	progress int
	ticker   schedule.Task
	finish   schedule.Task

	onChange func()
	logger   zerolog.Logger
}

// New returns an idle Sequencer. Call Start to begin loading.
func New(sched schedule.Scheduler, opts Options) *Sequencer {
	if opts.Interval <= 0 {
		opts.Interval = DefaultOptions().Interval
	}
	if opts.FinishDelay < 0 {
		opts.FinishDelay = 0
	}
	if opts.MinStep < 1 {
		opts.MinStep = 1
	}
	if opts.MaxStep < opts.MinStep {
		opts.MaxStep = opts.MinStep
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sequencer{
		sched:  sched,
		opts:   opts,
		rng:    rng,
		logger: zerolog.Nop(),
	}
}

// SetLogger sets the logger used for state transitions.
func (s *Sequencer) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// OnChange registers fn to run after every progress or state change.
func (s *Sequencer) OnChange(fn func()) {
	s.onChange = fn
}

// Start begins ticking. Calling Start again has no effect.
func (s *Sequencer) Start() {
	if s.state != StateIdle {
		return
	}
	s.state = StateLoading
	s.ticker = s.sched.Every(s.opts.Interval, s.tick)
	s.logger.Debug().Dur("interval", s.opts.Interval).Msg("loading started")
	s.notify()
}

// Stop releases the timers without reaching ready. It is safe to call at any
// time and any number of times.
func (s *Sequencer) Stop() {
	cancel(s.ticker)
	cancel(s.finish)
}

// State returns the current phase.
func (s *Sequencer) State() State {
	return s.state
}

// Progress returns the current progress in [0,100].
func (s *Sequencer) Progress() int {
	return s.progress
}

// Loading reports whether the sequencer has not reached ready yet.
func (s *Sequencer) Loading() bool {
	return s.state != StateReady
}

// Ready reports whether loading has finished.
func (s *Sequencer) Ready() bool {
	return s.state == StateReady
}

func (s *Sequencer) tick() {
	if s.state != StateLoading {
		return
	}

	step := s.opts.MinStep + s.rng.IntN(s.opts.MaxStep-s.opts.MinStep+1)
	s.progress = min(s.progress+step, 100)

	if s.progress == 100 {
		cancel(s.ticker)
		s.state = StateFinishing
		s.finish = s.sched.After(s.opts.FinishDelay, s.complete)
	}
	s.notify()
}

func (s *Sequencer) complete() {
	if s.state != StateFinishing {
		return
	}
	s.state = StateReady
	s.logger.Debug().Msg("loading complete")
	s.notify()
}

func (s *Sequencer) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

func cancel(t schedule.Task) {
	if t != nil {
		t.Cancel()
	}
}
