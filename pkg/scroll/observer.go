// Package scroll tracks the page's vertical scroll position and forwards
// section navigation requests to the host that owns the page.
package scroll

import "github.com/rs/zerolog"

// DefaultThreshold is the offset past which the page counts as scrolled.
const DefaultThreshold = 50

// Source delivers scroll offsets to subscribers.
type Source interface {
	Subscribe(fn func(offset int)) Subscription
}

// Subscription is a live registration on a Source. Unsubscribe may be called
// more than once.
type Subscription interface {
	Unsubscribe()
}

// Navigator resolves section anchors and starts a smooth scroll to them. It
// returns false when no section has the given id.
type Navigator interface {
	ScrollTo(id string) bool
}

// Observer derives the "scrolled" flag from the latest offset.
type Observer struct {
	threshold int
	offset    int
	scrolled  bool

	sub      Subscription
	nav      Navigator
	onChange func()
	logger   zerolog.Logger
}

// NewObserver returns an Observer that treats offsets above threshold as
// scrolled. nav may be nil, in which case every navigation is a no-op.
func NewObserver(threshold int, nav Navigator) *Observer {
	if threshold < 0 {
		threshold = 0
	}
	return &Observer{threshold: threshold, nav: nav, logger: zerolog.Nop()}
}

// SetLogger sets the logger used for navigation events.
func (o *Observer) SetLogger(logger zerolog.Logger) {
	o.logger = logger
}

// OnChange registers fn to run whenever Scrolled flips.
func (o *Observer) OnChange(fn func()) {
	o.onChange = fn
}

// Watch subscribes to src, replacing any previous subscription. The
// subscription is held until Close.
func (o *Observer) Watch(src Source) {
	o.release()
	o.sub = src.Subscribe(o.Update)
}

// Update records a new offset. Scrolled is recomputed from this offset alone.
func (o *Observer) Update(offset int) {
	o.offset = offset
	scrolled := offset > o.threshold
	if scrolled == o.scrolled {
		return
	}
	o.scrolled = scrolled
	if o.onChange != nil {
		o.onChange()
	}
}

// Scrolled reports whether the latest offset is past the threshold.
func (o *Observer) Scrolled() bool {
	return o.scrolled
}

// Offset returns the latest recorded offset.
func (o *Observer) Offset() int {
	return o.offset
}

// Threshold returns the configured threshold.
func (o *Observer) Threshold() int {
	return o.threshold
}

// ScrollToSection asks the host to scroll to the section with the given id.
// Unknown ids are ignored; the return value only tells callers whether a
// scroll was started.
func (o *Observer) ScrollToSection(id string) bool {
	if o.nav == nil {
		return false
	}
	if !o.nav.ScrollTo(id) {
		o.logger.Debug().Str("section", id).Msg("no such section")
		return false
	}
	return true
}

// Close releases the scroll subscription. It is safe to call repeatedly.
func (o *Observer) Close() {
	o.release()
}

func (o *Observer) release() {
	if o.sub != nil {
		o.sub.Unsubscribe()
		o.sub = nil
	}
}
