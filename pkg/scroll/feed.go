package scroll

// Feed is a synchronous Source. Publish calls every subscriber in
// subscription order on the caller's goroutine.
type Feed struct {
	subs []*feedSub
}

// Subscribe implements Source.
func (f *Feed) Subscribe(fn func(offset int)) Subscription {
	s := &feedSub{fn: fn, feed: f}
	f.subs = append(f.subs, s)
	return s
}

// Publish delivers offset to all current subscribers.
func (f *Feed) Publish(offset int) {
	for _, s := range append([]*feedSub(nil), f.subs...) {
		if s.closed {
			continue
		}
		s.fn(offset)
	}
}

// Len returns the number of live subscriptions.
func (f *Feed) Len() int {
	return len(f.subs)
}

func (f *Feed) remove(s *feedSub) {
	for i, cur := range f.subs {
		if cur == s {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return
		}
	}
}

type feedSub struct {
	fn     func(int)
	feed   *Feed
	closed bool
}

func (s *feedSub) Unsubscribe() {
	if s.closed {
		return
	}
	s.closed = true
	s.feed.remove(s)
}
