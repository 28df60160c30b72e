package scroll

import "testing"

type fakeNav struct {
	anchors map[string]int
	calls   []string
}

func (n *fakeNav) ScrollTo(id string) bool {
	n.calls = append(n.calls, id)
	_, ok := n.anchors[id]
	return ok
}

func TestScrolledIsPureFunctionOfOffset(t *testing.T) {
	o := NewObserver(DefaultThreshold, nil)

	tests := []struct {
		offset int
		want   bool
	}{
		{0, false},
		{51, true},
		{50, false},
		{500, true},
		{0, false},
		{49, false},
		{200, true},
		{51, true},
	}
	for _, tt := range tests {
		o.Update(tt.offset)
		if o.Scrolled() != tt.want {
			t.Errorf("Update(%d): Scrolled = %v, want %v", tt.offset, o.Scrolled(), tt.want)
		}
		if o.Offset() != tt.offset {
			t.Errorf("Offset = %d, want %d", o.Offset(), tt.offset)
		}
	}
}

func TestOnChangeOnlyOnFlip(t *testing.T) {
	o := NewObserver(10, nil)
	flips := 0
	o.OnChange(func() { flips++ })

	for _, off := range []int{0, 5, 11, 20, 30, 10, 3, 11} {
		o.Update(off)
	}
	if flips != 3 {
		t.Errorf("flips = %d, want 3", flips)
	}
}

func TestWatchAndClose(t *testing.T) {
	var feed Feed
	o := NewObserver(50, nil)
	o.Watch(&feed)

	feed.Publish(120)
	if !o.Scrolled() {
		t.Fatal("expected scrolled after publish")
	}
	if feed.Len() != 1 {
		t.Fatalf("Len = %d, want 1", feed.Len())
	}

	o.Close()
	o.Close()
	if feed.Len() != 0 {
		t.Fatalf("subscription leaked: Len = %d", feed.Len())
	}

	feed.Publish(0)
	if !o.Scrolled() {
		t.Error("observer received offsets after Close")
	}
}

func TestWatchReplacesSubscription(t *testing.T) {
	var a, b Feed
	o := NewObserver(50, nil)
	o.Watch(&a)
	o.Watch(&b)

	if a.Len() != 0 || b.Len() != 1 {
		t.Errorf("a.Len=%d b.Len=%d, want 0/1", a.Len(), b.Len())
	}
}

func TestScrollToSection(t *testing.T) {
	nav := &fakeNav{anchors: map[string]int{"dashboard": 40}}
	o := NewObserver(50, nav)

	if !o.ScrollToSection("dashboard") {
		t.Error("expected scroll to known section")
	}
	if o.ScrollToSection("missing") {
		t.Error("unknown section should be a no-op")
	}
	if len(nav.calls) != 2 {
		t.Errorf("navigator calls = %v", nav.calls)
	}
	if o.Scrolled() {
		t.Error("navigation must not change scrolled state by itself")
	}

	if NewObserver(50, nil).ScrollToSection("dashboard") {
		t.Error("nil navigator should be a no-op")
	}
}

func TestFeedUnsubscribeDuringPublish(t *testing.T) {
	var feed Feed
	var got []int
	var sub Subscription
	sub = feed.Subscribe(func(off int) {
		got = append(got, off)
		sub.Unsubscribe()
	})
	feed.Subscribe(func(off int) { got = append(got, off*10) })

	feed.Publish(1)
	feed.Publish(2)

	want := []int{1, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
