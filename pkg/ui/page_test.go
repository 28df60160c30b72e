package ui

import "testing"

func testPager(t *testing.T) (*pager, *[]int) {
	t.Helper()
	p := newPager(20, 3)
	p.SetContent([]string{"a\nb\nc", "d\ne", "f", "g\nh\ni\nj"})
	var offsets []int
	p.feed.Subscribe(func(off int) { offsets = append(offsets, off) })
	return p, &offsets
}

func TestPagerAnchors(t *testing.T) {
	p, _ := testPager(t)
	want := map[string]int{
		SectionOverview:   0,
		SectionDashboard:  3,
		SectionAdvantages: 5,
		SectionFooter:     6,
	}
	for id, line := range want {
		got, ok := p.Anchor(id)
		if !ok || got != line {
			t.Errorf("Anchor(%q) = %d, %v; want %d", id, got, ok, line)
		}
	}
}

func TestPagerSmoothScroll(t *testing.T) {
	p, offsets := testPager(t)

	if !p.ScrollTo(SectionAdvantages) {
		t.Fatal("ScrollTo(advantages) = false")
	}
	if p.Offset() != 0 {
		t.Error("ScrollTo must not jump immediately")
	}
	frames := 0
	for p.Step() {
		frames++
		if frames > 20 {
			t.Fatal("did not settle")
		}
	}
	if p.Offset() != 5 {
		t.Errorf("Offset = %d, want 5", p.Offset())
	}
	if frames == 0 {
		t.Error("expected intermediate frames")
	}

	prev := 0
	for _, off := range *offsets {
		if off <= prev {
			t.Errorf("offsets not increasing: %v", *offsets)
		}
		prev = off
	}
	if last := (*offsets)[len(*offsets)-1]; last != 5*rowPixels {
		t.Errorf("last published offset = %d, want %d", last, 5*rowPixels)
	}
	if p.Current() != SectionAdvantages {
		t.Errorf("Current = %q", p.Current())
	}
}

func TestPagerUnknownSection(t *testing.T) {
	p, offsets := testPager(t)
	if p.ScrollTo("pricing") {
		t.Error("unknown section reported as navigable")
	}
	if p.Animating() || p.Step() || len(*offsets) != 0 {
		t.Error("unknown section moved the page")
	}
}

func TestPagerClampsToBottom(t *testing.T) {
	p, _ := testPager(t)
	p.ScrollTo(SectionFooter)
	for p.Step() {
	}
	// 10 lines in a 3 line window.
	if p.Offset() != 6 {
		t.Errorf("Offset = %d, want 6", p.Offset())
	}
	p.SetSize(20, 6)
	if p.Offset() != 4 {
		t.Errorf("after grow: Offset = %d, want 4", p.Offset())
	}
}

func TestPagerScrollByCancelsAnimation(t *testing.T) {
	p, _ := testPager(t)
	p.ScrollTo(SectionFooter)
	p.ScrollBy(1)
	if p.Animating() {
		t.Error("manual scroll should cancel the animation")
	}
	if p.Offset() != 1 {
		t.Errorf("Offset = %d", p.Offset())
	}
	p.ScrollBy(-5)
	if p.Offset() != 0 {
		t.Errorf("Offset = %d, want clamp at 0", p.Offset())
	}
}
