package ui

import (
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/econlens/gdp_viewer/pkg/catalog"
	"github.com/econlens/gdp_viewer/pkg/model"
	"github.com/econlens/gdp_viewer/pkg/schedule"
	"github.com/econlens/gdp_viewer/pkg/viewmodel"
)

func newTestModel(t *testing.T) (Model, *schedule.Fake) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	f := schedule.NewFake()
	vmOpts := viewmodel.DefaultOptions()
	vmOpts.Loading.Rand = rand.New(rand.NewPCG(3, 3))

	m, err := NewModel(Options{
		Catalog:   cat,
		ViewModel: vmOpts,
		Scheduler: f,
		Renderer:  lipgloss.NewRenderer(io.Discard),
	})
	if err != nil {
		t.Fatal(err)
	}
	return update(m, tea.WindowSizeMsg{Width: 100, Height: 30}), f
}

func readyModel(t *testing.T) (Model, *schedule.Fake) {
	t.Helper()
	m, f := newTestModel(t)
	f.Advance(10 * time.Second)
	m = update(m, nil)
	if m.vm.State().IsLoading {
		t.Fatal("still loading after 10s")
	}
	return m, f
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle runs animation frames until the page stops moving.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; m.pager.Animating(); i++ {
		if i > 200 {
			t.Fatal("smooth scroll did not settle")
		}
		m = update(m, frameMsg{})
	}
	return m
}

func TestLoadingScreen(t *testing.T) {
	m, f := newTestModel(t)

	if !strings.Contains(m.View(), "数据加载中 0%") {
		t.Errorf("expected loading screen, got:\n%s", m.View())
	}

	// Keys other than quit are ignored until ready.
	m = update(m, keyMsg("s"))
	if m.vm.State().ViewMode != model.ViewTrend {
		t.Error("view mode changed during loading")
	}

	f.Advance(150 * time.Millisecond)
	m = update(m, nil)
	if p := m.vm.State().LoadingProgress; p < 5 || p > 20 {
		t.Errorf("progress after one tick = %d", p)
	}
}

func TestReadyShowsPage(t *testing.T) {
	m, _ := readyModel(t)
	view := m.View()
	if !strings.Contains(view, "三秦之脊") {
		t.Errorf("overview missing from view:\n%s", view)
	}
	if strings.Contains(view, "数据加载中") {
		t.Error("loading screen still shown")
	}
}

func TestSectionJumpSetsScrolled(t *testing.T) {
	m, _ := readyModel(t)

	m = update(m, keyMsg("2"))
	if !m.pager.Animating() {
		t.Fatal("expected smooth scroll to start")
	}
	m = settle(t, m)

	anchor, _ := m.pager.Anchor(SectionDashboard)
	if m.pager.Offset() != anchor {
		t.Errorf("offset = %d, want dashboard anchor %d", m.pager.Offset(), anchor)
	}
	if !m.vm.State().IsScrolled {
		t.Error("expected scrolled after jumping to dashboard")
	}
	if m.pager.Current() != SectionDashboard {
		t.Errorf("current section = %q", m.pager.Current())
	}

	m = settle(t, update(m, keyMsg("1")))
	if m.pager.Offset() != 0 || m.vm.State().IsScrolled {
		t.Errorf("back at top: offset=%d scrolled=%v", m.pager.Offset(), m.vm.State().IsScrolled)
	}
}

func TestManualScroll(t *testing.T) {
	m, _ := readyModel(t)

	m = update(m, keyMsg("j"))
	m = update(m, keyMsg("j"))
	if m.vm.State().IsScrolled {
		t.Error("two lines should stay under the threshold")
	}
	m = update(m, keyMsg("j"))
	if !m.vm.State().IsScrolled {
		t.Error("three lines should pass the threshold")
	}
	m = update(m, keyMsg("k"))
	if m.vm.State().IsScrolled {
		t.Error("scrolled state must follow the latest offset")
	}
}

func TestMouseWheel(t *testing.T) {
	m, _ := readyModel(t)
	m = update(m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.pager.Offset() == 0 {
		t.Fatal("wheel did not scroll")
	}
	if !m.vm.State().IsScrolled {
		t.Error("expected scrolled after wheel")
	}
}

func TestDashboardKeys(t *testing.T) {
	m, _ := readyModel(t)
	names := m.vm.Catalog().Names()

	m = update(m, keyMsg("]"))
	if got := m.vm.State().SelectedCityName; got != names[1] {
		t.Errorf("after ]: %q, want %q", got, names[1])
	}
	m = update(m, keyMsg("up"))
	if got := m.vm.State().SelectedCityName; got != names[0] {
		t.Errorf("after up: %q, want %q", got, names[0])
	}

	m = update(m, keyMsg("tab"))
	if m.vm.State().ViewMode != model.ViewStructure {
		t.Error("tab did not switch to structure")
	}
	rev := m.vm.Revision()
	m = update(m, keyMsg("s"))
	if m.vm.Revision() != rev {
		t.Error("s in structure mode changed state")
	}
	m = update(m, keyMsg("t"))
	if m.vm.State().ViewMode != model.ViewTrend {
		t.Error("t did not switch to trend")
	}

	cursor := m.vm.Cursor()
	m = update(m, keyMsg("left"))
	if m.vm.Cursor() != cursor-1 {
		t.Errorf("cursor = %d, want %d", m.vm.Cursor(), cursor-1)
	}
}

func TestCultureModalFlow(t *testing.T) {
	m, _ := readyModel(t)
	items := m.vm.Catalog().Culture()

	m = update(m, keyMsg("n"))
	m = update(m, keyMsg("enter"))
	got := m.vm.State().ActiveCultureDetail
	if got == nil || *got != items[1] {
		t.Fatalf("ActiveCultureDetail = %v, want %q", got, items[1].Title)
	}
	if !m.cultureOpen || !strings.Contains(m.View(), items[1].Title) {
		t.Error("modal not rendered")
	}

	// Page keys are routed to the modal while it is open.
	m = update(m, keyMsg("]"))
	if m.vm.State().SelectedCityName != m.vm.Catalog().First().Name {
		t.Error("selection changed behind the modal")
	}

	m = update(m, keyMsg("esc"))
	if m.vm.State().ActiveCultureDetail != nil || m.cultureOpen {
		t.Error("esc did not close the modal")
	}
}

func TestCultureModalCopy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	m, _ := readyModel(t)
	m = update(m, keyMsg("enter"))

	next, cmd := m.Update(keyMsg("y"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m = update(m, cmd())

	item := m.vm.Catalog().Culture()[0]
	if !strings.Contains(copied, item.Title) {
		t.Errorf("copied %q", copied)
	}
	if m.culture.Notice() != "已复制到剪贴板" {
		t.Errorf("notice = %q", m.culture.Notice())
	}
}

func TestQuitTearsDown(t *testing.T) {
	m, f := newTestModel(t)

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if f.Pending() != 0 {
		t.Errorf("timers left after quit: %d", f.Pending())
	}
	if m.pager.feed.Len() != 0 {
		t.Error("scroll subscription left after quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestHelpToggleResizesPage(t *testing.T) {
	m, _ := readyModel(t)
	before := m.pager.vp.Height
	m = update(m, keyMsg("?"))
	if !m.help.ShowAll {
		t.Fatal("help not expanded")
	}
	if m.pager.vp.Height >= before {
		t.Errorf("page height %d should shrink from %d", m.pager.vp.Height, before)
	}
}

func TestNewModelNeedsScheduler(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewModel(Options{Catalog: cat}); err == nil {
		t.Error("expected error without scheduler")
	}
}

func TestWaitForTaskRunsOnLoop(t *testing.T) {
	clock := schedule.NewClock(4)
	defer clock.Stop()

	ran := make(chan struct{}, 1)
	clock.After(time.Millisecond, func() { ran <- struct{}{} })

	msg := waitForTask(clock)()
	task, ok := msg.(taskMsg)
	if !ok {
		t.Fatalf("msg = %T, want taskMsg", msg)
	}
	select {
	case <-ran:
		t.Fatal("callback ran before the loop executed it")
	default:
	}
	task.fn()
	select {
	case <-ran:
	default:
		t.Error("callback did not run")
	}

	clock.Stop()
	if msg := waitForTask(clock)(); msg != nil {
		t.Errorf("after stop: %v", msg)
	}
	if waitForTask(nil) != nil {
		t.Error("nil clock should give nil cmd")
	}
}
