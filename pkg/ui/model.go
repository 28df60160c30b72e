// Package ui is the terminal host for the dashboard. It plays the part of
// the page: a scrollable document with anchored sections, charts drawn as
// text, and the single event loop on which every timer callback runs.
package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/econlens/gdp_viewer/pkg/catalog"
	"github.com/econlens/gdp_viewer/pkg/model"
	"github.com/econlens/gdp_viewer/pkg/schedule"
	"github.com/econlens/gdp_viewer/pkg/viewmodel"
)

// DefaultScrollFrame is the smooth-scroll animation frame.
const DefaultScrollFrame = 16 * time.Millisecond

// Options configures NewModel.
type Options struct {
	Catalog   *catalog.Catalog
	ViewModel viewmodel.Options

	// Clock, when set, schedules timers and its fired callbacks are run on
	// the event loop. Otherwise Scheduler is used as is.
	Clock     *schedule.Clock
	Scheduler schedule.Scheduler

	ScrollFrame time.Duration
	Renderer    *lipgloss.Renderer
	Logger      zerolog.Logger
}

// taskMsg carries a fired timer callback onto the event loop.
type taskMsg struct {
	fn func()
}

// frameMsg advances a smooth scroll.
type frameMsg struct{}

// Model is the main bubbletea model.
type Model struct {
	vm    *viewmodel.ViewModel
	clock *schedule.Clock
	pager *pager
	theme Theme
	keys  keyMap
	help  help.Model
	bar   progress.Model
	frame time.Duration

	culture       CultureModal
	cultureOpen   bool
	cultureCursor int

	width    int
	height   int
	rendered uint64
	laidOut  bool
	ticking  bool
	quitting bool

	logger zerolog.Logger
}

// NewModel builds the view model over opts.Catalog and wires it to a fresh
// page.
func NewModel(opts Options) (Model, error) {
	var sched schedule.Scheduler = opts.Scheduler
	if opts.Clock != nil {
		sched = opts.Clock
	}
	if sched == nil {
		return Model{}, errors.New("ui: no scheduler")
	}
	if opts.ScrollFrame <= 0 {
		opts.ScrollFrame = DefaultScrollFrame
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}

	pg := newPager(80, 20)
	vm, err := viewmodel.New(opts.Catalog, sched, pg, opts.ViewModel)
	if err != nil {
		return Model{}, err
	}
	vm.WatchScroll(&pg.feed)

	theme := DefaultTheme(opts.Renderer)
	bar := progress.New(progress.WithGradient("#2563eb", "#10b981"), progress.WithoutPercentage())

	return Model{
		vm:     vm,
		clock:  opts.Clock,
		pager:  pg,
		theme:  theme,
		keys:   defaultKeyMap(),
		help:   help.New(),
		bar:    bar,
		frame:  opts.ScrollFrame,
		logger: opts.Logger,
	}, nil
}

// Init starts draining the clock.
func (m Model) Init() tea.Cmd {
	return waitForTask(m.clock)
}

// ViewModel exposes the underlying view model.
func (m Model) ViewModel() *viewmodel.ViewModel {
	return m.vm
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()

	case taskMsg:
		msg.fn()
		cmds = append(cmds, waitForTask(m.clock))

	case frameMsg:
		m.ticking = false
		m.pager.Step()

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("clipboard write failed")
		}
		if m.cultureOpen {
			m.culture, _ = m.culture.Update(msg)
		}

	case tea.MouseMsg:
		if !m.vm.State().IsLoading && !m.cultureOpen {
			var cmd tea.Cmd
			m.pager.vp, cmd = m.pager.vp.Update(msg)
			m.pager.animating = false
			m.pager.publish()
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if m.quitting {
		return m, tea.Quit
	}

	m.sync()
	if m.pager.Animating() && !m.ticking {
		m.ticking = true
		cmds = append(cmds, m.frameCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) && (msg.String() == "ctrl+c" || !m.cultureOpen) {
		m.quit()
		return nil
	}

	st := m.vm.State()
	if st.IsLoading {
		return nil
	}

	if m.cultureOpen {
		var cmd tea.Cmd
		m.culture, cmd = m.culture.Update(msg)
		if m.culture.ShouldClose() {
			m.vm.CloseCulture()
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Overview):
		m.jump(SectionOverview)
	case key.Matches(msg, m.keys.Dashboard):
		m.jump(SectionDashboard)
	case key.Matches(msg, m.keys.Advantages):
		m.jump(SectionAdvantages)
	case key.Matches(msg, m.keys.Footer):
		m.jump(SectionFooter)

	case key.Matches(msg, m.keys.ScrollUp):
		m.pager.ScrollBy(-1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.pager.ScrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.pager.ScrollBy(-max(m.pager.vp.Height/2, 1))
	case key.Matches(msg, m.keys.PageDown):
		m.pager.ScrollBy(max(m.pager.vp.Height/2, 1))

	case key.Matches(msg, m.keys.ToggleMode):
		m.vm.ToggleViewMode()
	case key.Matches(msg, m.keys.Trend):
		m.vm.SetViewMode(model.ViewTrend)
	case key.Matches(msg, m.keys.Structure):
		m.vm.SetViewMode(model.ViewStructure)
	case key.Matches(msg, m.keys.PrevCity):
		m.vm.StepCity(-1)
	case key.Matches(msg, m.keys.NextCity):
		m.vm.StepCity(1)
	case key.Matches(msg, m.keys.CursorLeft):
		m.vm.MoveCursor(-1)
	case key.Matches(msg, m.keys.CursorRight):
		m.vm.MoveCursor(1)

	case key.Matches(msg, m.keys.PrevItem):
		m.stepCulture(-1)
	case key.Matches(msg, m.keys.NextItem):
		m.stepCulture(1)
	case key.Matches(msg, m.keys.Open):
		items := m.vm.Catalog().Culture()
		if len(items) > 0 {
			m.vm.OpenCulture(items[m.cultureCursor])
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	}
	return nil
}

func (m *Model) jump(section string) {
	if !m.vm.ScrollToSection(section) {
		m.logger.Debug().Str("section", section).Msg("jump ignored")
	}
}

func (m *Model) stepCulture(delta int) {
	n := len(m.vm.Catalog().Culture())
	if n == 0 {
		return
	}
	m.cultureCursor = ((m.cultureCursor+delta)%n + n) % n
	m.layout()
}

func (m *Model) quit() {
	m.quitting = true
	m.vm.Close()
}

// resize fits the page between the nav bar and the help footer.
func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	m.help.Width = m.width
	m.bar.Width = min(max(m.width-20, 10), 60)
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.pager.SetSize(m.width, m.height-navHeight-helpHeight)
	if m.cultureOpen {
		m.culture.SetSize(m.width, m.height)
	}
	m.layout()
}

// sync re-lays out the page after state changes and keeps the culture modal
// in step with the view model.
func (m *Model) sync() {
	st := m.vm.State()
	switch {
	case st.ActiveCultureDetail == nil:
		m.cultureOpen = false
	case !m.cultureOpen || m.culture.Item() != *st.ActiveCultureDetail:
		m.culture = NewCultureModal(*st.ActiveCultureDetail, m.theme, m.width, m.height)
		m.cultureOpen = true
	}

	if !m.laidOut || m.vm.Revision() != m.rendered {
		m.layout()
	}
}

func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	m.pager.SetContent([]string{
		m.renderOverview(),
		m.renderDashboard(),
		m.renderAdvantages(),
		m.renderFooter(),
	})
	m.laidOut = true
	m.rendered = m.vm.Revision()
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frame, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// waitForTask blocks until the clock fires a callback or stops.
func waitForTask(c *schedule.Clock) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case fn := <-c.Fired():
			return taskMsg{fn: fn}
		case <-c.Done():
			return nil
		}
	}
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Initializing..."
	}

	st := m.vm.State()
	if st.IsLoading {
		return m.renderLoading(st)
	}
	if m.cultureOpen {
		return m.culture.CenterModal(m.width, m.height)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNav(st),
		m.pager.View(),
		m.help.View(m.keys),
	)
}
