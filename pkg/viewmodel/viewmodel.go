// Package viewmodel composes the dashboard's controllers into one owner of
// application state. The presentation layer reads AppState snapshots and
// chart projections from a ViewModel and sends user intents back to it.
//
// A ViewModel is not safe for concurrent use. Every method, and every
// scheduled callback, must run on the same event loop.
package viewmodel

import (
	"github.com/rs/zerolog"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/catalog"
	"github.com/econlens/gdp_viewer/pkg/loading"
	"github.com/econlens/gdp_viewer/pkg/modal"
	"github.com/econlens/gdp_viewer/pkg/model"
	"github.com/econlens/gdp_viewer/pkg/schedule"
	"github.com/econlens/gdp_viewer/pkg/scroll"
	"github.com/econlens/gdp_viewer/pkg/selection"
)

// AppState is a snapshot of everything the page needs to render.
type AppState struct {
	SelectedCityName string
	ViewMode         model.ViewMode
	IsLoading        bool
	LoadingProgress  int
	IsScrolled       bool

	// ActiveCultureDetail is nil when no detail overlay is open.
	ActiveCultureDetail *model.CultureItem
}

// Options configures a ViewModel.
type Options struct {
	Palette         Palette
	Loading         loading.Options
	ScrollThreshold int
	Logger          zerolog.Logger
}

// DefaultOptions returns the standard dashboard settings.
func DefaultOptions() Options {
	return Options{
		Palette:         DefaultPalette,
		Loading:         loading.DefaultOptions(),
		ScrollThreshold: scroll.DefaultThreshold,
		Logger:          zerolog.Nop(),
	}
}

// ViewModel owns AppState and the controllers that mutate it.
type ViewModel struct {
	cat     *catalog.Catalog
	cache   *analysis.Cache
	dist    []analysis.DistributionPoint
	palette Palette

	selection *selection.Controller
	loading   *loading.Sequencer
	scroll    *scroll.Observer
	modal     *modal.Controller

	cursor   int
	revision uint64
	onChange func()
	closed   bool
	logger   zerolog.Logger
}

// New builds a ViewModel over cat with the first city selected, trend view
// active and loading started on sched. nav may be nil.
func New(cat *catalog.Catalog, sched schedule.Scheduler, nav scroll.Navigator, opts Options) (*ViewModel, error) {
	sel, err := selection.New(cat, cat.First().Name)
	if err != nil {
		return nil, err
	}
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette
	}

	vm := &ViewModel{
		cat:       cat,
		cache:     analysis.NewCache(),
		dist:      analysis.Distribution(cat.Cities()),
		palette:   opts.Palette,
		selection: sel,
		loading:   loading.New(sched, opts.Loading),
		scroll:    scroll.NewObserver(opts.ScrollThreshold, nav),
		modal:     modal.New(),
		logger:    opts.Logger,
	}

	sel.SetLogger(opts.Logger.With().Str("component", "selection").Logger())
	vm.loading.SetLogger(opts.Logger.With().Str("component", "loading").Logger())
	vm.scroll.SetLogger(opts.Logger.With().Str("component", "scroll").Logger())

	vm.cursor = vm.defaultCursor()
	vm.loading.Start()

	sel.OnChange(vm.changed)
	vm.loading.OnChange(vm.changed)
	vm.scroll.OnChange(vm.changed)
	vm.modal.OnChange(vm.changed)
	return vm, nil
}

// OnChange registers fn to run after every observable state change.
func (vm *ViewModel) OnChange(fn func()) {
	vm.onChange = fn
}

// Revision increases by one each time observable state changes.
func (vm *ViewModel) Revision() uint64 {
	return vm.revision
}

// State returns the current snapshot.
func (vm *ViewModel) State() AppState {
	st := AppState{
		SelectedCityName: vm.selection.SelectedName(),
		ViewMode:         vm.selection.ViewMode(),
		IsLoading:        vm.loading.Loading(),
		LoadingProgress:  vm.loading.Progress(),
		IsScrolled:       vm.scroll.Scrolled(),
	}
	if item, ok := vm.modal.Active(); ok {
		st.ActiveCultureDetail = &item
	}
	return st
}

// Catalog returns the catalog the ViewModel was built over.
func (vm *ViewModel) Catalog() *catalog.Catalog {
	return vm.cat
}

// Palette returns the chart palette.
func (vm *ViewModel) Palette() Palette {
	return vm.palette
}

// SelectCity selects the named city. Unknown names fail with
// model.ErrNotFound and leave state untouched.
func (vm *ViewModel) SelectCity(name string) error {
	prev := vm.cursor
	if name != vm.selection.SelectedName() {
		if city, err := vm.cat.Lookup(name); err == nil {
			vm.cursor = vm.cursorFor(vm.selection.ViewMode(), city)
		}
	}
	if err := vm.selection.SelectCity(name); err != nil {
		vm.cursor = prev
		return err
	}
	return nil
}

// StepCity moves the selection delta places through the catalog, wrapping at
// either end.
func (vm *ViewModel) StepCity(delta int) {
	n := vm.cat.Len()
	i := vm.cat.IndexOf(vm.selection.SelectedName())
	next := ((i+delta)%n + n) % n
	city, _ := vm.cat.At(next)
	_ = vm.SelectCity(city.Name)
}

// SetViewMode switches between trend and structure views. Setting the
// current mode again is a no-op.
func (vm *ViewModel) SetViewMode(mode model.ViewMode) {
	if mode == vm.selection.ViewMode() {
		return
	}
	vm.cursor = vm.defaultCursorFor(mode)
	vm.selection.SetViewMode(mode)
}

// ToggleViewMode flips the active view mode.
func (vm *ViewModel) ToggleViewMode() {
	vm.SetViewMode(vm.selection.ViewMode().Toggle())
}

// UpdateScroll feeds a new page offset into the scroll observer.
func (vm *ViewModel) UpdateScroll(offset int) {
	vm.scroll.Update(offset)
}

// WatchScroll subscribes to src for page offsets until Close.
func (vm *ViewModel) WatchScroll(src scroll.Source) {
	vm.scroll.Watch(src)
}

// ScrollToSection asks the page to scroll to the anchor id. Unknown ids are
// ignored.
func (vm *ViewModel) ScrollToSection(id string) bool {
	return vm.scroll.ScrollToSection(id)
}

// OpenCulture shows item in the detail overlay, replacing any open item.
func (vm *ViewModel) OpenCulture(item model.CultureItem) {
	vm.modal.Open(item)
}

// CloseCulture hides the detail overlay.
func (vm *ViewModel) CloseCulture() {
	vm.modal.Close()
}

// Close cancels the loading timers and releases the scroll subscription. It
// may be called more than once.
func (vm *ViewModel) Close() {
	if vm.closed {
		return
	}
	vm.closed = true
	vm.loading.Stop()
	vm.scroll.Close()
}

func (vm *ViewModel) changed() {
	vm.revision++
	if vm.onChange != nil {
		vm.onChange()
	}
}
