// Package selection owns the current city and view mode.
package selection

import (
	"github.com/rs/zerolog"

	"github.com/econlens/gdp_viewer/pkg/model"
)

// Resolver looks up cities by name. *catalog.Catalog satisfies it.
type Resolver interface {
	Lookup(name string) (model.City, error)
}

// Controller holds the selected city and the active view mode. The selected
// name always refers to a city the Resolver knows.
type Controller struct {
	cities   Resolver
	selected string
	mode     model.ViewMode

	onChange func()
	logger   zerolog.Logger
}

// New returns a Controller selecting initial in trend mode. initial must
// resolve.
func New(cities Resolver, initial string) (*Controller, error) {
	if _, err := cities.Lookup(initial); err != nil {
		return nil, err
	}
	return &Controller{
		cities:   cities,
		selected: initial,
		mode:     model.ViewTrend,
		logger:   zerolog.Nop(),
	}, nil
}

// SetLogger sets the logger used for rejected selections.
func (c *Controller) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// OnChange registers fn to run whenever the selection or mode changes.
func (c *Controller) OnChange(fn func()) {
	c.onChange = fn
}

// SelectCity makes name the current city. Unknown names fail with
// model.ErrNotFound and leave the selection untouched.
func (c *Controller) SelectCity(name string) error {
	if _, err := c.cities.Lookup(name); err != nil {
		c.logger.Warn().Err(err).Str("city", name).Msg("rejected selection")
		return err
	}
	if name == c.selected {
		return nil
	}
	c.selected = name
	c.notify()
	return nil
}

// SetViewMode switches the chart presentation. Setting the current mode
// again changes nothing.
func (c *Controller) SetViewMode(mode model.ViewMode) {
	if mode == c.mode {
		return
	}
	c.mode = mode
	c.notify()
}

// SelectedName returns the current city's name.
func (c *Controller) SelectedName() string {
	return c.selected
}

// Selected returns the current city.
func (c *Controller) Selected() model.City {
	city, _ := c.cities.Lookup(c.selected)
	return city
}

// ViewMode returns the active view mode.
func (c *Controller) ViewMode() model.ViewMode {
	return c.mode
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
