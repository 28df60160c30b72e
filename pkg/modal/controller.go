// Package modal owns the single detail overlay. Opening while an item is
// shown replaces it; overlays never stack.
package modal

import "github.com/econlens/gdp_viewer/pkg/model"

// Controller holds at most one open culture item.
type Controller struct {
	active   *model.CultureItem
	onChange func()
}

// New returns a Controller with nothing open.
func New() *Controller {
	return &Controller{}
}

// OnChange registers fn to run whenever the open item changes.
func (c *Controller) OnChange(fn func()) {
	c.onChange = fn
}

// Open shows item, replacing whatever was open.
func (c *Controller) Open(item model.CultureItem) {
	if c.active != nil && *c.active == item {
		return
	}
	c.active = &item
	c.notify()
}

// Close hides the overlay.
func (c *Controller) Close() {
	if c.active == nil {
		return
	}
	c.active = nil
	c.notify()
}

// Active returns the open item and whether there is one.
func (c *Controller) Active() (model.CultureItem, bool) {
	if c.active == nil {
		return model.CultureItem{}, false
	}
	return *c.active, true
}

// IsOpen reports whether an item is shown.
func (c *Controller) IsOpen() bool {
	return c.active != nil
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
