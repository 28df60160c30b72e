// Package catalog holds the fixed set of cities and culture highlights the
// dashboard presents. A Catalog is built once at startup and never mutated.
package catalog

import (
	"fmt"
	"iter"
	"slices"

	"github.com/econlens/gdp_viewer/pkg/model"
)

// Catalog is an ordered, read-only collection of cities plus the culture
// items shown alongside them.
type Catalog struct {
	cities  []model.City
	index   map[string]int
	culture []model.CultureItem
}

// New validates the given cities and builds a Catalog. City names must be
// unique and every city must pass model.City.Validate.
func New(cities []model.City, culture []model.CultureItem) (*Catalog, error) {
	if len(cities) == 0 {
		return nil, fmt.Errorf("catalog has no cities: %w", model.ErrInvalidCatalog)
	}

	c := &Catalog{
		cities:  slices.Clone(cities),
		index:   make(map[string]int, len(cities)),
		culture: slices.Clone(culture),
	}
	for i, city := range c.cities {
		if err := city.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[city.Name]; dup {
			return nil, fmt.Errorf("duplicate city %q: %w", city.Name, model.ErrInvalidCatalog)
		}
		c.index[city.Name] = i
	}
	return c, nil
}

// Cities returns a copy of the cities in catalog order.
func (c *Catalog) Cities() []model.City {
	return slices.Clone(c.cities)
}

// All iterates the cities in catalog order together with their index.
func (c *Catalog) All() iter.Seq2[int, model.City] {
	return func(yield func(int, model.City) bool) {
		for i, city := range c.cities {
			if !yield(i, city) {
				return
			}
		}
	}
}

// Culture returns a copy of the culture items in display order.
func (c *Catalog) Culture() []model.CultureItem {
	return slices.Clone(c.culture)
}

// Len returns the number of cities.
func (c *Catalog) Len() int {
	return len(c.cities)
}

// First returns the first city in catalog order. New guarantees there is one.
func (c *Catalog) First() model.City {
	return c.cities[0]
}

// At returns the city at position i.
func (c *Catalog) At(i int) (model.City, bool) {
	if i < 0 || i >= len(c.cities) {
		return model.City{}, false
	}
	return c.cities[i], true
}

// IndexOf returns the catalog position of the named city, or -1.
func (c *Catalog) IndexOf(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	return -1
}

// Lookup resolves a city by name. Unknown names fail with model.ErrNotFound.
func (c *Catalog) Lookup(name string) (model.City, error) {
	i, ok := c.index[name]
	if !ok {
		return model.City{}, fmt.Errorf("city %q: %w", name, model.ErrNotFound)
	}
	return c.cities[i], nil
}

// Names returns the city names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.cities))
	for i, city := range c.cities {
		names[i] = city.Name
	}
	return names
}
