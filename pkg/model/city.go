package model

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Region is the coarse geographic grouping of a city. It is used for display
// grouping only.
type Region string

const (
	RegionNorth   Region = "North"
	RegionCentral Region = "Central"
	RegionSouth   Region = "South"
)

// Regions lists every region in display order.
var Regions = []Region{RegionNorth, RegionCentral, RegionSouth}

// IsValid reports whether r is one of the known regions.
func (r Region) IsValid() bool {
	switch r {
	case RegionNorth, RegionCentral, RegionSouth:
		return true
	}
	return false
}

// Label returns the local name of the region.
func (r Region) Label() string {
	switch r {
	case RegionNorth:
		return "陕北"
	case RegionCentral:
		return "关中"
	case RegionSouth:
		return "陕南"
	}
	return string(r)
}

// Breakdown is the three-way percentage split of a year's economic activity.
// The shares are expected to sum to roughly 100 but that is not enforced.
type Breakdown struct {
	Tech       float64 `yaml:"tech" json:"tech"`
	Energy     float64 `yaml:"energy" json:"energy"`
	RealEstate float64 `yaml:"realEstate" json:"real_estate"`
}

// Total returns the sum of the three shares.
func (b Breakdown) Total() float64 {
	return b.Tech + b.Energy + b.RealEstate
}

// YearRecord holds one year of data for a city.
type YearRecord struct {
	Year      int       `yaml:"year" json:"year"`
	GDP       float64   `yaml:"gdp" json:"gdp"`
	Breakdown Breakdown `yaml:"breakdown" json:"breakdown"`
}

// City is a single regional economic entity. Cities are immutable once the
// catalog is built; History hands out copies so callers cannot reorder the
// underlying series.
type City struct {
	Name        string
	Region      Region
	GDP2023     float64
	Description string
	history     []YearRecord
}

// NewCity builds a City from its fields. The history slice is copied.
func NewCity(name string, region Region, gdp2023 float64, description string, history []YearRecord) City {
	return City{
		Name:        name,
		Region:      region,
		GDP2023:     gdp2023,
		Description: description,
		history:     slices.Clone(history),
	}
}

// History returns a copy of the yearly records in catalog order.
func (c City) History() []YearRecord {
	return slices.Clone(c.history)
}

// Years iterates the yearly records in catalog order. The sequence can be
// ranged over any number of times.
func (c City) Years() iter.Seq[YearRecord] {
	return func(yield func(YearRecord) bool) {
		for _, r := range c.history {
			if !yield(r) {
				return
			}
		}
	}
}

// Len returns the number of yearly records.
func (c City) Len() int {
	return len(c.history)
}

// Last returns the final record in the history and false if there is none.
func (c City) Last() (YearRecord, bool) {
	if len(c.history) == 0 {
		return YearRecord{}, false
	}
	return c.history[len(c.history)-1], true
}

// Validate checks the invariants every catalog city must satisfy: a name, a
// known region, non-negative figures, shares within [0,100] and a non-empty
// history in strictly ascending year order.
func (c City) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("city without name: %w", ErrInvalidCatalog)
	}
	if !c.Region.IsValid() {
		return fmt.Errorf("city %q: unknown region %q: %w", c.Name, c.Region, ErrInvalidCatalog)
	}
	if !finiteNonNegative(c.GDP2023) {
		return fmt.Errorf("city %q: gdp2023 %v is not a finite non-negative number: %w", c.Name, c.GDP2023, ErrInvalidCatalog)
	}
	if len(c.history) == 0 {
		return fmt.Errorf("city %q: %w", c.Name, ErrEmptyHistory)
	}
	for i, r := range c.history {
		if !finiteNonNegative(r.GDP) {
			return fmt.Errorf("city %q year %d: gdp %v is not a finite non-negative number: %w", c.Name, r.Year, r.GDP, ErrInvalidCatalog)
		}
		for _, share := range []float64{r.Breakdown.Tech, r.Breakdown.Energy, r.Breakdown.RealEstate} {
			if !(share >= 0 && share <= 100) {
				return fmt.Errorf("city %q year %d: share %.1f out of range: %w", c.Name, r.Year, share, ErrInvalidCatalog)
			}
		}
		if i > 0 && r.Year <= c.history[i-1].Year {
			return fmt.Errorf("city %q: year %d follows %d: %w", c.Name, r.Year, c.history[i-1].Year, ErrInvalidCatalog)
		}
	}
	return nil
}

// finiteNonNegative reports whether v is a finite number >= 0.
func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
