package analysis

import (
	"slices"
	"sync"

	"github.com/econlens/gdp_viewer/pkg/model"
)

// Projection bundles the per-city derived data the dashboard shows.
type Projection struct {
	Trend     []YearPoint
	Latest    model.Breakdown
	LatestErr error
	Growth    Growth
}

// Cache memoizes per-city projections keyed by city name. Catalog cities are
// immutable, so entries never need invalidating.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Projection
	hits    int
	misses  int
}

// NewCache returns an empty projection cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Projection)}
}

// Get returns the cached projection for city, computing it on first use.
func (c *Cache) Get(city model.City) Projection {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.entries[city.Name]; ok {
		c.hits++
		return p.clone()
	}
	c.misses++

	series := TrendSeries(city)
	latest, err := LatestBreakdown(city)
	p := Projection{
		Trend:     YearPoints(series),
		Latest:    latest,
		LatestErr: err,
		Growth:    GrowthOf(series),
	}
	c.entries[city.Name] = p
	return p.clone()
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (p Projection) clone() Projection {
	p.Trend = slices.Clone(p.Trend)
	p.Growth.YoY = slices.Clone(p.Growth.YoY)
	return p
}
