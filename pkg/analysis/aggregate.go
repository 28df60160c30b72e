// Package analysis turns catalog cities into chart-ready projections. Every
// function here is pure: the same input always yields the same output and
// nothing is cached unless the caller goes through Cache.
package analysis

import (
	"fmt"

	"github.com/econlens/gdp_viewer/pkg/model"
)

// Distribution returns one point per city, in catalog order, whose value is
// the city's 2023 GDP. Negative figures are clamped to zero so the result can
// always drive a proportional chart.
func Distribution(cities []model.City) []DistributionPoint {
	points := make([]DistributionPoint, len(cities))
	for i, c := range cities {
		v := c.GDP2023
		if v < 0 {
			v = 0
		}
		points[i] = DistributionPoint{Name: c.Name, Value: v, Region: c.Region}
	}
	return points
}

// LatestBreakdown returns the breakdown of the last record in the city's
// history. "Last" is by position: the catalog guarantees ascending years.
func LatestBreakdown(city model.City) (model.Breakdown, error) {
	last, ok := city.Last()
	if !ok {
		return model.Breakdown{}, fmt.Errorf("latest breakdown for %q: %w", city.Name, model.ErrEmptyHistory)
	}
	return last.Breakdown, nil
}

// TrendSeries returns the city's history unchanged, ready for a time-series
// chart.
func TrendSeries(city model.City) []model.YearRecord {
	return city.History()
}

// YearPoints wraps a trend series as tooltip-capable chart points.
func YearPoints(series []model.YearRecord) []YearPoint {
	points := make([]YearPoint, len(series))
	for i, r := range series {
		points[i] = YearPoint{Year: r.Year, GDP: r.GDP, Breakdown: r.Breakdown}
	}
	return points
}
