package analysis

import "github.com/econlens/gdp_viewer/pkg/model"

// ChartPoint is the payload behind a single chart mark. It is one of
// YearPoint or DistributionPoint; consumers switch on the concrete type.
type ChartPoint interface {
	chartPoint()
}

// YearPoint is one year of a city's trend series.
type YearPoint struct {
	Year      int
	GDP       float64
	Breakdown model.Breakdown
}

// DistributionPoint is one city's slice of the provincial distribution.
type DistributionPoint struct {
	Name   string
	Value  float64
	Region model.Region
}

func (YearPoint) chartPoint()         {}
func (DistributionPoint) chartPoint() {}
