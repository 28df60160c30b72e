package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/econlens/gdp_viewer/pkg/model"
)

// Total returns the sum of all distribution values.
func Total(points []DistributionPoint) float64 {
	return floats.Sum(values(points))
}

// Shares returns each point's percentage of the total, in input order. An
// all-zero distribution yields all-zero shares.
func Shares(points []DistributionPoint) []float64 {
	v := values(points)
	total := floats.Sum(v)
	if total <= 0 {
		return make([]float64, len(v))
	}
	floats.Scale(100/total, v)
	return v
}

// RegionTotal is the summed 2023 GDP of one region.
type RegionTotal struct {
	Region model.Region
	Value  float64
	Cities int
}

// RegionTotals groups the distribution by region in North, Central, South
// order. Regions without cities are reported with zero values.
func RegionTotals(points []DistributionPoint) []RegionTotal {
	out := make([]RegionTotal, len(model.Regions))
	pos := make(map[model.Region]int, len(model.Regions))
	for i, r := range model.Regions {
		out[i].Region = r
		pos[r] = i
	}
	for _, p := range points {
		i, ok := pos[p.Region]
		if !ok {
			continue
		}
		out[i].Value += p.Value
		out[i].Cities++
	}
	return out
}

// Growth summarizes how a city's GDP changed across its history.
type Growth struct {
	// YoY holds year-over-year growth in percent; YoY[i] compares record i+1
	// with record i.
	YoY []float64
	// MeanYoY is the arithmetic mean of YoY.
	MeanYoY float64
	// CAGR is the compound annual growth rate in percent between the first
	// and last record.
	CAGR float64
}

// GrowthOf computes year-over-year and compound growth for a trend series.
// Series shorter than two records, or starting at zero, have no growth.
func GrowthOf(series []model.YearRecord) Growth {
	if len(series) < 2 {
		return Growth{}
	}

	yoy := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		prev := series[i-1].GDP
		if prev == 0 {
			yoy = append(yoy, 0)
			continue
		}
		yoy = append(yoy, (series[i].GDP/prev-1)*100)
	}

	g := Growth{YoY: yoy, MeanYoY: stat.Mean(yoy, nil)}
	first, last := series[0], series[len(series)-1]
	span := last.Year - first.Year
	if first.GDP > 0 && span > 0 {
		g.CAGR = (math.Pow(last.GDP/first.GDP, 1/float64(span)) - 1) * 100
	}
	return g
}

// BreakdownDrift reports how far the three shares are from summing to 100.
func BreakdownDrift(b model.Breakdown) float64 {
	return math.Abs(b.Total() - 100)
}

func values(points []DistributionPoint) []float64 {
	v := make([]float64, len(points))
	for i, p := range points {
		v[i] = p.Value
	}
	return v
}
