package viewmodel

import (
	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/model"
)

// Chart is the chart-ready projection for the active view mode.
type Chart struct {
	Mode model.ViewMode
	City model.City

	// Trend is the selected city's history. Set in trend mode.
	Trend  []analysis.YearPoint
	Growth analysis.Growth

	// Distribution holds one point per catalog city. Set in structure mode.
	Distribution []analysis.DistributionPoint
	Shares       []float64

	// Latest is the selected city's most recent breakdown. LatestErr is
	// non-nil when the city has no history.
	Latest    model.Breakdown
	LatestErr error

	// Colors holds one palette color per point.
	Colors []string
	Cursor int
}

// Points returns the chart's marks as tooltip payloads.
func (c Chart) Points() []analysis.ChartPoint {
	var pts []analysis.ChartPoint
	switch c.Mode {
	case model.ViewTrend:
		pts = make([]analysis.ChartPoint, len(c.Trend))
		for i, p := range c.Trend {
			pts[i] = p
		}
	case model.ViewStructure:
		pts = make([]analysis.ChartPoint, len(c.Distribution))
		for i, p := range c.Distribution {
			pts[i] = p
		}
	}
	return pts
}

// Chart returns the projection for the current selection and view mode.
func (vm *ViewModel) Chart() Chart {
	city := vm.selection.Selected()
	proj := vm.cache.Get(city)

	c := Chart{
		Mode:      vm.selection.ViewMode(),
		City:      city,
		Latest:    proj.Latest,
		LatestErr: proj.LatestErr,
		Growth:    proj.Growth,
		Cursor:    vm.cursor,
	}
	switch c.Mode {
	case model.ViewTrend:
		c.Trend = proj.Trend
		c.Colors = vm.palette.Colors(len(c.Trend))
	case model.ViewStructure:
		c.Distribution = append([]analysis.DistributionPoint(nil), vm.dist...)
		c.Shares = analysis.Shares(c.Distribution)
		c.Colors = vm.palette.Colors(len(c.Distribution))
	}
	return c
}

// Distribution returns the provincial distribution in catalog order.
func (vm *ViewModel) Distribution() []analysis.DistributionPoint {
	return append([]analysis.DistributionPoint(nil), vm.dist...)
}

// Cursor returns the index of the highlighted chart point.
func (vm *ViewModel) Cursor() int {
	return vm.cursor
}

// MoveCursor moves the highlighted point by delta, clamped to the chart.
func (vm *ViewModel) MoveCursor(delta int) {
	n := vm.pointCount(vm.selection.ViewMode())
	if n == 0 {
		return
	}
	next := min(max(vm.cursor+delta, 0), n-1)
	if next == vm.cursor {
		return
	}
	vm.cursor = next
	vm.changed()
}

// Tooltip formats the highlighted point. It returns "" when the chart is
// empty.
func (vm *ViewModel) Tooltip() string {
	pts := vm.Chart().Points()
	if vm.cursor < 0 || vm.cursor >= len(pts) {
		return ""
	}
	return FormatTooltip(pts[vm.cursor])
}

func (vm *ViewModel) pointCount(mode model.ViewMode) int {
	if mode == model.ViewStructure {
		return len(vm.dist)
	}
	return vm.selection.Selected().Len()
}

// defaultCursor highlights the latest year in trend mode and the selected
// city in structure mode.
func (vm *ViewModel) defaultCursor() int {
	return vm.defaultCursorFor(vm.selection.ViewMode())
}

func (vm *ViewModel) defaultCursorFor(mode model.ViewMode) int {
	return vm.cursorFor(mode, vm.selection.Selected())
}

func (vm *ViewModel) cursorFor(mode model.ViewMode, city model.City) int {
	if mode == model.ViewStructure {
		return max(vm.cat.IndexOf(city.Name), 0)
	}
	return max(city.Len()-1, 0)
}
