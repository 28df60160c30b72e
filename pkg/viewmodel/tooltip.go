package viewmodel

import (
	"fmt"
	"strings"

	"github.com/econlens/gdp_viewer/pkg/analysis"
)

// driftNoteAbove is the breakdown drift, in percentage points, past which the
// tooltip notes that the shares do not add up to 100.
const driftNoteAbove = 1.0

// Breakdown category labels, in display order.
const (
	LabelTech       = "科技创新"
	LabelEnergy     = "能源工业"
	LabelRealEstate = "房产基建"
)

// FormatTooltip renders the text shown for a highlighted chart point. A year
// point shows the year's GDP and its breakdown; a distribution point shows the
// city's value.
func FormatTooltip(p analysis.ChartPoint) string {
	switch p := p.(type) {
	case analysis.YearPoint:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d年 GDP: %.2f 亿\n", p.Year, p.GDP)
		fmt.Fprintf(&sb, "%s %g%%\n", LabelTech, p.Breakdown.Tech)
		fmt.Fprintf(&sb, "%s %g%%\n", LabelEnergy, p.Breakdown.Energy)
		fmt.Fprintf(&sb, "%s %g%%", LabelRealEstate, p.Breakdown.RealEstate)
		if d := analysis.BreakdownDrift(p.Breakdown); d > driftNoteAbove {
			fmt.Fprintf(&sb, "\n构成合计偏差 %.1f%%", d)
		}
		return sb.String()
	case analysis.DistributionPoint:
		return fmt.Sprintf("%s: %.2f 亿", p.Name, p.Value)
	default:
		return ""
	}
}
