package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/model"
	"github.com/econlens/gdp_viewer/pkg/viewmodel"
)

// regionBlurbs describe each region in the structure view.
var regionBlurbs = map[model.Region]string{
	model.RegionCentral: "关中地区 (核心引擎): 西安作为中心，辐射咸阳、宝鸡，贡献了全省绝大部分的科技、金融与高端制造产值。",
	model.RegionNorth:   "陕北地区 (能源支柱): 榆林与延安以化石能源与现代煤化工产业，提供稳定的资源保障。",
	model.RegionSouth:   "陕南地区 (绿色走廊): 依托秦岭生态屏障，汉中、安康在循环经济、富硒食品及生态旅游上展现出潜力。",
}

const labelWidth = 8

// renderChart draws the active view of c.
func renderChart(c viewmodel.Chart, theme Theme, width int) string {
	if c.Mode == model.ViewStructure {
		return renderStructure(c, theme, width)
	}
	return renderTrend(c, theme, width)
}

// renderTrend draws one horizontal bar per year with the cursor row
// highlighted.
func renderTrend(c viewmodel.Chart, theme Theme, width int) string {
	r := theme.Renderer
	titleStyle := r.NewStyle().Bold(true).Foreground(theme.Primary)
	subStyle := r.NewStyle().Foreground(theme.Subtext)

	var b strings.Builder
	b.WriteString(titleStyle.Render(c.City.Name))
	b.WriteString("  ")
	b.WriteString(RenderRegionBadge(c.City.Region, theme))
	b.WriteString("  ")
	b.WriteString(r.NewStyle().Bold(true).Render(fmt.Sprintf("%.2f", c.City.GDP2023)))
	b.WriteString(subStyle.Render(" CNY 亿 (2023 现价估算)"))
	b.WriteString("\n")
	if len(c.Trend) > 0 {
		first, last := c.Trend[0].Year, c.Trend[len(c.Trend)-1].Year
		b.WriteString(subStyle.Render(fmt.Sprintf("%d - %d 年度生产总值走势分析", first, last)))
	}
	b.WriteString("\n\n")

	peak := 0.0
	gdp := make([]float64, len(c.Trend))
	for i, p := range c.Trend {
		gdp[i] = p.GDP
		peak = max(peak, p.GDP)
	}

	barWidth := max(width-labelWidth-14, 10)
	barStyle := r.NewStyle().Foreground(theme.Primary)
	for i, p := range c.Trend {
		frac := 0.0
		if peak > 0 {
			frac = p.GDP / peak
		}
		row := PadRight(fmt.Sprintf("%d", p.Year), 6) +
			barStyle.Render(RenderSparkline(frac, barWidth)) +
			PadLeft(fmt.Sprintf("%.2f", p.GDP), 10)
		if i == c.Cursor {
			row = theme.Selected.Render(row)
		} else {
			row = " " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subStyle.Render("走势 "))
	b.WriteString(barStyle.Render(RenderSeries(gdp)))
	if c.Growth.YoY != nil {
		b.WriteString(subStyle.Render(fmt.Sprintf("   年均增速 %.1f%%   CAGR %.1f%%", c.Growth.MeanYoY, c.Growth.CAGR)))
	}
	b.WriteString("\n")
	b.WriteString(renderBreakdown(c, theme, barWidth))
	return b.String()
}

// renderStructure draws the provincial distribution with each city's share
// and the per-region totals.
func renderStructure(c viewmodel.Chart, theme Theme, width int) string {
	r := theme.Renderer
	titleStyle := r.NewStyle().Bold(true).Foreground(theme.Primary)
	subStyle := r.NewStyle().Foreground(theme.Subtext)

	var b strings.Builder
	b.WriteString(titleStyle.Render("全省经济贡献版图"))
	b.WriteString("\n")
	b.WriteString(subStyle.Render("各市 2023 年度 GDP 权重分布"))
	b.WriteString("\n\n")

	peak := 0.0
	for _, p := range c.Distribution {
		peak = max(peak, p.Value)
	}
	barWidth := max(width-labelWidth-24, 10)
	for i, p := range c.Distribution {
		frac := 0.0
		if peak > 0 {
			frac = p.Value / peak
		}
		share := 0.0
		if i < len(c.Shares) {
			share = c.Shares[i]
		}
		color := lipgloss.Color(colorAt(c.Colors, i))
		row := PadRight(p.Name, labelWidth) +
			r.NewStyle().Foreground(color).Render(RenderSparkline(frac, barWidth)) +
			PadLeft(fmt.Sprintf("%.2f", p.Value), 10) +
			r.NewStyle().Foreground(GetHeatGradientColor(share/100*2)).Render(PadLeft(fmt.Sprintf("%.1f%%", share), 7))
		if i == c.Cursor {
			row = theme.Selected.Render(row)
		} else {
			row = " " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	total := analysis.Total(c.Distribution)
	for _, rt := range analysis.RegionTotals(c.Distribution) {
		pct := 0.0
		if total > 0 {
			pct = rt.Value / total * 100
		}
		head := fmt.Sprintf("%s %.2f 亿 (%.1f%%, %d 市)", RenderRegionBadge(rt.Region, theme), rt.Value, pct, rt.Cities)
		b.WriteString(head)
		b.WriteString("\n")
		if blurb, ok := regionBlurbs[rt.Region]; ok {
			b.WriteString(subStyle.Width(max(width-2, 20)).Render(blurb))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderBreakdown draws the selected city's latest category split as one
// stacked bar.
func renderBreakdown(c viewmodel.Chart, theme Theme, width int) string {
	r := theme.Renderer
	if c.LatestErr != nil {
		return r.NewStyle().Foreground(theme.Muted).Render("暂无产业构成数据")
	}
	shares := []float64{c.Latest.Tech, c.Latest.Energy, c.Latest.RealEstate}
	labels := []string{viewmodel.LabelTech, viewmodel.LabelEnergy, viewmodel.LabelRealEstate}
	colors := theme.GetCategoryColors()

	total := c.Latest.Total()
	var bar, legend strings.Builder
	used := 0
	for i, s := range shares {
		cells := 0
		if total > 0 {
			cells = int(s / total * float64(width))
		}
		if i == len(shares)-1 {
			cells = max(width-used, 0)
		}
		used += cells
		style := r.NewStyle().Foreground(colors[i])
		bar.WriteString(style.Render(strings.Repeat("█", cells)))
		legend.WriteString(style.Render("■ "))
		legend.WriteString(fmt.Sprintf("%s %g%%  ", labels[i], s))
	}
	return "产业构成 " + bar.String() + "\n" + strings.TrimRight(legend.String(), " ")
}

// renderTooltip boxes the highlighted point's description.
func renderTooltip(text string, theme Theme) string {
	if text == "" {
		return ""
	}
	return theme.Card.BorderForeground(theme.Primary).Render(text)
}

func colorAt(colors []string, i int) string {
	if i < 0 || i >= len(colors) {
		return ""
	}
	return colors[i]
}
