package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/econlens/gdp_viewer/pkg/model"
)

var sparkChars = []string{" ", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// RenderSparkline creates a textual bar of value (0.0 - 1.0)
func RenderSparkline(val float64, width int) string {
	if width <= 0 {
		return ""
	}

	if math.IsNaN(val) {
		val = 0
	}
	val = min(max(val, 0), 1)

	// Calculate fullness
	fullChars := int(val * float64(width))
	remainder := (val * float64(width)) - float64(fullChars)

	var sb strings.Builder
	sb.WriteString(strings.Repeat("█", fullChars))

	if fullChars < width {
		idx := int(remainder * float64(len(sparkChars)))
		// Ensure non-zero values are visible
		if idx == 0 && remainder > 0 {
			idx = 1
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		sb.WriteString(sparkChars[idx])
	}

	// Pad
	if padding := width - fullChars - 1; padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}

	return sb.String()
}

// RenderSeries draws one block character per value, scaled to the series
// maximum.
func RenderSeries(values []float64) string {
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	var sb strings.Builder
	for _, v := range values {
		if peak <= 0 || v <= 0 {
			sb.WriteString(sparkChars[0])
			continue
		}
		idx := int(math.Round(v / peak * float64(len(sparkChars)-1)))
		sb.WriteString(sparkChars[max(idx, 1)])
	}
	return sb.String()
}

// HeatmapGradientColors runs from cold (small share) to hot (large share).
var HeatmapGradientColors = []lipgloss.Color{
	lipgloss.Color("#1a1a2e"), // 0: empty
	lipgloss.Color("#16213e"),
	lipgloss.Color("#0f4c75"),
	lipgloss.Color("#3282b8"),
	lipgloss.Color("#bbe1fa"),
	lipgloss.Color("#f7dc6f"),
	lipgloss.Color("#e94560"),
	lipgloss.Color("#ff2e63"),
}

// GetHeatGradientColor returns the gradient color for intensity (0-1)
func GetHeatGradientColor(intensity float64) lipgloss.Color {
	if intensity <= 0 {
		return HeatmapGradientColors[0]
	}
	if intensity >= 1 {
		return HeatmapGradientColors[len(HeatmapGradientColors)-1]
	}

	idx := int(intensity * float64(len(HeatmapGradientColors)-1))
	if idx >= len(HeatmapGradientColors)-1 {
		idx = len(HeatmapGradientColors) - 2
	}

	return HeatmapGradientColors[idx+1] // +1 because 0 is for empty cells
}

// RenderRegionBadge creates a compact colored badge for a region.
// Example: Central -> "[关中]"
func RenderRegionBadge(r model.Region, t Theme) string {
	if r == "" {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.GetRegionColor(r)).
		Bold(true).
		Render("[" + r.Label() + "]")
}

// PadRight pads s with spaces to width terminal cells, truncating with an
// ellipsis when it does not fit. CJK characters count as two cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s in width terminal cells.
func PadLeft(s string, width int) string {
	if runewidth.StringWidth(s) >= width {
		return s
	}
	return runewidth.FillLeft(s, width)
}
