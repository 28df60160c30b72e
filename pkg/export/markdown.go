package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/model"
)

// MarkdownFile is the report's file name.
const MarkdownFile = "report.md"

// driftNoteAbove is the breakdown drift, in points, flagged in trend tables.
const driftNoteAbove = 1.0

// sanitizeMermaidText prepares text for use in Mermaid labels.
func sanitizeMermaidText(text string) string {
	replacer := strings.NewReplacer(
		"\"", "'",
		"\n", " ",
		"\r", "",
		"#", "",
		"`", "'",
	)
	result := replacer.Replace(text)

	// Remove any remaining control characters
	result = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, result)

	result = strings.TrimSpace(result)

	// Truncate if too long (UTF-8 safe using runes)
	runes := []rune(result)
	if len(runes) > 40 {
		result = string(runes[:37]) + "..."
	}
	return result
}

// escapeCell keeps pipes from breaking a markdown table.
func escapeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", "\\|"), "\n", " ")
}

// GenerateMarkdown creates the full markdown report.
func GenerateMarkdown(d Dataset) (string, error) {
	var sb strings.Builder

	total := analysis.Total(d.Distribution)
	shares := analysis.Shares(d.Distribution)

	// Header
	fmt.Fprintf(&sb, "# %s\n\n", d.Title)
	fmt.Fprintf(&sb, "*Generated: %s*\n\n", d.GeneratedAt.Format(time.RFC1123))

	// Summary
	first, last := yearSpan(d.Cities)
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&sb, "| **Cities** | %d |\n", len(d.Cities))
	fmt.Fprintf(&sb, "| **Years** | %d - %d |\n", first, last)
	fmt.Fprintf(&sb, "| **Total GDP 2023** | %.2f 亿 |\n\n", total)

	// Table of Contents
	sb.WriteString("## Table of Contents\n\n")
	sb.WriteString("- [Distribution](#distribution)\n")
	sb.WriteString("- [Regions](#regions)\n")
	for _, c := range d.Cities {
		fmt.Fprintf(&sb, "- [%s](#%s)\n", c.Name, createSlug(c.Name))
	}
	if len(d.Culture) > 0 {
		sb.WriteString("- [Highlights](#highlights)\n")
	}
	sb.WriteString("\n---\n\n")

	// Distribution
	sb.WriteString("## Distribution\n\n")
	sb.WriteString("```mermaid\npie showData\n")
	fmt.Fprintf(&sb, "    title %s\n", sanitizeMermaidText("2023 GDP 分布"))
	for _, p := range d.Distribution {
		fmt.Fprintf(&sb, "    \"%s\" : %.2f\n", sanitizeMermaidText(p.Name), p.Value)
	}
	sb.WriteString("```\n\n")
	sb.WriteString("| City | Region | GDP 2023 | Share |\n|------|--------|----------|-------|\n")
	for i, p := range d.Distribution {
		fmt.Fprintf(&sb, "| %s | %s | %.2f | %.1f%% |\n", escapeCell(p.Name), p.Region.Label(), p.Value, shares[i])
	}
	sb.WriteString("\n")

	// Regions
	sb.WriteString("## Regions\n\n")
	sb.WriteString("| Region | Cities | GDP 2023 | Share |\n|--------|--------|----------|-------|\n")
	for _, rt := range analysis.RegionTotals(d.Distribution) {
		pct := 0.0
		if total > 0 {
			pct = rt.Value / total * 100
		}
		fmt.Fprintf(&sb, "| %s (%s) | %d | %.2f | %.1f%% |\n", rt.Region.Label(), rt.Region, rt.Cities, rt.Value, pct)
	}
	sb.WriteString("\n---\n\n")

	// Individual cities
	for _, c := range d.Cities {
		writeCity(&sb, c)
	}

	// Culture highlights
	if len(d.Culture) > 0 {
		sb.WriteString("## Highlights\n\n")
		for _, item := range d.Culture {
			fmt.Fprintf(&sb, "### %s %s\n\n", item.Icon, item.Title)
			sb.WriteString(strings.TrimSpace(item.Detail) + "\n\n")
		}
	}

	return sb.String(), nil
}

func writeCity(sb *strings.Builder, c model.City) {
	series := analysis.TrendSeries(c)
	growth := analysis.GrowthOf(series)

	fmt.Fprintf(sb, "## %s\n\n", c.Name)
	if c.Description != "" {
		sb.WriteString(c.Description + "\n\n")
	}

	sb.WriteString("| Property | Value |\n|----------|-------|\n")
	fmt.Fprintf(sb, "| **Region** | %s |\n", c.Region.Label())
	fmt.Fprintf(sb, "| **GDP 2023** | %.2f 亿 |\n", c.GDP2023)
	if len(growth.YoY) > 0 {
		fmt.Fprintf(sb, "| **Mean YoY** | %.1f%% |\n", growth.MeanYoY)
		fmt.Fprintf(sb, "| **CAGR** | %.1f%% |\n", growth.CAGR)
	}
	if latest, err := analysis.LatestBreakdown(c); err == nil {
		fmt.Fprintf(sb, "| **Latest breakdown** | 科技 %g%% / 能源 %g%% / 房产 %g%% |\n",
			latest.Tech, latest.Energy, latest.RealEstate)
	}
	sb.WriteString("\n")

	if len(series) == 0 {
		sb.WriteString("*No history.*\n\n---\n\n")
		return
	}

	sb.WriteString("| Year | GDP | YoY | Tech | Energy | Real estate |\n|------|-----|-----|------|--------|-------------|\n")
	for i, r := range series {
		yoy := "-"
		if i > 0 && i-1 < len(growth.YoY) {
			yoy = fmt.Sprintf("%+.1f%%", growth.YoY[i-1])
		}
		note := ""
		if analysis.BreakdownDrift(r.Breakdown) > driftNoteAbove {
			note = " ⚠"
		}
		fmt.Fprintf(sb, "| %d | %.2f | %s | %g%% | %g%% | %g%%%s |\n",
			r.Year, r.GDP, yoy, r.Breakdown.Tech, r.Breakdown.Energy, r.Breakdown.RealEstate, note)
	}
	sb.WriteString("\n---\n\n")
}

func yearSpan(cities []model.City) (first, last int) {
	for _, c := range cities {
		h := c.History()
		if len(h) == 0 {
			continue
		}
		if first == 0 || h[0].Year < first {
			first = h[0].Year
		}
		last = max(last, h[len(h)-1].Year)
	}
	return first, last
}

// SaveMarkdownToFile writes the report into dir and returns its path.
func SaveMarkdownToFile(d Dataset, dir string) (string, error) {
	content, err := GenerateMarkdown(d)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, MarkdownFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}
	return path, nil
}
