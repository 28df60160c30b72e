package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/econlens/gdp_viewer/pkg/model"
)

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Regions
	North   lipgloss.AdaptiveColor
	Central lipgloss.AdaptiveColor
	South   lipgloss.AdaptiveColor

	// Breakdown categories
	Tech       lipgloss.AdaptiveColor
	Energy     lipgloss.AdaptiveColor
	RealEstate lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor

	// Styles
	Base        lipgloss.Style
	Selected    lipgloss.Style
	Header      lipgloss.Style
	Nav         lipgloss.Style
	NavScrolled lipgloss.Style
	Card        lipgloss.Style
}

// DefaultTheme returns the dashboard theme (adaptive).
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}, // Blue
		Secondary: lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"}, // Slate
		Subtext:   lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#CBD5E1"},
		Muted:     lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#475569"},

		North:   lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}, // Amber
		Central: lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}, // Blue
		South:   lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}, // Green

		Tech:       lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
		Energy:     lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"},
		RealEstate: lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"},

		Border:    lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#334155"},
		Highlight: lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E293B"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F8FAFC"})

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"}).
		Bold(true).
		Padding(0, 1)

	t.Nav = r.NewStyle().
		Foreground(t.Subtext).
		Padding(0, 2)

	// Once the page is scrolled the bar gains a solid background.
	t.NavScrolled = r.NewStyle().
		Background(t.Highlight).
		Foreground(t.Primary).
		Bold(true).
		Padding(0, 2)

	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return t
}

func (t Theme) GetRegionColor(r model.Region) lipgloss.AdaptiveColor {
	switch r {
	case model.RegionNorth:
		return t.North
	case model.RegionCentral:
		return t.Central
	case model.RegionSouth:
		return t.South
	default:
		return t.Subtext
	}
}

// GetCategoryColors returns the tech, energy and real-estate colors in
// breakdown order.
func (t Theme) GetCategoryColors() [3]lipgloss.AdaptiveColor {
	return [3]lipgloss.AdaptiveColor{t.Tech, t.Energy, t.RealEstate}
}
