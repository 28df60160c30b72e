package model

import "fmt"

// ViewMode selects which chart presentation is shown for the current city.
type ViewMode int

const (
	ViewTrend ViewMode = iota
	ViewStructure
)

func (m ViewMode) String() string {
	switch m {
	case ViewTrend:
		return "trend"
	case ViewStructure:
		return "structure"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewTrend {
		return ViewStructure
	}
	return ViewTrend
}

// ParseViewMode maps "trend" or "structure" to a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "trend":
		return ViewTrend, nil
	case "structure":
		return ViewStructure, nil
	}
	return ViewTrend, fmt.Errorf("unknown view mode %q", s)
}
