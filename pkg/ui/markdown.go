package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders culture details with Glamour, matching the
// terminal's light or dark background.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// NewMarkdownRendererWithTheme creates a renderer wrapping at width.
func NewMarkdownRendererWithTheme(width int, theme Theme) *MarkdownRenderer {
	m := &MarkdownRenderer{}
	m.SetWidthWithTheme(width, theme)
	return m
}

// SetWidthWithTheme rebuilds the underlying renderer when the width or the
// background style changed.
func (m *MarkdownRenderer) SetWidthWithTheme(width int, theme Theme) {
	if width < 20 {
		width = 20
	}
	style := "light"
	if theme.Renderer == nil || theme.Renderer.HasDarkBackground() {
		style = "dark"
	}
	if m.renderer != nil && width == m.width && style == m.style {
		return
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.renderer = nil
		return
	}
	m.renderer = r
	m.width = width
	m.style = style
}

// Render returns the rendered markdown. Without a renderer the source is
// returned unchanged.
func (m *MarkdownRenderer) Render(src string) (string, error) {
	if m == nil || m.renderer == nil {
		return src, nil
	}
	out, err := m.renderer.Render(src)
	if err != nil {
		return src, err
	}
	return strings.Trim(out, "\n"), nil
}
