package ui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/econlens/gdp_viewer/pkg/model"
)

// copiedMsg reports the result of a clipboard write.
type copiedMsg struct {
	err error
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

// CultureModal renders one culture item as a scrollable overlay. The parent
// owns whether it is open; the modal only signals a close request.
type CultureModal struct {
	item         model.CultureItem
	theme        Theme
	width        int
	height       int
	scrollOffset int
	notice       string

	markdownRenderer *MarkdownRenderer
	lines            []string
	shouldClose      bool
}

// NewCultureModal creates a modal showing item.
func NewCultureModal(item model.CultureItem, theme Theme, width, height int) CultureModal {
	m := CultureModal{item: item, theme: theme}
	m.markdownRenderer = NewMarkdownRendererWithTheme(contentWidth(width), theme)
	m.SetSize(width, height)
	return m
}

// Update handles keys while the modal is on top.
func (m CultureModal) Update(msg tea.Msg) (CultureModal, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			m.notice = "复制失败: " + msg.err.Error()
		} else {
			m.notice = "已复制到剪贴板"
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			m.shouldClose = true
		case "j", "down":
			if m.scrollOffset < m.maxOffset() {
				m.scrollOffset++
			}
		case "k", "up":
			if m.scrollOffset > 0 {
				m.scrollOffset--
			}
		case "g", "home":
			m.scrollOffset = 0
		case "y":
			return m, copyCmd(m.item.Title + "\n\n" + m.item.Detail)
		}
	}
	return m, nil
}

// View renders the modal.
func (m CultureModal) View() string {
	r := m.theme.Renderer

	var b strings.Builder
	titleStyle := r.NewStyle().Bold(true).Foreground(m.theme.Primary)
	b.WriteString(titleStyle.Render(m.item.Icon + " " + m.item.Title))
	b.WriteString("\n")
	b.WriteString(r.NewStyle().Foreground(m.theme.Border).Render(strings.Repeat("─", contentWidth(m.width))))
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	modalStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(1, 2).
		Width(m.width).
		MaxHeight(m.height)

	return modalStyle.Render(b.String())
}

// renderLines renders the detail markdown at the current width.
func (m *CultureModal) renderLines() {
	rendered, err := m.markdownRenderer.Render(m.item.Detail)
	if err != nil {
		rendered = m.item.Detail
	}
	m.lines = strings.Split(strings.TrimSpace(rendered), "\n")
}

func (m CultureModal) visibleLines() int {
	return max(m.height-10, 3)
}

// maxOffset is the largest scroll offset that still fills the view.
func (m CultureModal) maxOffset() int {
	return max(len(m.lines)-m.visibleLines(), 0)
}

func (m CultureModal) renderContent() string {
	lines := m.lines
	visible := m.visibleLines()
	offset := min(m.scrollOffset, m.maxOffset())
	end := min(offset+visible, len(lines))

	hint := m.theme.Renderer.NewStyle().Foreground(m.theme.Muted)
	content := strings.Join(lines[offset:end], "\n")
	if offset > 0 {
		content = hint.Render("↑ more above") + "\n" + content
	}
	if end < len(lines) {
		content += "\n" + hint.Render("↓ more below")
	}
	return content
}

func (m CultureModal) renderFooter() string {
	r := m.theme.Renderer
	keyStyle := r.NewStyle().Bold(true).Foreground(m.theme.Primary)
	descStyle := r.NewStyle().Foreground(m.theme.Subtext)

	hints := []string{
		keyStyle.Render("j/k") + descStyle.Render(" scroll"),
		keyStyle.Render("y") + descStyle.Render(" copy"),
		keyStyle.Render("esc") + descStyle.Render(" close"),
	}
	footer := strings.Join(hints, r.NewStyle().Foreground(m.theme.Muted).Render(" │ "))
	if m.notice != "" {
		footer += "  " + r.NewStyle().Foreground(m.theme.South).Render(m.notice)
	}
	return footer
}

// SetSize fits the modal to the terminal.
func (m *CultureModal) SetSize(termWidth, termHeight int) {
	m.width = min(max(termWidth-8, 40), 90)
	m.height = max(termHeight-4, 12)
	m.markdownRenderer.SetWidthWithTheme(contentWidth(m.width), m.theme)
	m.renderLines()
	m.scrollOffset = min(m.scrollOffset, m.maxOffset())
}

// Item returns the item shown.
func (m CultureModal) Item() model.CultureItem {
	return m.item
}

// Notice returns the last clipboard status message.
func (m CultureModal) Notice() string {
	return m.notice
}

// ShouldClose reports whether the user asked to close the modal.
func (m CultureModal) ShouldClose() bool {
	return m.shouldClose
}

// CenterModal returns the modal centered in the terminal.
func (m CultureModal) CenterModal(termWidth, termHeight int) string {
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, m.View())
}

func contentWidth(width int) int {
	return max(width-6, 20)
}
