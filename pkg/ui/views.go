package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/model"
	"github.com/econlens/gdp_viewer/pkg/viewmodel"
)

// navHeight is the nav bar plus its rule.
const navHeight = 2

const cityListWidth = 22

func (m Model) renderNav(st viewmodel.AppState) string {
	style := m.theme.Nav
	if st.IsScrolled {
		style = m.theme.NavScrolled
	}
	current := m.pager.Current()

	items := make([]string, 0, len(sectionOrder)+1)
	items = append(items, "陕西经济数字化看板")
	for i, id := range sectionOrder {
		label := fmt.Sprintf("%d %s", i+1, sectionTitles[id])
		if id == current {
			label = "[" + label + "]"
		}
		items = append(items, label)
	}
	bar := style.Width(m.width).Render(strings.Join(items, "   "))
	rule := m.theme.Renderer.NewStyle().Foreground(m.theme.Border).Render(strings.Repeat("─", max(m.width, 1)))
	return bar + "\n" + rule
}

func (m Model) renderLoading(st viewmodel.AppState) string {
	r := m.theme.Renderer
	title := r.NewStyle().Bold(true).Foreground(m.theme.Primary).Render("陕西经济数字化看板")
	status := fmt.Sprintf("数据加载中 %d%%", st.LoadingProgress)
	if st.LoadingProgress >= 100 {
		status = "准备就绪…"
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		m.bar.ViewAs(float64(st.LoadingProgress)/100),
		"",
		r.NewStyle().Foreground(m.theme.Subtext).Render(status),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderOverview() string {
	r := m.theme.Renderer
	cat := m.vm.Catalog()
	dist := m.vm.Distribution()

	first, last := 0, 0
	for _, c := range cat.Cities() {
		h := c.History()
		if len(h) == 0 {
			continue
		}
		if first == 0 || h[0].Year < first {
			first = h[0].Year
		}
		last = max(last, h[len(h)-1].Year)
	}

	title := r.NewStyle().Bold(true).Foreground(m.theme.Primary).Render("三秦之脊 · 经济大省")
	sub := r.NewStyle().Foreground(m.theme.Subtext).Render("陕西省 GDP 十年演进全景数据可视化")
	stats := fmt.Sprintf("%d 座城市   %d - %d   2023 全省合计 %.2f 亿", cat.Len(), first, last, analysis.Total(dist))
	hint := r.NewStyle().Foreground(m.theme.Muted).Render("按 2 进入核心指标看板 ↓")

	body := lipgloss.JoinVertical(lipgloss.Center, title, "", sub, "", stats, "", hint)
	return lipgloss.Place(m.width, max(m.pager.vp.Height, lipgloss.Height(body)+2), lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderDashboard() string {
	r := m.theme.Renderer
	st := m.vm.State()

	header := r.NewStyle().Bold(true).Render("GDP 核心指标看板") + "   " + m.renderTabs(st.ViewMode)

	list := m.renderCityList(st.SelectedCityName)
	chartWidth := max(m.width-cityListWidth-4, 30)
	chart := renderChart(m.vm.Chart(), m.theme, chartWidth)
	if tip := renderTooltip(m.vm.Tooltip(), m.theme); tip != "" {
		chart += "\n\n" + tip
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", chart)
	return "\n" + header + "\n\n" + body + "\n"
}

func (m Model) renderTabs(mode model.ViewMode) string {
	r := m.theme.Renderer
	active := r.NewStyle().Bold(true).Foreground(m.theme.Primary).Background(m.theme.Highlight).Padding(0, 1)
	idle := r.NewStyle().Foreground(m.theme.Subtext).Padding(0, 1)

	trend, structure := idle, idle
	if mode == model.ViewTrend {
		trend = active
	} else {
		structure = active
	}
	return trend.Render("增长趋势分析") + " " + structure.Render("全省结构分布")
}

func (m Model) renderCityList(selected string) string {
	r := m.theme.Renderer
	var b strings.Builder
	b.WriteString(r.NewStyle().Bold(true).Foreground(m.theme.Secondary).Render("区域城市检索"))
	b.WriteString("\n")
	for _, city := range m.vm.Catalog().Cities() {
		row := PadRight(city.Name, 10) + RenderRegionBadge(city.Region, m.theme)
		if city.Name == selected {
			b.WriteString(m.theme.Selected.Render(row))
		} else {
			b.WriteString(" " + row)
		}
		b.WriteString("\n")
	}
	return r.NewStyle().Width(cityListWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderAdvantages() string {
	r := m.theme.Renderer
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.NewStyle().Foreground(m.theme.Muted).Render("Strategic Superiority"))
	b.WriteString("\n")
	b.WriteString(r.NewStyle().Bold(true).Render("三秦腾飞的核心密码"))
	b.WriteString("\n\n")

	cardWidth := min(max(m.width-4, 30), 80)
	for i, item := range m.vm.Catalog().Culture() {
		summary := firstLine(item.Detail)
		text := r.NewStyle().Bold(true).Render(item.Icon+" "+item.Title) + "\n" +
			r.NewStyle().Foreground(m.theme.Subtext).Render(summary)
		card := m.theme.Card.Width(cardWidth)
		if i == m.cultureCursor {
			card = card.BorderForeground(m.theme.Primary)
		}
		b.WriteString(card.Render(text))
		b.WriteString("\n")
	}
	b.WriteString(r.NewStyle().Foreground(m.theme.Muted).Render("n/p 选择   enter 查看详情"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFooter() string {
	r := m.theme.Renderer
	lines := []string{
		"",
		r.NewStyle().Bold(true).Render("陕西经济数字化看板"),
		r.NewStyle().Foreground(m.theme.Subtext).Render("统计局官网 · 数据开放平台 · 关于本系统"),
		r.NewStyle().Foreground(m.theme.Muted).Render("数据仅供学习演示用途。实际数据请查阅年度统计公报。"),
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(lines, "\n"))
}

// firstLine returns the first non-empty line of markdown text with emphasis
// markers removed.
func firstLine(md string) string {
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return strings.ReplaceAll(line, "**", "")
		}
	}
	return ""
}
