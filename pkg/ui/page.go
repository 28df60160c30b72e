package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/econlens/gdp_viewer/pkg/scroll"
)

// rowPixels converts viewport lines into the nominal pixel offsets the
// scroll threshold is expressed in.
const rowPixels = 20

// Section anchors, in document order.
const (
	SectionOverview   = "overview"
	SectionDashboard  = "dashboard"
	SectionAdvantages = "advantages"
	SectionFooter     = "footer"
)

var sectionOrder = []string{SectionOverview, SectionDashboard, SectionAdvantages, SectionFooter}

var sectionTitles = map[string]string{
	SectionOverview:   "概览",
	SectionDashboard:  "核心指标",
	SectionAdvantages: "核心密码",
	SectionFooter:     "关于",
}

// pager is the scrollable document. It resolves section anchors for the
// scroll observer and animates jumps between them one frame at a time.
type pager struct {
	vp      viewport.Model
	anchors map[string]int
	feed    scroll.Feed

	target    int
	animating bool
	published int
}

func newPager(width, height int) *pager {
	vp := viewport.New(width, height)
	vp.MouseWheelDelta = 3
	return &pager{vp: vp, anchors: make(map[string]int)}
}

// SetContent lays out the sections top to bottom and records where each one
// starts. parts must follow sectionOrder.
func (p *pager) SetContent(parts []string) {
	line := 0
	for i, part := range parts {
		if i < len(sectionOrder) {
			p.anchors[sectionOrder[i]] = line
		}
		line += lipgloss.Height(part)
	}
	p.vp.SetContent(strings.Join(parts, "\n"))
	if p.animating {
		p.target = p.clamp(p.target)
	}
	p.publish()
}

// SetSize resizes the visible window.
func (p *pager) SetSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = max(height, 1)
	p.vp.SetYOffset(p.vp.YOffset)
	p.publish()
}

// ScrollTo implements scroll.Navigator.
func (p *pager) ScrollTo(id string) bool {
	line, ok := p.anchors[id]
	if !ok {
		return false
	}
	p.target = p.clamp(line)
	p.animating = p.target != p.vp.YOffset
	return true
}

// Anchor returns the first line of the section id.
func (p *pager) Anchor(id string) (int, bool) {
	line, ok := p.anchors[id]
	return line, ok
}

// Step advances an in-flight scroll by one frame, covering a quarter of the
// remaining distance. It reports whether more frames are needed.
func (p *pager) Step() bool {
	if !p.animating {
		return false
	}
	dist := p.target - p.vp.YOffset
	if dist == 0 {
		p.animating = false
		return false
	}
	step := dist / 4
	if step == 0 {
		step = dist / abs(dist)
	}
	p.vp.SetYOffset(p.vp.YOffset + step)
	p.publish()
	if p.vp.YOffset == p.target {
		p.animating = false
	}
	return p.animating
}

// ScrollBy moves the window by delta lines and cancels any animation.
func (p *pager) ScrollBy(delta int) {
	p.animating = false
	p.vp.SetYOffset(p.vp.YOffset + delta)
	p.publish()
}

// Offset returns the top visible line.
func (p *pager) Offset() int {
	return p.vp.YOffset
}

// Animating reports whether a smooth scroll is in progress.
func (p *pager) Animating() bool {
	return p.animating
}

// Current returns the last section whose anchor is at or above the top of
// the window.
func (p *pager) Current() string {
	current := sectionOrder[0]
	for _, id := range sectionOrder {
		if line, ok := p.anchors[id]; ok && line <= p.vp.YOffset {
			current = id
		}
	}
	return current
}

func (p *pager) View() string {
	return p.vp.View()
}

// publish sends the offset to scroll subscribers when it changed.
func (p *pager) publish() {
	off := p.vp.YOffset * rowPixels
	if off == p.published {
		return
	}
	p.published = off
	p.feed.Publish(off)
}

func (p *pager) clamp(line int) int {
	maxOffset := max(p.vp.TotalLineCount()-p.vp.Height, 0)
	return min(max(line, 0), maxOffset)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
