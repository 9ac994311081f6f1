package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rileyhilliard/sysview/internal/pane"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// Size used before the first WindowSizeMsg arrives.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// summaryBarWidth is the width of usage bars in pane summaries.
const summaryBarWidth = 20

// rect is the size of a pane on screen.
type rect struct {
	w, h int
}

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = fallbackWidth, fallbackHeight
	}
	bodyHeight := height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	layout := m.container.Render()

	var b strings.Builder
	b.WriteString(m.renderHeader(layout))
	b.WriteString("\n")
	b.WriteString(m.renderElement(layout.Root, width, bodyHeight))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title bar with pane count and layout state.
func (m Model) renderHeader(layout pane.Layout) string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("sysview")

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(fmt.Sprintf(" | %d/%d panes | %s", layout.Leaves, pane.MaxLeaves, m.container.State()))

	return HeaderStyle.Render(title + stats)
}

// renderFooter renders key hints, or the last error if there is one.
func (m Model) renderFooter() string {
	if m.status != "" {
		return StatusErrorStyle.Render("✗ " + m.status)
	}

	hints := []string{
		"q quit",
		"1-7 open",
		"tab focus",
		"[ ] resize",
		"r refresh",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderElement renders a layout element into a w x h block.
func (m Model) renderElement(e pane.Element, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}

	if e.Leaf != nil {
		return m.renderPane(e.Leaf, w, h)
	}

	s := e.Split
	a, b := splitSizes(s, w, h)
	left := m.renderElement(s.Left, a.w, a.h)
	right := m.renderElement(s.Right, b.w, b.h)

	switch {
	case left == "":
		return right
	case right == "":
		return left
	case s.Axis == pane.Horizontal:
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
}

// renderPane draws one pane: a framed title, then its body.
func (m Model) renderPane(leaf *pane.LeafView, w, h int) string {
	focused := leaf.ID == m.focus

	// Panes too small to frame are left blank.
	if w < 10 || h < 3 {
		return lipgloss.NewStyle().Width(w).Height(h).Render("")
	}

	title := leaf.Title
	value := ""
	var body []string

	if leaf.Category.Bound() {
		if !leaf.CapturedAt.IsZero() {
			value = leaf.CapturedAt.Format("15:04:05")
		}
		if focused && m.viewportReady {
			body = strings.Split(m.viewport.View(), "\n")
		} else {
			n, _ := m.container.Node(leaf.ID)
			body = paneBody(leaf, n)
		}
	} else {
		title = "Select"
		body = m.menuLines(focused)
	}

	lines := make([]string, 0, h)
	lines = append(lines, SectionHeader(title, value, w, focused))
	for i := 0; i < h-2; i++ {
		content := ""
		if i < len(body) {
			content = body[i]
		}
		lines = append(lines, SectionContentLine(content, w, focused))
	}
	lines = append(lines, SectionFooter(w, focused))
	return strings.Join(lines, "\n")
}

// menuLines lists the categories an unbound pane can open.
func (m Model) menuLines(focused bool) []string {
	lines := []string{LabelStyle.Render("Pick a category:"), ""}
	for i, c := range snapshot.Categories {
		item := fmt.Sprintf("%d  %s", i+1, c.Title())
		if focused && i == m.cursor {
			lines = append(lines, MenuCursorStyle.Render("› "+item))
			continue
		}
		lines = append(lines, MenuItemStyle.Render("  "+item))
	}
	return lines
}

// paneBody is a bound pane's content: a short summary followed by every
// labeled field.
func paneBody(leaf *pane.LeafView, n pane.Node) []string {
	lines := summary(leaf.Category, n.Snapshot)
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	for _, f := range leaf.Fields {
		values := strings.Split(strings.TrimRight(f.Value, "\n"), "\n")
		if len(values) == 1 {
			lines = append(lines, LabelStyle.Render(f.Label+": ")+ValueStyle.Render(values[0]))
			continue
		}
		lines = append(lines, LabelStyle.Render(f.Label))
		for _, v := range values {
			lines = append(lines, "  "+ValueStyle.Render(v))
		}
	}
	return lines
}

// summary renders usage bars with human-readable sizes for the categories
// that have a natural "how full" reading.
func summary(c snapshot.Category, s snapshot.Snapshot) []string {
	switch c {
	case snapshot.Processor:
		p := s.Processor
		return []string{fmt.Sprintf("%s %5.1f%%", ProgressBar(summaryBarWidth, p.UsagePercent), p.UsagePercent)}

	case snapshot.Memory:
		mem := s.Memory
		return []string{
			usageLine("ram ", mem.UsedMemory, mem.TotalMemory),
			usageLine("swap", mem.UsedSwap, mem.TotalSwap),
		}

	case snapshot.Storage:
		names := make([]string, 0, len(s.Storage.Volumes))
		for name := range s.Storage.Volumes {
			names = append(names, name)
		}
		sort.Strings(names)

		lines := make([]string, 0, len(names))
		for _, name := range names {
			v := s.Storage.Volumes[name]
			used := uint64(0)
			if v.TotalBytes > v.AvailableBytes {
				used = v.TotalBytes - v.AvailableBytes
			}
			lines = append(lines, usageLine(name, used, v.TotalBytes))
		}
		return lines
	}
	return nil
}

func usageLine(label string, used, total uint64) string {
	pct := 0.0
	if total > 0 {
		pct = float64(used) / float64(total) * 100
	}
	return fmt.Sprintf("%s %s %s / %s",
		LabelStyle.Render(label),
		ProgressBar(summaryBarWidth, pct),
		humanize.IBytes(used),
		humanize.IBytes(total))
}

// paneRects computes every pane's on-screen size for a w x h body.
func paneRects(e pane.Element, w, h int) map[pane.ID]rect {
	out := make(map[pane.ID]rect)
	var visit func(e pane.Element, w, h int)
	visit = func(e pane.Element, w, h int) {
		if e.Leaf != nil {
			out[e.Leaf.ID] = rect{w: w, h: h}
			return
		}
		if e.Split == nil {
			return
		}
		a, b := splitSizes(e.Split, w, h)
		visit(e.Split.Left, a.w, a.h)
		visit(e.Split.Right, b.w, b.h)
	}
	visit(e, w, h)
	return out
}

// splitSizes divides w x h between a split's children by its ratio.
func splitSizes(s *pane.SplitView, w, h int) (rect, rect) {
	if s.Axis == pane.Horizontal {
		top := int(math.Round(s.Ratio * float64(h)))
		return rect{w: w, h: top}, rect{w: w, h: h - top}
	}
	left := int(math.Round(s.Ratio * float64(w)))
	return rect{w: left, h: h}, rect{w: w - left, h: h}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
