package tui

import (
	"strings"

	"DesiresAfterDuties/pkg/ui"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// nodeRenderer draws a node list into a fixed width. Buttons are numbered
// in the order ui.Buttons returns them so focus indexes line up.
type nodeRenderer struct {
	width   int
	focus   int
	buttons int
}

// renderNodes renders nodes at width with the focus-th button highlighted.
func renderNodes(nodes []ui.Node, width, focus int) string {
	r := &nodeRenderer{width: width, focus: focus}
	return strings.Join(r.renderAll(nodes), "\n")
}

func (r *nodeRenderer) renderAll(nodes []ui.Node) []string {
	var out []string
	for _, n := range nodes {
		if s, ok := r.render(n); ok {
			out = append(out, s)
		}
	}
	return out
}

func (r *nodeRenderer) render(n ui.Node) (string, bool) {
	switch n.Kind {
	case ui.KindColumn:
		return strings.Join(r.renderAll(n.Children), "\n"), len(n.Children) > 0
	case ui.KindHeading:
		return HeadingStyle.Width(r.width).Align(lipgloss.Center).Render(wrapText(n.Text, r.width)), true
	case ui.KindSubheading:
		return SubheadingStyle.Width(r.width).Align(lipgloss.Center).Render(wrapText(n.Text, r.width)), true
	case ui.KindParagraph:
		if n.Justify {
			return ParagraphStyle.Render(justify(n.Text, r.width)), true
		}
		return ParagraphStyle.Render(wrapText(n.Text, r.width)), true
	case ui.KindIconRow:
		return r.iconRow(n.Icons), true
	case ui.KindDivider:
		return DividerStyle.Render(strings.Repeat("─", r.width)), true
	case ui.KindButton:
		style := ButtonStyle
		if r.buttons == r.focus {
			style = FocusedButtonStyle
		}
		r.buttons++
		return lipgloss.PlaceHorizontal(r.width, lipgloss.Center, style.Render(n.Text)), true
	case ui.KindError:
		return ErrorMsgStyle.Width(r.width).Align(lipgloss.Center).Render(wrapText(n.Text, r.width)), true
	}
	return "", false
}

func (r *nodeRenderer) iconRow(items []ui.IconLabel) string {
	cells := make([]string, 0, len(items))
	for _, it := range items {
		cells = append(cells, it.Icon.Glyph()+" "+IconLabelStyle.Render(it.Label))
	}
	row := strings.Join(cells, "    ")
	if lipgloss.Width(row) > r.width {
		row = strings.Join(cells, "\n")
	}
	return lipgloss.PlaceHorizontal(r.width, lipgloss.Center, row)
}

func wrapText(s string, width int) string {
	return wordwrap.String(s, width)
}

// justify word-wraps s to width and pads every line but the last with
// extra spaces between words so both edges line up.
func justify(s string, width int) string {
	lines := strings.Split(wordwrap.String(s, width), "\n")
	for i := 0; i < len(lines)-1; i++ {
		lines[i] = justifyLine(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func justifyLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) < 2 {
		return line
	}

	used := 0
	for _, w := range words {
		used += lipgloss.Width(w)
	}
	gaps := len(words) - 1
	spaces := width - used
	if spaces < gaps {
		return line
	}

	var sb strings.Builder
	for i, w := range words {
		sb.WriteString(w)
		if i == gaps {
			break
		}
		n := spaces / gaps
		if i < spaces%gaps {
			n++
		}
		sb.WriteString(strings.Repeat(" ", n))
	}
	return sb.String()
}
