package tui

import (
	"strings"

	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/style"
)

// View renders the model.
func (m Model) View() string {
	if m.err != nil {
		return style.ErrorStyle.Render("error: "+m.err.Error()) + "\n" +
			m.help.View(m.keys) + "\n"
	}
	if !m.loaded {
		return style.MutedStyle.Render("Deriving steps...") + "\n"
	}

	var lines []string
	lines = append(lines, m.renderHeader(), "")
	if m.ready {
		lines = append(lines, m.viewport.View())
	} else {
		lines = append(lines, m.renderRows())
	}
	lines = append(lines, "", m.renderFooter())
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderHeader() string {
	return style.TitleStyle.Render("∫ " + m.expression + " d" + m.variable)
}

// renderRows renders the visible document rows, one line each.
func (m Model) renderRows() string {
	rows := m.visible()
	if len(rows) == 0 {
		return style.MutedStyle.Render("No steps to show.")
	}

	lines := make([]string, 0, len(rows))
	for i, n := range rows {
		marker := "  "
		if i == m.cursor {
			marker = style.CursorStyle.Render("▸ ")
		}
		indent := strings.Repeat("  ", n.block.Level)
		lines = append(lines, marker+indent+m.renderBlock(n))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBlock(n *node) string {
	budget := 0
	if m.width > 0 {
		budget = m.width - 2*n.block.Level - 6
	}

	switch n.block.Kind {
	case document.KindText:
		return style.ProseStyle.Render(truncate(n.block.Text, budget))
	case document.KindMath:
		return style.MathStyle.Render(truncate(n.block.Math.String(), budget))
	case document.KindGroup:
		arrow := "▶"
		if n.expanded {
			arrow = "▼"
		}
		return style.GroupTitleStyle.Render(arrow + " " + n.block.Title)
	default:
		return ""
	}
}

func (m Model) renderFooter() string {
	var answer string
	switch {
	case m.solved:
		answer = style.SuccessStyle.Render("Answer: " + m.answer)
	default:
		answer = style.MutedStyle.Render("No closed form with the known techniques.")
	}
	return answer + "\n" + m.help.View(m.keys)
}

// truncate clips a row to the available width. Zero or negative width
// means no clipping.
func truncate(s string, w int) string {
	if w <= 3 || len(s) <= w {
		return s
	}
	return s[:w-3] + "..."
}
