package render

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/style"
)

const (
	// DefaultWidth is assumed when stdout is not a terminal.
	DefaultWidth = 80

	indentUnit = "  "
	mathIndent = "    "
	minWrap    = 20
)

// TerminalWidth reports the current stdout width, DefaultWidth when
// stdout is not a tty.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// Terminal renders the document for an ANSI terminal: wrapped prose,
// indented math, alternative methods in bordered panels.
func Terminal(doc document.Document, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	lines := terminalBlocks(doc.Blocks, 0, width)
	lines = trimBlank(lines)
	return strings.Join(lines, "\n") + "\n"
}

// terminalBlocks renders blocks indented relative to base, so group
// children do not double-indent inside their panel.
func terminalBlocks(blocks []document.Block, base, width int) []string {
	var lines []string
	for _, b := range blocks {
		level := b.Level - base
		if level < 0 {
			level = 0
		}
		indent := strings.Repeat(indentUnit, level)
		switch b.Kind {
		case document.KindText:
			wrap := width - len(indent)
			if wrap < minWrap {
				wrap = minWrap
			}
			rendered := style.ProseStyle.Width(wrap).Render(b.Text)
			for _, line := range strings.Split(rendered, "\n") {
				lines = append(lines, indent+line)
			}
		case document.KindMath:
			lines = append(lines, indent+mathIndent+style.MathStyle.Render(b.Math.String()))
			lines = append(lines, "")
		case document.KindGroup:
			content := style.GroupTitleStyle.Render(b.Title)
			inner := trimBlank(terminalBlocks(b.Children, b.Level+1, width-6))
			if len(inner) > 0 {
				content += "\n" + strings.Join(inner, "\n")
			}
			panel := style.MethodPanelStyle.Render(content)
			for _, line := range strings.Split(panel, "\n") {
				lines = append(lines, indent+line)
			}
			lines = append(lines, "")
		}
	}
	return lines
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
