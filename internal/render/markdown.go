package render

import (
	"strings"

	"github.com/deeklead/scribe/internal/document"
)

// Markdown renders the document as GitHub-flavored markdown: prose
// lines, display math in $$ blocks, methods as collapsible details.
func Markdown(doc document.Document) string {
	lines := markdownBlocks(doc.Blocks, 0)
	lines = trimBlank(lines)
	return strings.Join(lines, "\n") + "\n"
}

func markdownBlocks(blocks []document.Block, base int) []string {
	var lines []string
	for _, b := range blocks {
		level := b.Level - base
		if level < 0 {
			level = 0
		}
		indent := strings.Repeat(indentUnit, level)
		switch b.Kind {
		case document.KindText:
			lines = append(lines, indent+b.Text, "")
		case document.KindMath:
			lines = append(lines, indent+"$$"+b.Math.LaTeX()+"$$", "")
		case document.KindGroup:
			lines = append(lines, "<details>")
			lines = append(lines, "<summary>"+b.Title+"</summary>", "")
			lines = append(lines, markdownBlocks(b.Children, b.Level+1)...)
			lines = append(lines, "</details>", "")
		}
	}
	return lines
}
