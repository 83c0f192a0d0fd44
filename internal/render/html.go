package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/document"
)

// Page describes a standalone HTML page around one step document.
type Page struct {
	Title        string
	ProblemLaTeX string
	Document     document.Document
}

var htmlFuncs = template.FuncMap{
	"indentEm": func(level int) template.CSS {
		return template.CSS(fmt.Sprintf("margin-left:%.1fem", float64(level)*1.5))
	},
}

// blocksHTML renders the recursive step structure: prose as
// paragraphs, math as KaTeX display blocks, alternative methods as
// native collapsible details.
const blocksHTML = `{{define "blocks"}}{{range .}}{{if eq .Kind.String "text"}}<p class="step" style="{{indentEm .Level}}">{{.Text}}</p>
{{else if eq .Kind.String "math"}}<div class="math" style="{{indentEm .Level}}">\[{{.Math.LaTeX}}\]</div>
{{else}}<details class="method" style="{{indentEm .Level}}"><summary>{{.Title}}</summary>
{{template "blocks" .Children}}</details>
{{end}}{{end}}{{end}}`

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.CDN}}/katex.min.css">
<script defer src="{{.CDN}}/katex.min.js"></script>
<script defer src="{{.CDN}}/contrib/auto-render.min.js" onload="renderMathInElement(document.body)"></script>
<style>
body { font-family: Georgia, serif; max-width: 46em; margin: 2em auto; padding: 0 1em; color: #1f2430; }
h1 { font-size: 1.3em; border-bottom: 1px solid #d9dbe0; padding-bottom: 0.4em; }
.problem { font-size: 1.1em; margin: 1em 0; }
.step { margin: 0.5em 0; }
.math { margin: 0.3em 0; }
details.method { border: 1px solid #d9dbe0; border-radius: 6px; padding: 0.4em 0.8em; margin: 0.6em 0; }
details.method summary { cursor: pointer; font-weight: bold; color: #399ee6; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .ProblemLaTeX}}<div class="problem">\[{{.ProblemLaTeX}}\]</div>{{end}}
{{template "blocks" .Blocks}}
</body>
</html>
`

var htmlTmpl = template.Must(
	template.New("page").Funcs(htmlFuncs).Parse(blocksHTML + pageHTML))

// HTMLFragment renders only the step blocks, for embedding.
func HTMLFragment(doc document.Document) (string, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.ExecuteTemplate(&buf, "blocks", doc.Blocks); err != nil {
		return "", fmt.Errorf("rendering steps: %w", err)
	}
	return buf.String(), nil
}

// HTMLPage renders a complete page with the KaTeX wiring included.
func HTMLPage(p Page) (string, error) {
	data := struct {
		Title        string
		ProblemLaTeX string
		Blocks       []document.Block
		CDN          string
	}{
		Title:        p.Title,
		ProblemLaTeX: p.ProblemLaTeX,
		Blocks:       p.Document.Blocks,
		CDN:          constants.KaTeXCDN,
	}
	var buf bytes.Buffer
	if err := htmlTmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return buf.String(), nil
}
