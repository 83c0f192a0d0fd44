package render

import (
	"encoding/json"

	"github.com/deeklead/scribe/internal/document"
)

// jsonBlock mirrors document.Block with both plain and LaTeX forms of
// the math so consumers need no expression types.
type jsonBlock struct {
	Level    int         `json:"level"`
	Kind     string      `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Plain    string      `json:"plain,omitempty"`
	LaTeX    string      `json:"latex,omitempty"`
	Title    string      `json:"title,omitempty"`
	Children []jsonBlock `json:"children,omitempty"`
}

type jsonDocument struct {
	Blocks []jsonBlock `json:"blocks"`
}

// JSON renders the document as indented JSON.
func JSON(doc document.Document) ([]byte, error) {
	return json.MarshalIndent(jsonDocument{Blocks: jsonBlocks(doc.Blocks)}, "", "  ")
}

func jsonBlocks(blocks []document.Block) []jsonBlock {
	out := make([]jsonBlock, 0, len(blocks))
	for _, b := range blocks {
		jb := jsonBlock{Level: b.Level, Kind: b.Kind.String()}
		switch b.Kind {
		case document.KindText:
			jb.Text = b.Text
		case document.KindMath:
			jb.Plain = b.Math.String()
			jb.LaTeX = b.Math.LaTeX()
		case document.KindGroup:
			jb.Title = b.Title
			jb.Children = jsonBlocks(b.Children)
		}
		out = append(out, jb)
	}
	return out
}
