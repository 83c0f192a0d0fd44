// Package document holds the renderer-neutral output of the step
// printer: an ordered list of leveled blocks. Producing markup from a
// Document is a renderer concern; nothing here knows any syntax.
package document

import (
	"fmt"

	"github.com/deeklead/scribe/internal/algebra"
)

// Kind discriminates the block variants.
type Kind int

const (
	// KindText is a prose block.
	KindText Kind = iota
	// KindMath is a display math block.
	KindMath
	// KindGroup is a titled, collapsible run of child blocks.
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMath:
		return "math"
	case KindGroup:
		return "group"
	}
	return "unknown"
}

// Block is one document entry. Level is the nesting depth, 0 at the
// root. Text is set for KindText, Math for KindMath, Title and
// Children for KindGroup. Children carry absolute levels, at least one
// deeper than the group itself.
type Block struct {
	Level    int
	Kind     Kind
	Text     string
	Math     algebra.Expr
	Title    string
	Children []Block
}

// Document is an ordered sequence of blocks, immutable once built.
type Document struct {
	Blocks []Block
}

// Len counts all blocks, including group children.
func (d Document) Len() int {
	return countBlocks(d.Blocks)
}

func countBlocks(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		n++
		n += countBlocks(b.Children)
	}
	return n
}

// Builder accumulates blocks. The nesting level is an argument on
// every append, never builder state, so a caller deep in a recursion
// cannot leave the builder at the wrong level.
type Builder struct {
	blocks []Block
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Text appends a prose block.
func (b *Builder) Text(level int, text string) {
	b.blocks = append(b.blocks, Block{Level: level, Kind: KindText, Text: text})
}

// Textf appends a formatted prose block.
func (b *Builder) Textf(level int, format string, args ...any) {
	b.Text(level, fmt.Sprintf(format, args...))
}

// Math appends a display math block.
func (b *Builder) Math(level int, expr algebra.Expr) {
	b.blocks = append(b.blocks, Block{Level: level, Kind: KindMath, Math: expr})
}

// Group appends a collapsible block whose children are produced by
// fill into a fresh builder.
func (b *Builder) Group(level int, title string, fill func(*Builder)) {
	child := NewBuilder()
	fill(child)
	b.blocks = append(b.blocks, Block{
		Level:    level,
		Kind:     KindGroup,
		Title:    title,
		Children: child.blocks,
	})
}

// Document returns the accumulated document.
func (b *Builder) Document() Document {
	return Document{Blocks: b.blocks}
}
