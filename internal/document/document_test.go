package document

import (
	"testing"

	"github.com/deeklead/scribe/internal/symbolic"
)

func TestBuilderAppendsInOrder(t *testing.T) {
	b := NewBuilder()
	b.Text(0, "first")
	b.Math(1, symbolic.MustParse("x^2"))
	b.Textf(0, "then %s", "second")
	doc := b.Document()

	if len(doc.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(doc.Blocks))
	}
	if doc.Blocks[0].Kind != KindText || doc.Blocks[0].Text != "first" {
		t.Fatalf("block 0 = %+v", doc.Blocks[0])
	}
	if doc.Blocks[1].Kind != KindMath || doc.Blocks[1].Math.String() != "x^2" {
		t.Fatalf("block 1 = %+v", doc.Blocks[1])
	}
	if doc.Blocks[2].Text != "then second" {
		t.Fatalf("block 2 text = %q", doc.Blocks[2].Text)
	}
}

func TestGroupChildrenStayNested(t *testing.T) {
	b := NewBuilder()
	b.Text(0, "before")
	b.Group(0, "Method #1", func(g *Builder) {
		g.Text(1, "inside")
		g.Math(2, symbolic.MustParse("x"))
	})
	b.Text(0, "after")
	doc := b.Document()

	if len(doc.Blocks) != 3 {
		t.Fatalf("top blocks = %d, want 3", len(doc.Blocks))
	}
	group := doc.Blocks[1]
	if group.Kind != KindGroup || group.Title != "Method #1" {
		t.Fatalf("group = %+v", group)
	}
	if len(group.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(group.Children))
	}
	if group.Children[0].Level != 1 || group.Children[1].Level != 2 {
		t.Fatalf("child levels = %d, %d", group.Children[0].Level, group.Children[1].Level)
	}
	// Appends after the group land back at the top level.
	if doc.Blocks[2].Level != 0 {
		t.Fatalf("block after group at level %d, want 0", doc.Blocks[2].Level)
	}
}

func TestLen(t *testing.T) {
	b := NewBuilder()
	b.Text(0, "a")
	b.Group(0, "g", func(g *Builder) {
		g.Text(1, "b")
		g.Group(1, "h", func(gg *Builder) {
			gg.Text(2, "c")
		})
	})
	if got := b.Document().Len(); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindText, "text"},
		{KindMath, "math"},
		{KindGroup, "group"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
