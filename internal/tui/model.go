// Package tui is the interactive step viewer behind "scribe view".
//
// The document is flattened to one row per block. Method groups start
// collapsed and toggle open with enter, the way the web renderer's
// details blocks do.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/style"
	"github.com/deeklead/scribe/internal/symbolic"
)

// node is one block of the document with its expansion state.
// Children are present only for group blocks.
type node struct {
	block    document.Block
	children []*node
	expanded bool
}

// Model is the bubbletea model for the step viewer.
type Model struct {
	expression string
	variable   string
	opts       steps.Options

	nodes  []*node
	answer string
	solved bool
	loaded bool
	err    error

	cursor   int
	viewport viewport.Model
	ready    bool

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

// New creates a step viewer for one integrand.
func New(expression, variable string, opts steps.Options) Model {
	h := help.New()
	h.Styles.ShortKey = style.HelpKeyStyle
	h.Styles.ShortDesc = style.HelpDescStyle
	h.Styles.FullKey = style.HelpKeyStyle
	h.Styles.FullDesc = style.HelpDescStyle

	return Model{
		expression: expression,
		variable:   variable,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
	}
}

// Init kicks off the derivation.
func (m Model) Init() tea.Cmd {
	return m.solve
}

// solveMsg is the result of deriving the integrand.
type solveMsg struct {
	res steps.Result
	err error
}

// solve runs the engine off the event loop.
func (m Model) solve() tea.Msg {
	expr, err := symbolic.Parse(m.expression)
	if err != nil {
		return solveMsg{err: err}
	}
	res, err := steps.Solve(symbolic.NewKernel(), expr, m.variable, m.opts)
	return solveMsg{res: res, err: err}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.contentHeight())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.contentHeight()
		}
		m.syncViewport()
		return m, nil

	case solveMsg:
		m.err = msg.err
		m.loaded = true
		if msg.err == nil {
			m.nodes = buildNodes(msg.res.Document.Blocks)
			m.solved = msg.res.Solved
			if msg.res.Answer != nil {
				m.answer = msg.res.Answer.String()
			}
		}
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			if m.ready {
				m.viewport.Height = m.contentHeight()
			}
			m.syncViewport()
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.syncViewport()
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.maxCursor() {
				m.cursor++
			}
			m.syncViewport()
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
			m.syncViewport()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.cursor = m.maxCursor()
			m.syncViewport()
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.toggleExpand()
			m.syncViewport()
			return m, nil

		// Number keys jump to method groups
		case msg.String() >= "1" && msg.String() <= "9":
			m.jumpToGroup(int(msg.String()[0] - '0'))
			m.syncViewport()
			return m, nil
		}
	}

	return m, nil
}

// buildNodes converts document blocks into toggleable nodes.
func buildNodes(blocks []document.Block) []*node {
	nodes := make([]*node, 0, len(blocks))
	for _, b := range blocks {
		n := &node{block: b}
		if b.Kind == document.KindGroup {
			n.children = buildNodes(b.Children)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// visible returns the rows currently on screen, collapsed groups
// hiding their descendants.
func (m Model) visible() []*node {
	var out []*node
	var walk func(nodes []*node)
	walk = func(nodes []*node) {
		for _, n := range nodes {
			out = append(out, n)
			if n.block.Kind == document.KindGroup && n.expanded {
				walk(n.children)
			}
		}
	}
	walk(m.nodes)
	return out
}

// maxCursor returns the last valid cursor position.
func (m Model) maxCursor() int {
	count := len(m.visible())
	if count == 0 {
		return 0
	}
	return count - 1
}

// toggleExpand toggles the group under the cursor.
func (m *Model) toggleExpand() {
	rows := m.visible()
	if m.cursor >= len(rows) {
		return
	}
	n := rows[m.cursor]
	if n.block.Kind == document.KindGroup {
		n.expanded = !n.expanded
	}
}

// jumpToGroup moves the cursor to the n-th visible group row.
func (m *Model) jumpToGroup(n int) {
	seen := 0
	for i, row := range m.visible() {
		if row.block.Kind != document.KindGroup {
			continue
		}
		seen++
		if seen == n {
			m.cursor = i
			return
		}
	}
}

// contentHeight is the viewport height after the header and footer.
func (m Model) contentHeight() int {
	chrome := 4
	if m.showHelp {
		chrome += 2
	}
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	return h
}

// syncViewport refreshes the viewport content and keeps the cursor
// line in view.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderRows())
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}
