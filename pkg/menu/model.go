package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Home   key.Binding
	End    key.Binding
	Select key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		Home:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q/esc", "cancel")),
	}
}

// Model is the full-screen browsing session: a single state (browsing)
// that exits by selection or cancellation. It implements tea.Model and
// is driven synchronously by the program's read-key/redraw cycle.
type Model struct {
	roots  []*Node
	title  string
	keys   keyMap
	styles Styles

	cursor VisibleIndex
	top    int // first content line shown, in wrapped-line units
	width  int
	height int

	choice *Node
	done   bool
}

// NewModel prepares a browsing session over the given forest. The
// title may span multiple lines; it is wrapped above the options.
// AssignLevels must have run on roots (InteractiveSelect does this).
func NewModel(roots []*Node, title string) Model {
	return Model{
		roots:  roots,
		title:  title,
		keys:   defaultKeyMap(),
		styles: DefaultStyles(),
		cursor: NextSelectable(roots, -1, +1),
	}
}

// Choice returns the selected node once the session has finished, or
// nil if the user cancelled.
func (m Model) Choice() *Node { return m.choice }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = NextSelectable(m.roots, m.cursor, -1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = NextSelectable(m.roots, m.cursor, +1)
		case key.Matches(msg, m.keys.Home):
			m.cursor = NextSelectable(m.roots, -1, +1)
		case key.Matches(msg, m.keys.End):
			m.cursor = NextSelectable(m.roots, VisibleIndex(len(FlattenVisible(m.roots))), -1)
		case key.Matches(msg, m.keys.Right):
			m.expandOrMoveToChild()
		case key.Matches(msg, m.keys.Left):
			m.collapseOrJumpToParent()
		case key.Matches(msg, m.keys.Select):
			if node := m.nodeAt(m.cursor); node != nil && node.Selectable {
				m.choice = node
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			m.done = true
			return m, tea.Quit
		default:
			return m, nil
		}
		m.ensureCursorVisible()
	}
	return m, nil
}

func (m Model) nodeAt(i VisibleIndex) *Node {
	visible := FlattenVisible(m.roots)
	if int(i) < 0 || int(i) >= len(visible) {
		return nil
	}
	return visible[i]
}

// expandOrMoveToChild handles →/l: open a closed branch, or step onto
// the first child of an already open one.
func (m *Model) expandOrMoveToChild() {
	node := m.nodeAt(m.cursor)
	if node == nil || len(node.Children) == 0 {
		return
	}
	if !node.Expanded {
		node.Expanded = true
		return
	}
	// Pre-order: the first child sits on the next visible row.
	m.cursor++
}

// collapseOrJumpToParent handles ←/h: close an open branch, or climb
// to the parent of a leaf or closed node.
func (m *Model) collapseOrJumpToParent() {
	node := m.nodeAt(m.cursor)
	if node == nil {
		return
	}
	if len(node.Children) > 0 && node.Expanded {
		node.Expanded = false
		return
	}
	if node.parent == nil {
		return
	}
	for i, n := range FlattenVisible(m.roots) {
		if n == node.parent {
			m.cursor = VisibleIndex(i)
			return
		}
	}
}

// wrappedRows returns each visible node with its wrapped display lines
// for the current width. Branch nodes carry a [+]/[-] marker on their
// first line; the marker wraps with the text, continuation lines are
// flush left.
func (m Model) wrappedRows() [][]string {
	visible := FlattenVisible(m.roots)
	rows := make([][]string, len(visible))
	for i, n := range visible {
		prefix := ""
		if len(n.Children) > 0 {
			if n.Expanded {
				prefix = "[-] "
			} else {
				prefix = "[+] "
			}
		}
		rows[i] = Wrap(prefix+n.Title, m.width-2)
	}
	return rows
}

func (m Model) titleLines() []string {
	if m.title == "" {
		return nil
	}
	return Wrap(m.title, max(1, m.width-1))
}

// ensureCursorVisible moves the scroll offset the minimum distance
// needed to bring every wrapped line of the cursor's row on screen.
// The offset counts lines, not rows: multi-line titles mean the two
// are not interchangeable.
func (m *Model) ensureCursorVisible() {
	if m.width == 0 || int(m.cursor) < 0 {
		return
	}
	rows := m.wrappedRows()
	if int(m.cursor) >= len(rows) {
		m.cursor = VisibleIndex(max(0, len(rows)-1))
	}
	if len(rows) == 0 {
		m.top = 0
		return
	}

	visibleRows := max(1, m.height-len(m.titleLines()))
	linesBefore := 0
	for _, r := range rows[:m.cursor] {
		linesBefore += len(r)
	}
	cursorLines := len(rows[m.cursor])

	if linesBefore < m.top {
		m.top = linesBefore
	} else if linesBefore+cursorLines > m.top+visibleRows {
		m.top = max(0, linesBefore+cursorLines-visibleRows)
	}
}

func (m Model) View() string {
	if m.done || m.width == 0 {
		return ""
	}

	var sb strings.Builder
	row := 0
	for _, line := range m.titleLines() {
		sb.WriteString(m.styles.Title.Render(truncate(line, m.width-1)))
		sb.WriteString("\n")
		row++
	}

	visibleRows := m.height - row
	if visibleRows <= 0 {
		return sb.String()
	}

	visible := FlattenVisible(m.roots)
	rows := m.wrappedRows()
	line := 0
	drawn := 0
	for i, lines := range rows {
		if line+len(lines) <= m.top {
			line += len(lines)
			continue
		}
		style := m.styleFor(visible[i], VisibleIndex(i) == m.cursor)
		for _, l := range lines {
			if line < m.top {
				line++
				continue
			}
			if drawn >= visibleRows {
				return sb.String()
			}
			sb.WriteString(style.Render(truncate(l, m.width-2)))
			sb.WriteString("\n")
			line++
			drawn++
		}
	}
	return sb.String()
}

func (m Model) styleFor(n *Node, underCursor bool) lipgloss.Style {
	switch {
	case underCursor && n.Selectable:
		return m.styles.Cursor
	case underCursor:
		return m.styles.CursorHeader
	case !n.Selectable:
		return m.styles.Header
	default:
		return m.styles.Option
	}
}

// truncate clamps a line to the given cell width. Wrapped lines
// already fit; this guards the frame between a resize and the re-wrap,
// where a stale line could overrun the new width.
func truncate(s string, width int) string {
	if width < 0 {
		width = 0
	}
	return runewidth.Truncate(s, width, "")
}
