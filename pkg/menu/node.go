// Package menu implements an interactive hierarchical terminal menu:
// a forest of collapsible nodes navigated with arrow keys in a
// full-screen session, with a plain numeric prompt as the non-TTY
// fallback.
package menu

// Node is a single entry in the menu forest: either a selectable choice
// or a pure group header. Titles may contain embedded newlines and are
// word-wrapped at render time. Payload is opaque caller data.
//
// The zero value of Expanded is collapsed, so a freshly constructed
// branch starts closed until navigation or the caller opens it.
type Node struct {
	Title      string
	Selectable bool
	Payload    any
	Children   []*Node
	Expanded   bool

	// Derived caches, recomputed by AssignLevels and refreshed during
	// flattening. Never authoritative: external mutation of Children
	// invalidates them until the next pass.
	parent *Node
	level  int
}

// Parent returns the node's parent as of the last traversal pass, or
// nil for roots.
func (n *Node) Parent() *Node { return n.parent }

// Level returns the node's depth as of the last traversal pass
// (roots are level 0).
func (n *Node) Level() int { return n.level }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// VisibleIndex addresses a row in the visible flattening (the list of
// nodes actually displayed, respecting collapse state).
type VisibleIndex int

// NavIndex addresses a position in the navigation order (the
// depth-first list of every node, ignoring collapse state).
//
// The two coordinate spaces are deliberately distinct types: a visible
// row number is never a navigation-order position.
type NavIndex int

// AssignLevels walks the forest and records each node's depth and
// parent. Call it once before navigating, and again after any external
// mutation of Children. The component's own mutations (Expanded only)
// never require a re-pass.
func AssignLevels(roots []*Node) {
	assignLevels(roots, 0, nil)
}

func assignLevels(nodes []*Node, level int, parent *Node) {
	for _, n := range nodes {
		n.level = level
		n.parent = parent
		if len(n.Children) > 0 {
			assignLevels(n.Children, level+1, n)
		}
	}
}

// FlattenVisible returns the depth-first pre-order list of displayed
// nodes: children are included only under expanded parents. Parent
// links are refreshed on the way down.
func FlattenVisible(roots []*Node) []*Node {
	return appendVisible(nil, roots, nil)
}

func appendVisible(out []*Node, nodes []*Node, parent *Node) []*Node {
	for _, n := range nodes {
		n.parent = parent
		out = append(out, n)
		if len(n.Children) > 0 && n.Expanded {
			out = appendVisible(out, n.Children, n)
		}
	}
	return out
}

// FlattenAll returns the depth-first pre-order list of every node
// regardless of collapse state. This is the navigation order used to
// compute next/previous selectable, independent of what is displayed.
func FlattenAll(roots []*Node) []*Node {
	return appendAll(nil, roots)
}

func appendAll(out []*Node, nodes []*Node) []*Node {
	for _, n := range nodes {
		out = append(out, n)
		if len(n.Children) > 0 {
			out = appendAll(out, n.Children)
		}
	}
	return out
}
