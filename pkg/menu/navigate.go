package menu

// NextSelectable finds the nearest selectable node from the current
// cursor position in the given direction (+1 next, -1 previous) and
// returns its row in the refreshed visible flattening.
//
// The search runs over the navigation order, so it reaches selectable
// nodes buried inside collapsed branches. As a side effect the target's
// ancestor chain is expanded and expanded branches that share a level
// with the path but are not on it get collapsed, keeping the displayed
// tree focused on the route to the cursor.
//
// cur is interpreted against the visible flattening before the call.
// An out-of-range cur (such as -1) means "before the first node" when
// dir > 0 and "after the last node" when dir < 0, which serves both
// initial placement and the Home/End jumps. When no node in the forest
// is selectable, cur is returned unchanged after one full wrap.
func NextSelectable(roots []*Node, cur VisibleIndex, dir int) VisibleIndex {
	all := FlattenAll(roots)
	if len(all) == 0 {
		return cur
	}

	visible := FlattenVisible(roots)
	nav := navPosition(all, visible, cur, dir)

	n := len(all)
	for step := 1; step <= n; step++ {
		candidate := all[mod(int(nav)+dir*step, n)]
		if !candidate.Selectable {
			continue
		}
		expandAncestors(candidate)
		collapseOffPath(roots, candidate)
		for i, node := range FlattenVisible(roots) {
			if node == candidate {
				return VisibleIndex(i)
			}
		}
		// Unreachable once the ancestor chain is expanded; stay put
		// rather than report a row that does not exist.
		return cur
	}
	return cur
}

// navPosition maps a visible row to its position in the navigation
// order, applying the sentinel semantics for out-of-range rows.
func navPosition(all, visible []*Node, cur VisibleIndex, dir int) NavIndex {
	if int(cur) < 0 || int(cur) >= len(visible) {
		if dir > 0 {
			return NavIndex(-1)
		}
		return NavIndex(len(all))
	}
	node := visible[cur]
	for i, n := range all {
		if n == node {
			return NavIndex(i)
		}
	}
	return NavIndex(0)
}

// expandAncestors opens every ancestor of the node so that it appears
// in the visible flattening. The node itself keeps its own state.
func expandAncestors(n *Node) {
	for p := n.parent; p != nil; p = p.parent {
		p.Expanded = true
	}
}

// collapseOffPath closes expanded branches that sit at the same level
// as a node on the root-to-target path without being on the path
// themselves. Without this pruning the visible tree grows without
// bound as the cursor crosses branches.
func collapseOffPath(roots []*Node, target *Node) {
	var path []*Node
	for n := target; n != nil; n = n.parent {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	var prune func(nodes []*Node, depth int)
	prune = func(nodes []*Node, depth int) {
		if depth >= len(path) {
			return
		}
		onPath := path[depth]
		for _, n := range nodes {
			if n == onPath {
				prune(n.Children, depth+1)
			} else if len(n.Children) > 0 && n.Expanded && n.level == onPath.level {
				n.Expanded = false
			}
		}
	}
	prune(roots, 0)
}

// mod is the floored modulo, safe for the negative offsets produced by
// backward wrap-around.
func mod(x, n int) int {
	return ((x % n) + n) % n
}
