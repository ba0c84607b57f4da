package dom

// Contains is true if node is a descendant of ancestor. A node does not
// contain itself.
func (f *Forest) Contains(ancestor, node Handle) bool {
	if !f.Valid(ancestor) || !f.Valid(node) {
		return false
	}
	for p := f.nodes[node].parent; p != Null; p = f.nodes[p].parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// InclusiveContains is true if node is ancestor or one of its descendants.
func (f *Forest) InclusiveContains(ancestor, node Handle) bool {
	return f.Valid(node) && (ancestor == node || f.Contains(ancestor, node))
}

// RootNode returns the root of the tree h is part of. A detached node is
// its own root.
func (f *Forest) RootNode(h Handle) Handle {
	if !f.Valid(h) {
		return Null
	}
	for f.nodes[h].parent != Null {
		h = f.nodes[h].parent
	}
	return h
}
