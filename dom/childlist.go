package dom

// ChildList is a live, index-addressable view of the children of a node.
// It holds no state besides the node it is bound to, thus every edit of the
// tree is reflected immediately. Access by index is O(index).
type ChildList struct {
	forest *Forest
	node   Handle
}

// Node returns the node the list is bound to.
func (cl ChildList) Node() Handle {
	return cl.node
}

// Item returns the child at position index, or Null if there are not enough
// children or index is negative.
func (cl ChildList) Item(index int) Handle {
	if cl.forest == nil || index < 0 {
		return Null
	}
	child := cl.forest.FirstChild(cl.node)
	for i := 0; child != Null && i != index; i++ {
		child = cl.forest.nodes[child].next
	}
	return child
}

// Length counts the children.
func (cl ChildList) Length() int {
	if cl.forest == nil {
		return 0
	}
	n := 0
	for c := cl.forest.FirstChild(cl.node); c != Null; c = cl.forest.nodes[c].next {
		n++
	}
	return n
}

// Slice returns a snapshot of the children. The snapshot is not live.
func (cl ChildList) Slice() []Handle {
	if cl.forest == nil {
		return nil
	}
	var children []Handle
	for c := cl.forest.FirstChild(cl.node); c != Null; c = cl.forest.nodes[c].next {
		children = append(children, c)
	}
	return children
}
