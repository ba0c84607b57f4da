package dom

// Predicate is a function type to match against nodes of a forest.
// It is used as an argument for Descendants.
type Predicate func(f *Forest, h Handle) bool

// Whatever is a predicate to match anything.
func Whatever() Predicate {
	return func(*Forest, Handle) bool { return true }
}

// NodeIsText is a predicate to match text nodes.
var NodeIsText Predicate = func(f *Forest, h Handle) bool {
	return f.NodeType(h) == TextNode
}

// NodeIsElement is a predicate to match element nodes.
var NodeIsElement Predicate = func(f *Forest, h Handle) bool {
	return f.NodeType(h) == ElementNode
}

// NodeIsLeaf is a predicate to match nodes without children.
var NodeIsLeaf Predicate = func(f *Forest, h Handle) bool {
	return !f.HasChildNodes(h)
}

// NodeHasName returns a predicate to match nodes with a given node name.
func NodeHasName(name string) Predicate {
	return func(f *Forest, h Handle) bool {
		return f.NodeName(h) == name
	}
}

// Walk visits root and all of its descendants in document order (pre-order).
// If visit returns false for a node, the sub-tree below it is skipped.
func (f *Forest) Walk(root Handle, visit func(h Handle, depth int) bool) {
	if !f.Valid(root) || visit == nil {
		return
	}
	type item struct {
		h     Handle
		depth int
	}
	stack := []item{{root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(it.h, it.depth) {
			continue
		}
		// push in reverse to pop children in order
		for c := f.nodes[it.h].last; c != Null; c = f.nodes[c].prev {
			stack = append(stack, item{c, it.depth + 1})
		}
	}
}

// Descendants collects all descendants of root matching predicate, in
// document order. root itself is not included.
func (f *Forest) Descendants(root Handle, predicate Predicate) []Handle {
	if predicate == nil {
		return nil
	}
	var selection []Handle
	f.Walk(root, func(h Handle, depth int) bool {
		if depth > 0 && predicate(f, h) {
			selection = append(selection, h)
		}
		return true
	})
	return selection
}
