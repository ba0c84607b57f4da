package dom

// documentOf returns the document nodes attached to parent will belong to.
func (f *Forest) documentOf(parent Handle) Handle {
	p := &f.nodes[parent]
	if p.nodeType == DocumentNode {
		return parent
	}
	return p.owner
}

// propagateOwner re-tags the owner document of the run of siblings first…last,
// which has just been attached to parent, including all of their descendants.
// Run members already belonging to the target document are skipped together
// with their sub-trees; sub-trees are owner-consistent, as every attachment
// passes through here.
//
// Only the attached sub-trees are visited, never the rest of the destination tree.
func (f *Forest) propagateOwner(parent, first, last Handle) {
	doc := f.documentOf(parent)
	var stack []Handle
	for n := first; n != Null; n = f.nodes[n].next {
		if f.nodes[n].owner != doc {
			stack = append(stack, n)
		}
		if n == last {
			break
		}
	}
	if len(stack) == 0 {
		return
	}
	tracer().Debugf("propagating owner document %s to %d sub-tree(s)", doc, len(stack))
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.nodes[n].owner = doc
		for c := f.nodes[n].first; c != Null; c = f.nodes[c].next {
			stack = append(stack, c)
		}
	}
}
