package dom

// insertFragment moves all children of fragment to newParent, as a contiguous
// run between before and after. before == Null makes the run the new head of
// newParent's children, after == Null makes it the new tail.
// The fragment is left without children.
//
// Inserting n children costs a single pass over the run.
func (f *Forest) insertFragment(fragment, newParent, before, after Handle) {
	frag := &f.nodes[fragment]
	if frag.first == Null {
		return
	}
	first, last := frag.first, frag.first
	f.nodes[first].prev = before
	if before != Null {
		f.nodes[before].next = first
	} else {
		f.nodes[newParent].first = first
	}
	for n := first; n != Null; n = f.nodes[n].next {
		f.nodes[n].parent = newParent
		last = n
	}
	assertThat(last == frag.last, "fragment %s has inconsistent last child", fragment)
	f.nodes[last].next = after
	if after != Null {
		f.nodes[after].prev = last
	} else {
		f.nodes[newParent].last = last
	}
	frag.first, frag.last = Null, Null
	f.propagateOwner(newParent, first, last)
	tracer().Debugf("spliced children of fragment %s into %s", fragment, f.String(newParent))
}
