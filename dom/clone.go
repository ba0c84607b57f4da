package dom

// CloneNode creates a detached copy of node, carrying over type, name, value
// and owner document. A cloned document owns itself. If deep is set, all
// descendants are copied as well, preserving their order.
//
// Children are attached to their cloned parents through the regular append
// primitive, so the copy is built under the same invariants as any edited tree.
func (f *Forest) CloneNode(node Handle, deep bool) (Handle, error) {
	if err := f.checkHandles("clone-node", node); err != nil {
		return Null, err
	}
	clone := f.shallowClone(node)
	if !deep {
		return clone, nil
	}
	type job struct{ src, dstParent Handle }
	var queue []job
	for c := f.nodes[node].first; c != Null; c = f.nodes[c].next {
		queue = append(queue, job{c, clone})
	}
	// breadth first; the children of each parent are enqueued in order
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		c := f.shallowClone(j.src)
		f.appendChild(j.dstParent, c)
		for cc := f.nodes[j.src].first; cc != Null; cc = f.nodes[cc].next {
			queue = append(queue, job{cc, c})
		}
	}
	tracer().Debugf("deep clone of %s is %s", f.String(node), f.String(clone))
	return clone, nil
}

func (f *Forest) shallowClone(node Handle) Handle {
	n := f.nodes[node] // copy, CreateNode may grow the arena
	owner := n.owner
	if n.nodeType == DocumentNode {
		owner = Null
	}
	return f.CreateNode(n.nodeType, n.name, n.value, owner)
}
