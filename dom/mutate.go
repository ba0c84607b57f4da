package dom

import "fmt"

// AppendChild adds node as the last child of parent and returns node.
//
// If node is attached to another parent, it is removed from there first.
// If node is a document fragment, all of its children are appended instead,
// in order, and the fragment is left empty.
// The owner document of the appended sub-tree(s) is adjusted to parent's.
func (f *Forest) AppendChild(parent, node Handle) (Handle, error) {
	if err := f.checkInsertion("append-child", parent, node); err != nil {
		return Null, err
	}
	f.appendChild(parent, node)
	return node, nil
}

// InsertBefore inserts node as a child of parent immediately before ref and
// returns node. ref has to be a child of parent. If ref is Null, InsertBefore
// behaves like AppendChild.
//
// Fragments and nodes attached elsewhere are handled as for AppendChild.
func (f *Forest) InsertBefore(parent, node, ref Handle) (Handle, error) {
	if ref == Null {
		return f.AppendChild(parent, node)
	}
	if err := f.checkInsertion("insert-before", parent, node); err != nil {
		return Null, err
	}
	if err := f.checkChild("insert-before", parent, ref); err != nil {
		return Null, err
	}
	f.insertBefore(parent, node, ref)
	return node, nil
}

// RemoveChild detaches ref from parent and returns it. ref has to be a child
// of parent. The descendants of ref stay attached to ref.
func (f *Forest) RemoveChild(parent, ref Handle) (Handle, error) {
	if err := f.checkHandles("remove-child", parent, ref); err != nil {
		return Null, err
	}
	if err := f.checkChild("remove-child", parent, ref); err != nil {
		return Null, err
	}
	f.removeChild(parent, ref)
	return ref, nil
}

// ReplaceChild puts newChild in place of oldChild, which has to be a child of
// parent, and returns oldChild. It is the composition of
//
//     InsertBefore(parent, newChild, oldChild)
//     RemoveChild(parent, oldChild)
//
// Replacing a child by itself leaves the tree unchanged.
func (f *Forest) ReplaceChild(parent, newChild, oldChild Handle) (Handle, error) {
	if err := f.checkInsertion("replace-child", parent, newChild); err != nil {
		return Null, err
	}
	if err := f.checkHandles("replace-child", oldChild); err != nil {
		return Null, err
	}
	if err := f.checkChild("replace-child", parent, oldChild); err != nil {
		return Null, err
	}
	if newChild == oldChild {
		return oldChild, nil
	}
	f.insertBefore(parent, newChild, oldChild)
	f.removeChild(parent, oldChild)
	return oldChild, nil
}

// --- Primitives ------------------------------------------------------------

// Primitives do no checking. Every public mutation ends up here.

func (f *Forest) appendChild(parent, node Handle) {
	if f.nodes[node].nodeType == DocumentFragmentNode {
		f.insertFragment(node, parent, f.nodes[parent].last, Null)
		return
	}
	if p := f.nodes[node].parent; p != Null {
		f.removeChild(p, node)
	}
	n := &f.nodes[node]
	n.parent = parent
	if last := f.nodes[parent].last; last == Null {
		f.nodes[parent].first = node
		f.nodes[parent].last = node
	} else {
		n.prev = last
		f.nodes[last].next = node
		f.nodes[parent].last = node
	}
	f.propagateOwner(parent, node, node)
	tracer().Debugf("appended %s to %s", f.String(node), f.String(parent))
}

func (f *Forest) insertBefore(parent, node, ref Handle) {
	if node == ref { // inserting a node before itself keeps its position
		if ref = f.nodes[node].next; ref == Null {
			f.appendChild(parent, node)
			return
		}
	}
	if f.nodes[node].nodeType == DocumentFragmentNode {
		f.insertFragment(node, parent, f.nodes[ref].prev, ref)
		return
	}
	if p := f.nodes[node].parent; p != Null {
		f.removeChild(p, node)
	}
	n := &f.nodes[node]
	n.parent = parent
	if prev := f.nodes[ref].prev; prev != Null {
		f.nodes[prev].next = node
		n.prev = prev
	}
	f.nodes[ref].prev = node
	n.next = ref
	if f.nodes[parent].first == ref {
		f.nodes[parent].first = node
	}
	f.propagateOwner(parent, node, node)
	tracer().Debugf("inserted %s into %s before %s", f.String(node), f.String(parent), f.String(ref))
}

func (f *Forest) removeChild(parent, ref Handle) {
	p, r := &f.nodes[parent], &f.nodes[ref]
	if p.first == ref {
		p.first = r.next
	}
	if p.last == ref {
		p.last = r.prev
	}
	if r.prev != Null {
		f.nodes[r.prev].next = r.next
	}
	if r.next != Null {
		f.nodes[r.next].prev = r.prev
	}
	r.parent, r.prev, r.next = Null, Null, Null
	tracer().Debugf("removed %s from %s", f.String(ref), f.String(parent))
}

// --- Preconditions ---------------------------------------------------------

func (f *Forest) checkHandles(op string, hs ...Handle) error {
	for _, h := range hs {
		if !f.Valid(h) {
			tracer().Errorf("%s: invalid handle %s", op, h)
			return fmt.Errorf("%s: handle %s: %w", op, h, ErrInvalidHandle)
		}
	}
	return nil
}

// checkInsertion checks if node may become a child of parent.
func (f *Forest) checkInsertion(op string, parent, node Handle) error {
	if err := f.checkHandles(op, parent, node); err != nil {
		return err
	}
	if f.trusting {
		return nil
	}
	if f.nodes[node].nodeType == DocumentNode {
		tracer().Errorf("%s: document %s cannot become a child", op, node)
		return fmt.Errorf("%s: document %s cannot become a child: %w", op, node, ErrHierarchyRequest)
	}
	if f.InclusiveContains(node, parent) {
		tracer().Errorf("%s: %s is an inclusive ancestor of %s", op, node, parent)
		return fmt.Errorf("%s: %s is an inclusive ancestor of %s: %w", op, node, parent, ErrHierarchyRequest)
	}
	return nil
}

// checkChild checks if ref is a child of parent.
func (f *Forest) checkChild(op string, parent, ref Handle) error {
	if err := f.checkHandles(op, ref); err != nil {
		return err
	}
	if f.trusting {
		return nil
	}
	if f.nodes[ref].parent != parent {
		tracer().Errorf("%s: %s is not a child of %s", op, ref, parent)
		return fmt.Errorf("%s: %s is not a child of %s: %w", op, ref, parent, ErrNotAChild)
	}
	return nil
}
