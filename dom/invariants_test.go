package dom

import (
	"testing"
)

// checkInvariants verifies the structural invariants for every node of f.
func checkInvariants(t *testing.T, f *Forest) {
	t.Helper()
	children := make(map[Handle]map[Handle]bool)
	for i := 1; i <= f.Len(); i++ {
		h := Handle(i)
		n := f.nodes[h]
		if (n.first == Null) != (n.last == Null) {
			t.Errorf("%s: first=%s and last=%s must both be set or null", h, n.first, n.last)
		}
		set := make(map[Handle]bool)
		prev, steps := Null, 0
		for c := n.first; c != Null; c = f.nodes[c].next {
			if steps++; steps > f.Len() {
				t.Fatalf("%s: sibling chain does not terminate", h)
			}
			if f.nodes[c].parent != h {
				t.Errorf("child %s of %s has parent %s", c, h, f.nodes[c].parent)
			}
			if f.nodes[c].prev != prev {
				t.Errorf("child %s of %s: previous sibling is %s, expected %s", c, h, f.nodes[c].prev, prev)
			}
			set[c] = true
			prev = c
		}
		if prev != n.last {
			t.Errorf("%s: last child is %s, walk ended at %s", h, n.last, prev)
		}
		children[h] = set
		if n.next != Null && f.nodes[n.next].prev != h {
			t.Errorf("%s.next=%s, but %s.prev=%s", h, n.next, n.next, f.nodes[n.next].prev)
		}
		if n.prev != Null && f.nodes[n.prev].next != h {
			t.Errorf("%s.prev=%s, but %s.next=%s", h, n.prev, n.prev, f.nodes[n.prev].next)
		}
		if n.parent == Null && (n.prev != Null || n.next != Null) {
			t.Errorf("detached node %s has siblings %s/%s", h, n.prev, n.next)
		}
		if n.nodeType == DocumentFragmentNode && n.parent != Null {
			t.Errorf("fragment %s is attached to %s", h, n.parent)
		}
		steps = 0
		for p := n.parent; p != Null; p = f.nodes[p].parent {
			if p == h {
				t.Fatalf("%s is its own ancestor", h)
			}
			if steps++; steps > f.Len() {
				t.Fatalf("%s: parent chain does not terminate", h)
			}
		}
		if n.parent != Null {
			if doc := f.documentOf(n.parent); n.owner != doc {
				t.Errorf("%s has owner %s, parent %s belongs to %s", h, n.owner, n.parent, doc)
			}
		}
	}
	for i := 1; i <= f.Len(); i++ {
		h := Handle(i)
		if p := f.nodes[h].parent; p != Null && !children[p][h] {
			t.Errorf("%s claims parent %s, but is not among its children", h, p)
		}
	}
}

// childrenOf returns the node names of the children of h.
func childrenOf(f *Forest, h Handle) []string {
	var names []string
	for _, c := range f.ChildNodes(h).Slice() {
		names = append(names, f.NodeName(c))
	}
	return names
}

// buildTree creates
//
//     doc
//      └── html
//           ├── head
//           └── body
//                ├── p ── "Hello"
//                └── div
func buildTree(f *Forest) (doc, html, head, body, p, text, div Handle) {
	doc = f.CreateDocument()
	html = f.CreateElement("html", doc)
	head = f.CreateElement("head", doc)
	body = f.CreateElement("body", doc)
	p = f.CreateElement("p", doc)
	text = f.CreateTextNode("Hello", doc)
	div = f.CreateElement("div", doc)
	f.appendChild(doc, html)
	f.appendChild(html, head)
	f.appendChild(html, body)
	f.appendChild(body, p)
	f.appendChild(p, text)
	f.appendChild(body, div)
	return
}
