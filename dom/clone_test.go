package dom

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildWide creates a tree of the given depth where every inner node has
// width children.
func buildWide(f *Forest, doc Handle, depth, width int) Handle {
	root := f.CreateElement("root", doc)
	level := []Handle{root}
	for d := 1; d <= depth; d++ {
		var next []Handle
		for _, parent := range level {
			for w := 0; w < width; w++ {
				ch := f.CreateNode(ElementNode, fmt.Sprintf("n%d.%d", d, w), fmt.Sprintf("v%d", len(next)), doc)
				f.appendChild(parent, ch)
				next = append(next, ch)
			}
		}
		level = next
	}
	return root
}

// isomorphic compares two sub-trees position by position.
func isomorphic(f *Forest, a, b Handle) error {
	type pair struct{ a, b Handle }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		na, nb := f.nodes[p.a], f.nodes[p.b]
		if na.nodeType != nb.nodeType || na.name != nb.name || na.value != nb.value {
			return fmt.Errorf("%s differs from %s", f.String(p.a), f.String(p.b))
		}
		ca, cb := na.first, nb.first
		for ca != Null && cb != Null {
			stack = append(stack, pair{ca, cb})
			ca, cb = f.nodes[ca].next, f.nodes[cb].next
		}
		if ca != Null || cb != Null {
			return fmt.Errorf("%s and %s differ in number of children", f.String(p.a), f.String(p.b))
		}
	}
	return nil
}

func TestShallowClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minidom.dom")
	defer teardown()
	//
	f := NewForest()
	doc, _, _, _, p, _, _ := buildTree(f)
	c, err := f.CloneNode(p, false)
	if err != nil {
		t.Fatal(err)
	}
	if f.NodeName(c) != "p" || f.NodeType(c) != ElementNode || f.OwnerDocument(c) != doc {
		t.Errorf("expected shallow clone to copy type, name and owner, is %s", f.String(c))
	}
	if f.HasChildNodes(c) || f.ParentNode(c) != Null || f.NextSibling(c) != Null {
		t.Error("expected shallow clone to be a detached single node, isn't")
	}
	checkInvariants(t, f)
}

func TestDeepClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minidom.dom")
	defer teardown()
	//
	f := NewForest()
	doc := f.CreateDocument()
	root := buildWide(f, doc, 3, 3)
	f.appendChild(doc, root)
	n := f.Len()
	c, err := f.CloneNode(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 2*n-1 {
		t.Errorf("expected clone to add %d nodes, added %d", n-1, f.Len()-n)
	}
	if err := isomorphic(f, root, c); err != nil {
		t.Error(err)
	}
	if f.ParentNode(c) != Null {
		t.Error("expected deep clone to be detached, isn't")
	}
	for _, h := range f.Descendants(c, Whatever()) {
		if f.Contains(root, h) {
			t.Fatalf("clone shares node %s with original", f.String(h))
		}
	}
	checkInvariants(t, f)
	// mutating the clone does not touch the original
	if _, err := f.RemoveChild(c, f.FirstChild(c)); err != nil {
		t.Fatal(err)
	}
	f.SetNodeValue(f.LastChild(c), "changed")
	if f.ChildNodes(root).Length() != 3 || f.NodeValue(f.LastChild(root)) == "changed" {
		t.Error("expected original to be unaffected by changes to the clone")
	}
	checkInvariants(t, f)
}

func TestDeepCloneOfDocument(t *testing.T) {
	f := NewForest()
	doc, _, _, _, _, _, _ := buildTree(f)
	c, err := f.CloneNode(doc, true)
	if err != nil {
		t.Fatal(err)
	}
	if f.OwnerDocument(c) != c {
		t.Errorf("expected cloned document to own itself, owner is %s", f.OwnerDocument(c))
	}
	f.Walk(f.FirstChild(c), func(h Handle, depth int) bool {
		if f.OwnerDocument(h) != c {
			t.Errorf("expected %s to belong to cloned document", f.String(h))
		}
		return true
	})
	if err := isomorphic(f, doc, c); err != nil {
		t.Error(err)
	}
	checkInvariants(t, f)
}

func TestDeepCloneOfDeepChain(t *testing.T) {
	f := NewForest()
	root := f.CreateElement("root", Null)
	n := root
	for i := 0; i < 100000; i++ { // recursion would be in trouble here
		ch := f.CreateElement("x", Null)
		f.appendChild(n, ch)
		n = ch
	}
	c, err := f.CloneNode(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := isomorphic(f, root, c); err != nil {
		t.Error(err)
	}
}

func TestCloneInvalidHandle(t *testing.T) {
	f := NewForest()
	if _, err := f.CloneNode(Null, true); err == nil {
		t.Error("expected clone of null to fail, didn't")
	}
}
