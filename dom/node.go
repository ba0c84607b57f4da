package dom

import "fmt"

// Node is a light-weight reference to a node of a forest, offering the W3C
// node interface as methods. Node values are comparable; two Nodes are equal
// if they reference the same node of the same forest.
//
// The zero Node is a null node. Getters of a null node return zero values.
type Node struct {
	InertEventTarget
	forest *Forest
	handle Handle
}

// NodeOf wraps a handle of forest f.
func NodeOf(f *Forest, h Handle) Node {
	if f == nil || !f.Valid(h) {
		return Node{}
	}
	return Node{forest: f, handle: h}
}

// Forest returns the forest n lives in, or nil for a null node.
func (n Node) Forest() *Forest { return n.forest }

// Handle returns the handle of n within its forest.
func (n Node) Handle() Handle { return n.handle }

// IsNull is true for the null node.
func (n Node) IsNull() bool { return n.forest == nil || n.handle == Null }

func (n Node) wrap(h Handle) Node { return NodeOf(n.forest, h) }

func (n Node) String() string {
	if n.IsNull() {
		return "Node(null)"
	}
	return fmt.Sprintf("Node%s", n.forest.String(n.handle))
}

// NodeType returns the type of n.
func (n Node) NodeType() NodeType {
	if n.IsNull() {
		return 0
	}
	return n.forest.NodeType(n.handle)
}

// NodeName returns the name of n.
func (n Node) NodeName() string {
	if n.IsNull() {
		return ""
	}
	return n.forest.NodeName(n.handle)
}

// NodeValue returns the value of n.
func (n Node) NodeValue() string {
	if n.IsNull() {
		return ""
	}
	return n.forest.NodeValue(n.handle)
}

// SetNodeValue replaces the value of n.
func (n Node) SetNodeValue(value string) {
	if !n.IsNull() {
		n.forest.SetNodeValue(n.handle, value)
	}
}

// OwnerDocument returns the document n belongs to.
func (n Node) OwnerDocument() Node {
	if n.IsNull() {
		return Node{}
	}
	return n.wrap(n.forest.OwnerDocument(n.handle))
}

// ParentNode returns the parent of n, if any.
func (n Node) ParentNode() Node {
	if n.IsNull() {
		return Node{}
	}
	return n.wrap(n.forest.ParentNode(n.handle))
}

// PreviousSibling returns the previous sibling of n, if any.
func (n Node) PreviousSibling() Node {
	if n.IsNull() {
		return Node{}
	}
	return n.wrap(n.forest.PreviousSibling(n.handle))
}

// NextSibling returns the next sibling of n, if any.
func (n Node) NextSibling() Node {
	if n.IsNull() {
		return Node{}
	}
	return n.wrap(n.forest.NextSibling(n.handle))
}

// FirstChild returns the first child of n, if any.
func (n Node) FirstChild() Node {
	if n.IsNull() {
		return Node{}
	}
	return n.wrap(n.forest.FirstChild(n.handle))
}

// LastChild returns the last child of n, if any.
func (n Node) LastChild() Node {
	if n.IsNull() {
		return Node{}
	}
	return n.wrap(n.forest.LastChild(n.handle))
}

// HasChildNodes is true if n has children.
func (n Node) HasChildNodes() bool {
	return !n.IsNull() && n.forest.HasChildNodes(n.handle)
}

// ChildNodes returns a live view of the children of n.
func (n Node) ChildNodes() ChildList {
	if n.IsNull() {
		return ChildList{}
	}
	return n.forest.ChildNodes(n.handle)
}

// --- Mutation --------------------------------------------------------------

// AppendChild appends child to n. See Forest.AppendChild.
func (n Node) AppendChild(child Node) (Node, error) {
	if err := n.sameForest("append-child", child); err != nil {
		return Node{}, err
	}
	h, err := n.forest.AppendChild(n.handle, child.handle)
	return n.wrap(h), err
}

// InsertBefore inserts child before ref. A null ref appends child.
// See Forest.InsertBefore.
func (n Node) InsertBefore(child Node, ref Node) (Node, error) {
	if err := n.sameForest("insert-before", child); err != nil {
		return Node{}, err
	}
	if !ref.IsNull() && ref.forest != n.forest {
		return Node{}, fmt.Errorf("insert-before: %w", ErrWrongForest)
	}
	h, err := n.forest.InsertBefore(n.handle, child.handle, ref.handle)
	return n.wrap(h), err
}

// RemoveChild removes child from n. See Forest.RemoveChild.
func (n Node) RemoveChild(child Node) (Node, error) {
	if err := n.sameForest("remove-child", child); err != nil {
		return Node{}, err
	}
	h, err := n.forest.RemoveChild(n.handle, child.handle)
	return n.wrap(h), err
}

// ReplaceChild puts newChild in place of oldChild. See Forest.ReplaceChild.
func (n Node) ReplaceChild(newChild, oldChild Node) (Node, error) {
	if err := n.sameForest("replace-child", newChild); err != nil {
		return Node{}, err
	}
	if err := n.sameForest("replace-child", oldChild); err != nil {
		return Node{}, err
	}
	h, err := n.forest.ReplaceChild(n.handle, newChild.handle, oldChild.handle)
	return n.wrap(h), err
}

// CloneNode returns a detached copy of n. See Forest.CloneNode.
func (n Node) CloneNode(deep bool) Node {
	if n.IsNull() {
		return Node{}
	}
	h, err := n.forest.CloneNode(n.handle, deep)
	assertThat(err == nil, "cannot clone valid node %s: %v", n, err)
	return n.wrap(h)
}

// Contains is true if other is a descendant of n.
func (n Node) Contains(other Node) bool {
	if n.IsNull() || other.forest != n.forest {
		return false
	}
	return n.forest.Contains(n.handle, other.handle)
}

// CompareDocumentPosition returns the position of other relative to n.
func (n Node) CompareDocumentPosition(other Node) (Position, error) {
	if err := n.sameForest("compare-document-position", other); err != nil {
		return 0, err
	}
	return n.forest.CompareDocumentPosition(n.handle, other.handle)
}

func (n Node) sameForest(op string, other Node) error {
	if n.IsNull() || other.IsNull() {
		return fmt.Errorf("%s: %w", op, ErrInvalidHandle)
	}
	if n.forest != other.forest {
		tracer().Errorf("%s: nodes %s and %s of different forests", op, n, other)
		return fmt.Errorf("%s: %w", op, ErrWrongForest)
	}
	return nil
}

var _ EventTarget = Node{}
