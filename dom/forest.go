package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Handle addresses a node within a forest. Handles are stable for the
// lifetime of the forest.
type Handle uint32

// Null is the handle of no node.
const Null Handle = 0

func (h Handle) String() string {
	if h == Null {
		return "#null"
	}
	return fmt.Sprintf("#%d", uint32(h))
}

// record is the node entity. All links are non-owning handles; the parent
// owns its children through first and last.
type record struct {
	nodeType NodeType
	name     string
	value    string
	owner    Handle // owner document; a document owns itself
	parent   Handle
	prev     Handle
	next     Handle
	first    Handle
	last     Handle
}

// Forest is an arena of DOM nodes. A forest may hold any number of documents,
// fragments and detached nodes, and nodes may move between them.
//
// The zero value is not usable; create forests with NewForest.
type Forest struct {
	nodes    []record // nodes[0] is a sentinel for Null
	trusting bool     // skip precondition checks
}

// NewForest creates an empty forest, applying options if given.
func NewForest(opts ...Option) *Forest {
	f := &Forest{nodes: make([]record, 1, 64)}
	for _, option := range opts {
		option(f)
	}
	return f
}

// Len returns the number of nodes ever created in f.
func (f *Forest) Len() int {
	return len(f.nodes) - 1
}

// Valid checks if h denotes a node of f.
func (f *Forest) Valid(h Handle) bool {
	return h != Null && int(h) < len(f.nodes)
}

// at returns the record for h, or the zero sentinel for invalid handles.
func (f *Forest) at(h Handle) *record {
	if !f.Valid(h) {
		return &record{}
	}
	return &f.nodes[h]
}

// CreateNode creates a new detached node. owner is the document the node
// belongs to and may be Null for nodes not yet attached to any document.
// A document node created with owner Null owns itself.
func (f *Forest) CreateNode(nodeType NodeType, name string, value string, owner Handle) Handle {
	assertThat(nodeType.Valid(), "cannot create node of unknown type %d", nodeType)
	if !f.Valid(owner) {
		owner = Null
	}
	h := Handle(len(f.nodes))
	if nodeType == DocumentNode && owner == Null {
		owner = h
	}
	f.nodes = append(f.nodes, record{
		nodeType: nodeType,
		name:     name,
		value:    value,
		owner:    owner,
	})
	return h
}

// CreateDocument creates a new document node, which owns itself.
func (f *Forest) CreateDocument() Handle {
	return f.CreateNode(DocumentNode, "#document", "", Null)
}

// CreateDocumentFragment creates an empty fragment owned by document owner.
func (f *Forest) CreateDocumentFragment(owner Handle) Handle {
	return f.CreateNode(DocumentFragmentNode, "#document-fragment", "", owner)
}

// CreateElement creates a detached element node.
func (f *Forest) CreateElement(name string, owner Handle) Handle {
	return f.CreateNode(ElementNode, name, "", owner)
}

// CreateTextNode creates a detached text node.
func (f *Forest) CreateTextNode(text string, owner Handle) Handle {
	return f.CreateNode(TextNode, "#text", text, owner)
}

// CreateComment creates a detached comment node.
func (f *Forest) CreateComment(text string, owner Handle) Handle {
	return f.CreateNode(CommentNode, "#comment", text, owner)
}

// --- Accessors -------------------------------------------------------------

// NodeType returns the type of node h, or 0 for an invalid handle.
func (f *Forest) NodeType(h Handle) NodeType { return f.at(h).nodeType }

// NodeName returns the name of node h.
func (f *Forest) NodeName(h Handle) string { return f.at(h).name }

// NodeValue returns the value of node h.
func (f *Forest) NodeValue(h Handle) string { return f.at(h).value }

// SetNodeValue replaces the value of node h. It is a no-op for invalid handles.
func (f *Forest) SetNodeValue(h Handle, value string) {
	if f.Valid(h) {
		f.nodes[h].value = value
	}
}

// OwnerDocument returns the document node h currently belongs to.
// For a document this is the document itself.
func (f *Forest) OwnerDocument(h Handle) Handle { return f.at(h).owner }

// ParentNode returns the parent of h, or Null.
func (f *Forest) ParentNode(h Handle) Handle { return f.at(h).parent }

// PreviousSibling returns the previous sibling of h, or Null.
func (f *Forest) PreviousSibling(h Handle) Handle { return f.at(h).prev }

// NextSibling returns the next sibling of h, or Null.
func (f *Forest) NextSibling(h Handle) Handle { return f.at(h).next }

// FirstChild returns the first child of h, or Null.
func (f *Forest) FirstChild(h Handle) Handle { return f.at(h).first }

// LastChild returns the last child of h, or Null.
func (f *Forest) LastChild(h Handle) Handle { return f.at(h).last }

// HasChildNodes is true if h has at least one child.
func (f *Forest) HasChildNodes(h Handle) bool { return f.at(h).first != Null }

// ChildNodes returns a live view of the children of h.
func (f *Forest) ChildNodes(h Handle) ChildList {
	return ChildList{forest: f, node: h}
}

// IndexOfChild returns the position of ch within the children of parent,
// or -1 if ch is not a child of parent.
func (f *Forest) IndexOfChild(parent Handle, ch Handle) int {
	if ch == Null || f.at(ch).parent != parent {
		return -1
	}
	i := 0
	for c := f.at(parent).first; c != Null; c = f.nodes[c].next {
		if c == ch {
			return i
		}
		i++
	}
	return -1
}

// String returns a short description of node h, suitable for tracing.
func (f *Forest) String(h Handle) string {
	if !f.Valid(h) {
		return h.String()
	}
	n := &f.nodes[h]
	if n.value != "" {
		return fmt.Sprintf("%s<%s %q>", h, n.name, shorten(n.value, 20))
	}
	return fmt.Sprintf("%s<%s>", h, n.name)
}

func shorten(s string, l int) string {
	r := []rune(s)
	if len(r) <= l {
		return s
	}
	return string(r[:l-1]) + "…"
}
