/*
Package dom implements the tree-mutation core of a minimal document object model.

Overview

A DOM is a mutable, ordered tree of nodes. Nodes are tagged with a type, a name
and a value, and every node knows the document it currently belongs to.
Clients edit the tree with the well known W3C operations

   AppendChild(parent, node)
   InsertBefore(parent, node, ref)
   RemoveChild(parent, ref)
   ReplaceChild(parent, newChild, oldChild)

and may clone sub-trees or ask for ancestry. Inserting a document fragment
splices all of the fragment's children in one go and leaves the fragment empty.

Tree Implementation

Nodes do not reference each other directly. They live in an arena, type Forest,
and link to parents, siblings, children and owner documents by handles. A
handle is a stable index into the arena, with Null denoting "no node".
Children are kept as a doubly linked list, which makes every structural edit
O(1) (apart from optional validation and owner propagation). Sub-tree walks
are done with explicit work-lists, never by recursion, as document trees may
be deep and are often controlled by untrusted input.

Nodes may move freely between documents of the same forest; the owner
document of a moved sub-tree is re-tagged on attachment.

For clients preferring method call syntax there is type Node, a light-weight
(forest, handle) pair.

Validation

By default a forest checks the preconditions of every mutation (the reference
node has to be a child of the stated parent, an insertion must not create a
cycle) and reports a violation with an error before any link is touched.
Forests created with option Trusting() skip these checks, which is faster but
leaves corrupt links if a precondition is violated.

Concurrency

A forest is not safe for concurrent mutation. Clients have to serialize access.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minidom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.dom")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("minidom.dom: "+msg, msgargs...)
		panic(msg)
	}
}
